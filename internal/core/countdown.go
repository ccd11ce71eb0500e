package core

// DefaultGuessTimeout is the per-guess countdown in seconds.
const DefaultGuessTimeout = 15

// Countdown is the per-guess timer. It measures time in whole ticks
// (one tick per second in the TUI) and never reads the wall clock itself,
// so the platform decides when a second has passed.
type Countdown struct {
	limit     int
	remaining int
}

// NewCountdown creates a countdown of the given length in seconds.
// A non-positive length disables the countdown: Tick never expires.
func NewCountdown(seconds int) *Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return &Countdown{
		limit:     seconds,
		remaining: seconds,
	}
}

// Enabled reports whether the countdown can expire.
func (c *Countdown) Enabled() bool {
	return c.limit > 0
}

// Limit returns the full countdown length.
func (c *Countdown) Limit() int {
	return c.limit
}

// Remaining returns the seconds left before expiry.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Reset rewinds the countdown to its full length.
// Called after every accepted guess and when a new round starts.
func (c *Countdown) Reset() {
	c.remaining = c.limit
}

// Tick consumes one second. It returns true when the countdown expires,
// after which it has already been rewound for the next guess.
func (c *Countdown) Tick() bool {
	if !c.Enabled() {
		return false
	}

	c.remaining--
	if c.remaining > 0 {
		return false
	}

	c.Reset()
	return true
}
