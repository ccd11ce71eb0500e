package hangman

// Snapshot captures everything a display needs after a state change.
type Snapshot struct {
	State    State
	Mask     string
	Lives    int
	MaxLives int
	Guessed  []rune
	Wrong    []Wrong
	TimedOut bool
	Answer   string // only set once the round is over
}

// Snapshot returns the current round state for rendering and tests.
func (r *Round) Snapshot() Snapshot {
	snap := Snapshot{
		State:    r.State(),
		Mask:     r.Masked(),
		Lives:    r.lives,
		MaxLives: r.maxLives,
		Guessed:  r.Guessed(),
		Wrong:    r.Wrong(),
		TimedOut: r.TimedOut(),
	}
	if snap.State != StateInProgress {
		snap.Answer = r.answer
	}
	return snap
}
