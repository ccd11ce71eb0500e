package hangman

import (
	"sort"
	"strings"
)

// DefaultLives is the life pool used when no difficulty preset says otherwise.
const DefaultLives = 6

// Outcome classifies a single letter guess.
type Outcome int

const (
	OutcomeNone   Outcome = iota
	OutcomeHit            // letter is in the answer
	OutcomeMiss           // letter is not in the answer, costs a life
	OutcomeRepeat         // letter was already tried, no effect
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	case OutcomeRepeat:
		return "repeat"
	default:
		return "none"
	}
}

// WrongKind tags an entry of the wrong-guess set.
type WrongKind int

const (
	WrongLetter  WrongKind = iota // a guessed letter absent from the answer
	WrongTimeout                  // the guess countdown expired
)

// Wrong is one entry of the wrong-guess set.
// Letter is zero for timeout entries, so at most one timeout entry exists.
type Wrong struct {
	Kind   WrongKind
	Letter rune
}

// String renders the entry the way the HUD shows it.
func (w Wrong) String() string {
	if w.Kind == WrongTimeout {
		return "TIMEOUT"
	}
	return string(w.Letter)
}

// State is the derived status of a round.
type State int

const (
	StateInProgress State = iota
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "in_progress"
	}
}

// Round holds the mutable state of one hangman game.
// A Round is owned by a single controller; it is not safe for concurrent use.
type Round struct {
	answer   string
	letters  map[rune]struct{} // distinct letters of answer, fixed at construction
	maxLives int
	lives    int
	guessed  map[rune]struct{}
	wrong    map[Wrong]struct{}
}

// New starts a round for the given answer. The answer is normalized first.
// Returns ErrEmptyAnswer if no letters survive normalization and
// ErrInvalidLives if maxLives is not positive.
func New(answer string, maxLives int) (*Round, error) {
	if maxLives < 1 {
		return nil, ErrInvalidLives
	}

	canonical := Normalize(answer)
	letters := make(map[rune]struct{})
	for _, r := range canonical {
		if isLetter(r) {
			letters[r] = struct{}{}
		}
	}
	if len(letters) == 0 {
		return nil, ErrEmptyAnswer
	}

	return &Round{
		answer:   canonical,
		letters:  letters,
		maxLives: maxLives,
		lives:    maxLives,
		guessed:  make(map[rune]struct{}),
		wrong:    make(map[Wrong]struct{}),
	}, nil
}

// Guess applies a single-letter guess (case-insensitive).
// A letter already tried returns OutcomeRepeat and changes nothing,
// even after the round is over. A miss never takes lives below zero.
func (r *Round) Guess(input string) (Outcome, error) {
	runes := []rune(input)
	if len(runes) != 1 {
		return OutcomeNone, ErrInvalidGuess
	}
	letter := runes[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if !isLetter(letter) {
		return OutcomeNone, ErrInvalidGuess
	}

	if _, ok := r.guessed[letter]; ok {
		return OutcomeRepeat, nil
	}
	miss := Wrong{Kind: WrongLetter, Letter: letter}
	if _, ok := r.wrong[miss]; ok {
		return OutcomeRepeat, nil
	}

	if _, ok := r.letters[letter]; ok {
		r.guessed[letter] = struct{}{}
		return OutcomeHit, nil
	}

	r.wrong[miss] = struct{}{}
	if r.lives > 0 {
		r.lives--
	}
	return OutcomeMiss, nil
}

// TimeoutPenalty costs one life for an expired guess countdown.
// It is a no-op once lives reach zero.
func (r *Round) TimeoutPenalty() {
	if r.lives <= 0 {
		return
	}
	r.lives--
	r.wrong[Wrong{Kind: WrongTimeout}] = struct{}{}
}

// Masked returns the display form of the answer: unguessed letters become
// underscores, spaces become a double-width gap, positions are space-separated.
func (r *Round) Masked() string {
	parts := make([]string, 0, len(r.answer))
	for _, c := range r.answer {
		switch {
		case c == ' ':
			parts = append(parts, "  ")
		case r.hasGuessed(c):
			parts = append(parts, string(c))
		default:
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

// UniqueLetters returns the distinct letters of the answer in alphabetical order.
func (r *Round) UniqueLetters() []rune {
	return sortedRunes(r.letters)
}

// Guessed returns the correctly guessed letters in alphabetical order.
func (r *Round) Guessed() []rune {
	return sortedRunes(r.guessed)
}

// Wrong returns the wrong-guess entries: the timeout entry first (if any),
// then missed letters alphabetically.
func (r *Round) Wrong() []Wrong {
	out := make([]Wrong, 0, len(r.wrong))
	for w := range r.wrong {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind == WrongTimeout
		}
		return out[i].Letter < out[j].Letter
	})
	return out
}

// WrongLetters returns only the missed letters, alphabetically.
func (r *Round) WrongLetters() []rune {
	var out []rune
	for _, w := range r.Wrong() {
		if w.Kind == WrongLetter {
			out = append(out, w.Letter)
		}
	}
	return out
}

// TimedOut reports whether a countdown expiry was ever recorded.
func (r *Round) TimedOut() bool {
	_, ok := r.wrong[Wrong{Kind: WrongTimeout}]
	return ok
}

// Lives returns the remaining lives.
func (r *Round) Lives() int {
	return r.lives
}

// MaxLives returns the life pool the round started with.
func (r *Round) MaxLives() int {
	return r.maxLives
}

// IsWon reports whether every distinct letter of the answer has been guessed.
func (r *Round) IsWon() bool {
	for c := range r.letters {
		if !r.hasGuessed(c) {
			return false
		}
	}
	return true
}

// IsLost reports whether the round ran out of lives.
func (r *Round) IsLost() bool {
	return r.lives <= 0
}

// IsOver reports whether the round is won or lost.
func (r *Round) IsOver() bool {
	return r.IsWon() || r.IsLost()
}

// State derives the round status. Won takes precedence over Lost.
func (r *Round) State() State {
	switch {
	case r.IsWon():
		return StateWon
	case r.IsLost():
		return StateLost
	default:
		return StateInProgress
	}
}

// Reveal returns the canonical answer.
func (r *Round) Reveal() string {
	return r.answer
}

func (r *Round) hasGuessed(c rune) bool {
	_, ok := r.guessed[c]
	return ok
}

func sortedRunes(set map[rune]struct{}) []rune {
	out := make([]rune, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
