package hangman

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyAnswer is returned by New when the normalized answer has no letters.
	ErrEmptyAnswer = errors.New("hangman: answer must contain at least one letter")

	// ErrInvalidLives is returned by New when the life pool is not positive.
	ErrInvalidLives = errors.New("hangman: max lives must be positive")

	// ErrInvalidGuess is returned by Guess when the input is not a single A-Z letter.
	ErrInvalidGuess = errors.New("hangman: guess must be a single A-Z letter")

	// ErrInvalidToken matches any *InvalidTokenError via errors.Is.
	ErrInvalidToken = errors.New("hangman: invalid tokens")
)

// InvalidTokenError lists the answer tokens missing from a vocabulary.
type InvalidTokenError struct {
	// Missing holds every missing token in the order it appeared.
	Missing []string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("hangman: invalid tokens (not in dictionary): %s", strings.Join(e.Missing, ", "))
}

// Is makes errors.Is(err, ErrInvalidToken) hold for every InvalidTokenError.
func (e *InvalidTokenError) Is(target error) bool {
	return target == ErrInvalidToken
}
