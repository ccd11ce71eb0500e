// Package hangman implements the rules of a single hangman round.
// It is pure game logic: no terminal, timer or vocabulary storage lives here.
// The platform feeds guesses and timeout events in and reads state back out.
package hangman

import (
	"strings"
	"unicode"
)

// Normalize converts a raw answer into its canonical form: upper-case
// letters A-Z separated by single spaces, with no leading or trailing space.
// Everything else (digits, punctuation, hyphens, non-Latin letters) is dropped.
func Normalize(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))

	pendingSpace := false
	for _, r := range raw {
		if unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}

		r = unicode.ToUpper(r)
		if !isLetter(r) {
			continue
		}

		// Spaces are only emitted between letters, which trims both ends
		if pendingSpace && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		pendingSpace = false
		sb.WriteRune(r)
	}

	return sb.String()
}

// isLetter reports whether r is one of the 26 upper-case letters.
func isLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
