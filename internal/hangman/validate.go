package hangman

import (
	"sort"
	"strings"
)

// WordSet is a set of lowercase vocabulary tokens.
type WordSet map[string]struct{}

// NewWordSet builds a set from the given tokens, lower-casing each one.
// Blank tokens are skipped.
func NewWordSet(words ...string) WordSet {
	set := make(WordSet, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether the token is in the set (case-insensitive).
func (s WordSet) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// Sorted returns the tokens in lexical order.
func (s WordSet) Sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// ValidateAnswer checks that every whitespace-delimited token of answer
// is present in words. Comparison is case-insensitive.
// On failure it returns an *InvalidTokenError listing all missing tokens.
func ValidateAnswer(answer string, words WordSet) error {
	var missing []string
	for _, tok := range strings.Fields(answer) {
		tok = strings.ToLower(tok)
		if _, ok := words[tok]; !ok {
			missing = append(missing, tok)
		}
	}

	if len(missing) > 0 {
		return &InvalidTokenError{Missing: missing}
	}
	return nil
}
