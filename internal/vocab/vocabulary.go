// Package vocab supplies hangman answers: the curated vocabulary, its file
// formats and the random word/phrase picker.
// The game core only ever sees a vocabulary through hangman.WordSet.
package vocab

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// ErrEmptyVocabulary is returned when a vocabulary has no words.
var ErrEmptyVocabulary = errors.New("vocab: vocabulary has no words")

// Vocabulary is a set of lowercase word tokens plus curated multi-word
// phrases whose tokens all belong to the set.
type Vocabulary struct {
	Words   hangman.WordSet
	Phrases []string
}

// Source loads a vocabulary from somewhere (a YAML file, the SQLite store).
type Source interface {
	Load() (*Vocabulary, error)
}

// New builds a vocabulary, normalizing tokens to lowercase and phrases to
// single-spaced lowercase. Every phrase is checked against the word set.
func New(words []string, phrases []string) (*Vocabulary, error) {
	set := hangman.NewWordSet(words...)
	if len(set) == 0 {
		return nil, ErrEmptyVocabulary
	}

	v := &Vocabulary{Words: set}
	seen := make(map[string]bool, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.Join(strings.Fields(p), " "))
		if p == "" || seen[p] {
			continue
		}
		if err := hangman.ValidateAnswer(p, set); err != nil {
			return nil, fmt.Errorf("vocab: phrase %q: %w", p, err)
		}
		seen[p] = true
		v.Phrases = append(v.Phrases, p)
	}

	return v, nil
}

// Contains reports whether word is in the vocabulary (case-insensitive).
func (v *Vocabulary) Contains(word string) bool {
	return v.Words.Contains(word)
}

// SortedWords returns the words in lexical order.
func (v *Vocabulary) SortedWords() []string {
	return v.Words.Sorted()
}

// Validate checks a candidate answer against the word set.
func (v *Vocabulary) Validate(answer string) error {
	return hangman.ValidateAnswer(answer, v.Words)
}
