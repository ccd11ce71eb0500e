package vocab

import (
	"fmt"
	"math/rand"
	"strings"
)

// Level selects the kind of answer a round uses.
type Level string

const (
	LevelBasic        Level = "basic"        // a single word
	LevelIntermediate Level = "intermediate" // a short phrase
)

// ParseLevel converts a level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelBasic, "":
		return LevelBasic, nil
	case LevelIntermediate:
		return LevelIntermediate, nil
	default:
		return "", fmt.Errorf("vocab: unknown level %q (want basic or intermediate)", s)
	}
}

// Title returns the display name for the level.
func (l Level) Title() string {
	if l == LevelIntermediate {
		return "Intermediate (Phrase)"
	}
	return "Basic (Word)"
}

// Next cycles to the other level.
func (l Level) Next() Level {
	if l == LevelIntermediate {
		return LevelBasic
	}
	return LevelIntermediate
}

// DefaultPhraseChance is the probability of using a curated phrase
// instead of a generated one.
const DefaultPhraseChance = 0.6

// Generated phrases skip short filler words.
var stopwords = map[string]bool{
	"a":   true,
	"an":  true,
	"and": true,
	"or":  true,
	"the": true,
}

// Picker chooses answers from a vocabulary.
// Answers are returned upper-cased.
type Picker struct {
	vocab        *Vocabulary
	words        []string // sorted for deterministic selection by seed
	pool         []string // phrase-building candidates
	rng          *rand.Rand
	phraseChance float64
}

// NewPicker creates a picker with a deterministic RNG seed.
func NewPicker(v *Vocabulary, seed int64) *Picker {
	words := v.SortedWords()

	pool := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) >= 3 && !stopwords[w] {
			pool = append(pool, w)
		}
	}

	return &Picker{
		vocab:        v,
		words:        words,
		pool:         pool,
		rng:          rand.New(rand.NewSource(seed)),
		phraseChance: DefaultPhraseChance,
	}
}

// SetPhraseChance overrides the curated phrase probability (clamped to [0, 1]).
func (p *Picker) SetPhraseChance(chance float64) {
	p.phraseChance = max(0, min(1, chance))
}

// Vocabulary returns the vocabulary answers are drawn from.
func (p *Picker) Vocabulary() *Vocabulary {
	return p.vocab
}

// Word picks a random single word.
func (p *Picker) Word() string {
	return strings.ToUpper(p.words[p.rng.Intn(len(p.words))])
}

// Phrase picks a curated phrase, or builds a 2-3 word phrase from
// distinct vocabulary words. Falls back to a single word when the
// vocabulary is too small for either.
func (p *Picker) Phrase() string {
	if len(p.vocab.Phrases) > 0 && p.rng.Float64() < p.phraseChance {
		return strings.ToUpper(p.vocab.Phrases[p.rng.Intn(len(p.vocab.Phrases))])
	}

	n := 2 + p.rng.Intn(2)
	if n > len(p.pool) {
		n = len(p.pool)
	}
	if n < 2 {
		if len(p.vocab.Phrases) > 0 {
			return strings.ToUpper(p.vocab.Phrases[p.rng.Intn(len(p.vocab.Phrases))])
		}
		return p.Word()
	}

	tokens := make([]string, n)
	for i, idx := range p.rng.Perm(len(p.pool))[:n] {
		tokens[i] = p.pool[idx]
	}
	return strings.ToUpper(strings.Join(tokens, " "))
}

// Pick chooses an answer for the given level.
func (p *Picker) Pick(level Level) string {
	if level == LevelIntermediate {
		return p.Phrase()
	}
	return p.Word()
}
