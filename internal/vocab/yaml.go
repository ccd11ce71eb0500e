package vocab

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/vocabulary.yaml
var defaultVocabularyYAML []byte

// YAMLVocabulary is the on-disk layout of a vocabulary file.
type YAMLVocabulary struct {
	Words   []string `yaml:"words"`
	Phrases []string `yaml:"phrases,omitempty"`
}

// ParseYAML parses a vocabulary file.
func ParseYAML(data []byte) (*Vocabulary, error) {
	var yv YAMLVocabulary
	if err := yaml.Unmarshal(data, &yv); err != nil {
		return nil, fmt.Errorf("vocab: yaml unmarshal: %w", err)
	}
	return New(yv.Words, yv.Phrases)
}

// MarshalYAML renders the vocabulary in file form, words sorted.
func (v *Vocabulary) MarshalYAML() (any, error) {
	return YAMLVocabulary{
		Words:   v.SortedWords(),
		Phrases: v.Phrases,
	}, nil
}

// LoadFile loads a vocabulary from a YAML file.
func LoadFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: reading %s: %w", path, err)
	}

	v, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("vocab: parsing %s: %w", path, err)
	}
	return v, nil
}

// Default returns the embedded curated vocabulary.
func Default() *Vocabulary {
	v, err := ParseYAML(defaultVocabularyYAML)
	if err != nil {
		panic(fmt.Sprintf("vocab: embedded default is invalid: %v", err))
	}
	return v
}

// FileSource loads a vocabulary from a YAML file,
// or the embedded default when Path is empty.
type FileSource struct {
	Path string
}

// Load implements Source.
func (s FileSource) Load() (*Vocabulary, error) {
	if s.Path == "" {
		return Default(), nil
	}
	return LoadFile(s.Path)
}

var _ Source = FileSource{}
