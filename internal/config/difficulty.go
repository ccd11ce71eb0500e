package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// DifficultyPreset represents a named difficulty level.
// Difficulty only changes the life pool.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a preset name to a DifficultyPreset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// LivesForPreset returns the life pool for a difficulty preset.
func LivesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 8
	case DifficultyHard:
		return 4
	default:
		return hangman.DefaultLives
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.Game.Lives = LivesForPreset(preset)
}
