package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/vocab"
)

//go:embed defaults/hangman.yaml
var defaultHangmanYAML []byte

// Default returns the default hangman configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Lives:           hangman.DefaultLives,
			GuessTimeout:    core.DefaultGuessTimeout,
			Level:           string(vocab.LevelBasic),
			PhraseChance:    vocab.DefaultPhraseChance,
			ValidateAnswers: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: 30,
		},
	}
}
