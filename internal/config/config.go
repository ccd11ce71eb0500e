// Package config provides YAML-based configuration loading and
// difficulty presets for hangman.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/vocab"
)

// Config contains all hangman configuration.
type Config struct {
	Game       GameConfig       `yaml:"game"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Log        LogConfig        `yaml:"log"`
	SSH        SSHConfig        `yaml:"ssh"`
}

// GameConfig defines round parameters.
type GameConfig struct {
	Lives           int     `yaml:"lives"`
	GuessTimeout    int     `yaml:"guess_timeout"` // Seconds per guess, 0 disables
	Level           string  `yaml:"level"`         // "basic" or "intermediate"
	PhraseChance    float64 `yaml:"phrase_chance"`
	ValidateAnswers bool    `yaml:"validate_answers"`
}

// VocabularyConfig defines where answers come from.
type VocabularyConfig struct {
	Path  string `yaml:"path"`  // YAML file, empty = embedded default
	Store string `yaml:"store"` // SQLite store path, wins over Path when set
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// SSHConfig defines the remote play server.
type SSHConfig struct {
	Address     string `yaml:"address"`
	HostKey     string `yaml:"host_key"`
	IdleTimeout int    `yaml:"idle_timeout"` // Minutes
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Game.Lives < 1 {
		return fmt.Errorf("config: game.lives must be positive, got %d", c.Game.Lives)
	}
	if c.Game.GuessTimeout < 0 {
		return fmt.Errorf("config: game.guess_timeout must not be negative, got %d", c.Game.GuessTimeout)
	}
	if _, err := vocab.ParseLevel(c.Game.Level); err != nil {
		return fmt.Errorf("config: game.level: %w", err)
	}
	if c.Game.PhraseChance < 0 || c.Game.PhraseChance > 1 {
		return fmt.Errorf("config: game.phrase_chance must be within [0, 1], got %g", c.Game.PhraseChance)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: ssh.idle_timeout must not be negative, got %d", c.SSH.IdleTimeout)
	}
	return nil
}

// GameLevel returns the parsed game level, defaulting to basic.
func (c Config) GameLevel() vocab.Level {
	level, err := vocab.ParseLevel(c.Game.Level)
	if err != nil {
		return vocab.LevelBasic
	}
	return level
}

// LogLevel returns the parsed log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
