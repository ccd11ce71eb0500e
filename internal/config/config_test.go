package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-hangman/internal/vocab"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hangman.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML Config
	if err := yaml.Unmarshal(defaultHangmanYAML, &fromYAML); err != nil {
		t.Fatalf("embedded default is invalid YAML: %v", err)
	}

	if fromYAML != Default() {
		t.Errorf("embedded default = %+v\nhardcoded = %+v", fromYAML, Default())
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
game:
  lives: 4
  level: intermediate
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Game.Lives != 4 {
		t.Errorf("lives = %d, want 4", cfg.Game.Lives)
	}
	if cfg.GameLevel() != vocab.LevelIntermediate {
		t.Errorf("level = %q, want intermediate", cfg.GameLevel())
	}
	// Fields missing from the file keep defaults
	if cfg.Game.GuessTimeout != 15 {
		t.Errorf("guess_timeout = %d, want default 15", cfg.Game.GuessTimeout)
	}
	if cfg.SSH.Address != ":23235" {
		t.Errorf("ssh.address = %q, want default", cfg.SSH.Address)
	}
	if cfg.LogLevel().String() != "debug" {
		t.Errorf("log level = %v, want debug", cfg.LogLevel())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := writeConfig(t, "game: [not, a, map")
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := writeConfig(t, "game:\n  lives: 0\n")
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "lives") {
		t.Errorf("expected lives validation error, got %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvLives, "9")
	t.Setenv(EnvGuessTimeout, "0")
	t.Setenv(EnvLevel, "intermediate")
	t.Setenv(EnvVocabulary, "/tmp/words.yaml")
	t.Setenv(EnvStore, "/tmp/words.db")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(writeConfig(t, "game:\n  lives: 3\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Game.Lives != 9 {
		t.Errorf("lives = %d, want env override 9", cfg.Game.Lives)
	}
	if cfg.Game.GuessTimeout != 0 {
		t.Errorf("guess_timeout = %d, want 0", cfg.Game.GuessTimeout)
	}
	if cfg.GameLevel() != vocab.LevelIntermediate {
		t.Errorf("level = %q", cfg.Game.Level)
	}
	if cfg.Vocabulary.Path != "/tmp/words.yaml" || cfg.Vocabulary.Store != "/tmp/words.db" {
		t.Errorf("vocabulary = %+v", cfg.Vocabulary)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q", cfg.Log.Level)
	}
}

func TestLoadEnvBadNumber(t *testing.T) {
	t.Setenv(EnvLives, "many")

	if _, err := Load(writeConfig(t, "game:\n  lives: 3\n")); err == nil {
		t.Error("expected error for non-numeric HANGMAN_LIVES")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero lives", mutate: func(c *Config) { c.Game.Lives = 0 }},
		{name: "negative timeout", mutate: func(c *Config) { c.Game.GuessTimeout = -1 }},
		{name: "unknown level", mutate: func(c *Config) { c.Game.Level = "expert" }},
		{name: "phrase chance", mutate: func(c *Config) { c.Game.PhraseChance = 1.5 }},
		{name: "log level", mutate: func(c *Config) { c.Log.Level = "loud" }},
		{name: "idle timeout", mutate: func(c *Config) { c.SSH.IdleTimeout = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		in    string
		lives int
	}{
		{in: "easy", lives: 8},
		{in: "Normal", lives: 6},
		{in: "hard", lives: 4},
	}

	for _, tt := range tests {
		preset, err := ParseDifficulty(tt.in)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q) failed: %v", tt.in, err)
		}
		cfg := Default()
		ApplyPreset(&cfg, preset)
		if cfg.Game.Lives != tt.lives {
			t.Errorf("%s: lives = %d, want %d", tt.in, cfg.Game.Lives, tt.lives)
		}
	}

	if _, err := ParseDifficulty("fixed"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.hangman/vocab.db")
	if err != nil {
		t.Fatalf("ExpandHome failed: %v", err)
	}
	if got != filepath.Join(home, ".hangman", "vocab.db") {
		t.Errorf("ExpandHome = %q", got)
	}

	if got, _ := ExpandHome("/abs/path.db"); got != "/abs/path.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
