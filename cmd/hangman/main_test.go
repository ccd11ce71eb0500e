package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/storage"
	"github.com/vovakirdan/tui-hangman/internal/vocab"
)

func TestLoadVocabulary(t *testing.T) {
	logger := log.New(io.Discard)

	t.Run("default", func(t *testing.T) {
		v, err := loadVocabulary(config.Default(), logger)
		if err != nil {
			t.Fatalf("loadVocabulary failed: %v", err)
		}
		if len(v.Words) != len(vocab.Default().Words) {
			t.Errorf("got %d words, want built-in vocabulary", len(v.Words))
		}
	})

	t.Run("file", func(t *testing.T) {
		cfg := config.Default()
		cfg.Vocabulary.Path = filepath.Join("..", "..", "internal", "vocab", "testdata", "small.yaml")

		v, err := loadVocabulary(cfg, logger)
		if err != nil {
			t.Fatalf("loadVocabulary failed: %v", err)
		}
		if !v.Contains("gopher") {
			t.Error("expected words from the YAML file")
		}
	})

	t.Run("store wins over file", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "vocab.db")
		store, err := storage.Open(dbPath)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		words, err := vocab.New([]string{"lambda"}, nil)
		if err != nil {
			t.Fatalf("vocab.New failed: %v", err)
		}
		if _, err := store.Import(words); err != nil {
			t.Fatalf("Import failed: %v", err)
		}
		store.Close()

		cfg := config.Default()
		cfg.Vocabulary.Path = "does-not-exist.yaml"
		cfg.Vocabulary.Store = dbPath

		v, err := loadVocabulary(cfg, logger)
		if err != nil {
			t.Fatalf("loadVocabulary failed: %v", err)
		}
		if got := v.SortedWords(); len(got) != 1 || got[0] != "lambda" {
			t.Errorf("words = %v, want [lambda]", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.Default()
		cfg.Vocabulary.Path = filepath.Join(t.TempDir(), "missing.yaml")

		if _, err := loadVocabulary(cfg, logger); err == nil {
			t.Error("expected error for missing vocabulary file")
		}
	})
}

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23235", "23235"},
		{"localhost:2222", "2222"},
		{"nonsense", "nonsense"},
	}

	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}
