package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

func TestGallowsStage(t *testing.T) {
	last := len(gallowsFrames) - 1
	tests := []struct {
		lives, maxLives int
		want            int
	}{
		{6, 6, 0},
		{0, 6, last},
		{3, 6, last / 2},
		{0, 4, last},
		{8, 8, 0},
		{-1, 6, last},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := gallowsStage(tt.lives, tt.maxLives); got != tt.want {
			t.Errorf("gallowsStage(%d, %d) = %d, want %d", tt.lives, tt.maxLives, got, tt.want)
		}
	}
}

func TestRenderWrong(t *testing.T) {
	r, err := hangman.New("go", 6)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := renderWrong(r.Snapshot()); got != "-" {
		t.Errorf("renderWrong(empty) = %q, want -", got)
	}

	r.Guess("z")
	r.Guess("a")
	r.TimeoutPenalty()

	if got := renderWrong(r.Snapshot()); got != "⏰, A, Z" {
		t.Errorf("renderWrong = %q, want %q", got, "⏰, A, Z")
	}
}

func TestRenderLivesAndTimer(t *testing.T) {
	r, err := hangman.New("go", 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	r.Guess("x")

	if got := renderLives(r.Snapshot()); got != "♥♥♡ 2/3" {
		t.Errorf("renderLives = %q", got)
	}

	if got := renderTimer(core.NewCountdown(0)); got != "off" {
		t.Errorf("renderTimer(disabled) = %q, want off", got)
	}
	if got := renderTimer(core.NewCountdown(15)); got != "15s" {
		t.Errorf("renderTimer = %q, want 15s", got)
	}
}

func TestRenderAlphabet(t *testing.T) {
	r, err := hangman.New("go", 6)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	out := renderAlphabet(r.Snapshot())

	for c := 'A'; c <= 'Z'; c++ {
		if !strings.ContainsRune(out, c) {
			t.Errorf("alphabet missing %c", c)
		}
	}
}

func TestKeyMap(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	if len(keys.FullHelp()) != 2 {
		t.Errorf("FullHelp() has %d columns, want 2", len(keys.FullHelp()))
	}
	if !keys.Guess.Enabled() {
		t.Error("Guess binding should be enabled")
	}

	if got, ok := letterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); !ok || got != "q" {
		t.Errorf("letterInput(q) = %q, %v", got, ok)
	}
	if _, ok := letterInput(tea.KeyMsg{Type: tea.KeyEnter}); ok {
		t.Error("letterInput(enter) should be rejected")
	}
	if _, ok := letterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc"), Paste: true}); ok {
		t.Error("pasted text should be rejected")
	}
}
