package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings for a round.
// Every printable letter is a guess, so commands live on non-letter keys.
type KeyMap struct {
	Guess    key.Binding
	NewRound key.Binding
	Level    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Guess, k.NewRound, k.Level, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Guess, k.NewRound, k.Level},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Guess: key.NewBinding(
			key.WithKeys(strings.Split("abcdefghijklmnopqrstuvwxyz", "")...),
			key.WithHelp("a-z", "guess"),
		),
		NewRound: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "new round"),
		),
		Level: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch level"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// letterInput extracts typed text from a key message.
// Returns false for non-rune keys (arrows, enter, ...).
func letterInput(msg tea.KeyMsg) (string, bool) {
	if msg.Type != tea.KeyRunes || msg.Paste {
		return "", false
	}
	return string(msg.Runes), true
}
