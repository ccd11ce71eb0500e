package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// Styles used across the round view.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	maskStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Padding(1, 2)
	gallowsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingRight(4)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hitStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	missStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true)
	unusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	alphabetBox  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// statusStyles maps a status kind to its color.
var statusStyles = map[statusKind]lipgloss.Style{
	statusInfo: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	statusGood: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	statusBad:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	statusWarn: warnStyle,
}

// gallowsFrames are drawn from empty scaffold to full figure.
var gallowsFrames = []string{
	"  +---+\n  |   |\n      |\n      |\n      |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n      |\n      |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n  |   |\n      |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n /|   |\n      |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n /|\\  |\n      |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n /|\\  |\n /    |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n /|\\  |\n / \\  |\n      |\n=========",
}

// gallowsStage scales lives lost onto the gallows frames,
// so the figure is complete exactly when lives reach zero.
func gallowsStage(lives, maxLives int) int {
	if maxLives <= 0 {
		return 0
	}
	lost := maxLives - lives
	stage := lost * (len(gallowsFrames) - 1) / maxLives
	return max(0, min(len(gallowsFrames)-1, stage))
}

// renderGallows returns the gallows drawing for a round.
func renderGallows(snap hangman.Snapshot) string {
	return gallowsFrames[gallowsStage(snap.Lives, snap.MaxLives)]
}

// renderWrong lists wrong guesses, timeouts first as a clock symbol.
func renderWrong(snap hangman.Snapshot) string {
	parts := make([]string, 0, len(snap.Wrong))
	for _, w := range snap.Wrong {
		if w.Kind == hangman.WrongTimeout {
			parts = append(parts, "⏰")
			continue
		}
		parts = append(parts, string(w.Letter))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

// renderLives shows remaining lives as hearts followed by a count.
func renderLives(snap hangman.Snapshot) string {
	lives := max(0, min(snap.MaxLives, snap.Lives))
	hearts := strings.Repeat("♥", lives) + strings.Repeat("♡", snap.MaxLives-lives)
	return fmt.Sprintf("%s %d/%d", hearts, lives, snap.MaxLives)
}

// renderTimer shows the countdown, or "off" when disabled.
func renderTimer(c *core.Countdown) string {
	if !c.Enabled() {
		return "off"
	}
	return fmt.Sprintf("%ds", c.Remaining())
}

// renderAlphabet draws the 26 letters in two rows, colored by use.
func renderAlphabet(snap hangman.Snapshot) string {
	hits := make(map[rune]bool, len(snap.Guessed))
	for _, c := range snap.Guessed {
		hits[c] = true
	}
	misses := make(map[rune]bool, len(snap.Wrong))
	for _, w := range snap.Wrong {
		if w.Kind == hangman.WrongLetter {
			misses[w.Letter] = true
		}
	}

	var b strings.Builder
	for c := 'A'; c <= 'Z'; c++ {
		style := unusedStyle
		switch {
		case hits[c]:
			style = hitStyle
		case misses[c]:
			style = missStyle
		}
		b.WriteString(style.Render(string(c)))

		switch {
		case c == 'M':
			b.WriteByte('\n')
		case c != 'Z':
			b.WriteByte(' ')
		}
	}
	return alphabetBox.Render(b.String())
}

// renderInfo is the panel next to the gallows.
func renderInfo(snap hangman.Snapshot, c *core.Countdown) string {
	lines := []string{
		labelStyle.Render("Lives: ") + renderLives(snap),
		labelStyle.Render("Wrong: ") + renderWrong(snap),
		labelStyle.Render("Time:  ") + renderTimer(c),
	}
	return strings.Join(lines, "\n\n")
}
