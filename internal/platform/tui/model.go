package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/vocab"
)

// maxPickAttempts bounds how many candidates are drawn when
// answers are validated against the vocabulary.
const maxPickAttempts = 5

// Settings are the per-player round options.
type Settings struct {
	Lives           int
	GuessTimeout    int // seconds, 0 disables the countdown
	Level           vocab.Level
	ValidateAnswers bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Lives:           hangman.DefaultLives,
		GuessTimeout:    core.DefaultGuessTimeout,
		Level:           vocab.LevelBasic,
		ValidateAnswers: true,
	}
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusGood
	statusBad
	statusWarn
)

// Model is the Bubble Tea model for playing hangman rounds.
// It owns the Round and the countdown; the Round itself never sees time.
type Model struct {
	picker    *vocab.Picker
	settings  Settings
	round     *hangman.Round
	countdown *core.Countdown
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	config    core.RuntimeConfig

	status     string
	statusKind statusKind
	rounds     int
	quitting   bool
}

// NewModel creates a model and starts its first round.
// A nil logger discards log output.
func NewModel(picker *vocab.Picker, settings Settings, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if settings.Lives <= 0 {
		settings.Lives = hangman.DefaultLives
	}
	if settings.Level == "" {
		settings.Level = vocab.LevelBasic
	}

	m := Model{
		picker:    picker,
		settings:  settings,
		countdown: core.NewCountdown(settings.GuessTimeout),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    logger,
		config:    cfg,
	}
	m.startRound()
	return m
}

// Init starts the countdown tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(time.Second)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("player quit", "rounds", m.rounds)
		return m, tea.Quit

	case key.Matches(msg, m.keys.NewRound):
		m.startRound()
		return m, nil

	case key.Matches(msg, m.keys.Level):
		m.settings.Level = m.settings.Level.Next()
		m.startRound()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	input, ok := letterInput(msg)
	if !ok {
		return m, nil
	}
	m.guess(input)
	return m, nil
}

// guess feeds one letter to the round.
func (m *Model) guess(input string) {
	if m.round == nil {
		return
	}
	if m.round.IsOver() {
		m.setStatus(statusInfo, "Round over. Press enter for a new round.")
		return
	}

	outcome, err := m.round.Guess(input)
	if err != nil {
		if errors.Is(err, hangman.ErrInvalidGuess) {
			m.setStatus(statusWarn, "Please enter a single letter (A–Z).")
		}
		return
	}
	m.countdown.Reset()

	letter := strings.ToUpper(input)
	m.logger.Debug("guess", "letter", letter, "outcome", outcome, "lives", m.round.Lives())

	switch outcome {
	case hangman.OutcomeHit:
		m.setStatus(statusGood, fmt.Sprintf("Nice! %s is in the answer.", letter))
	case hangman.OutcomeMiss:
		m.setStatus(statusBad, fmt.Sprintf("Nope, no %s.", letter))
	case hangman.OutcomeRepeat:
		m.setStatus(statusInfo, fmt.Sprintf("You already tried %s.", letter))
	}
	m.checkEnd()
}

// handleTick advances the countdown and applies a penalty on expiry.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.round == nil || m.round.IsOver() {
		return m, tickCmd(time.Second)
	}

	if m.countdown.Tick() {
		m.round.TimeoutPenalty()
		m.logger.Debug("countdown expired", "lives", m.round.Lives())
		m.setStatus(statusWarn, "Time's up! You lost a life.")
		m.checkEnd()
	}

	return m, tickCmd(time.Second)
}

// checkEnd reports the end of a round once.
func (m *Model) checkEnd() {
	switch m.round.State() {
	case hangman.StateWon:
		m.setStatus(statusGood, "You won! Press enter to play again.")
	case hangman.StateLost:
		m.setStatus(statusBad, fmt.Sprintf("Game over. The answer was %s.", m.round.Reveal()))
	default:
		return
	}
	m.logger.Info("round finished",
		"state", m.round.State(),
		"answer", m.round.Reveal(),
		"lives", m.round.Lives(),
	)
}

// startRound picks a fresh answer and rewinds the countdown.
func (m *Model) startRound() {
	answer := m.pickAnswer()
	round, err := hangman.New(answer, m.settings.Lives)
	if err != nil {
		m.logger.Error("cannot start round", "answer", answer, "error", err)
		m.setStatus(statusBad, fmt.Sprintf("Cannot start a round: %v", err))
		return
	}

	m.round = round
	m.countdown.Reset()
	m.rounds++
	m.setStatus(statusInfo, fmt.Sprintf("New round: %s. Guess a letter!", m.settings.Level.Title()))
	m.logger.Info("round started",
		"level", m.settings.Level,
		"lives", m.settings.Lives,
		"answer_len", len(answer),
	)
}

// pickAnswer draws a candidate, rejecting ones with unknown tokens
// when validation is on. The last candidate is used if all attempts fail.
func (m *Model) pickAnswer() string {
	answer := m.picker.Pick(m.settings.Level)
	if !m.settings.ValidateAnswers {
		return answer
	}

	for attempt := 1; attempt <= maxPickAttempts; attempt++ {
		err := m.picker.Vocabulary().Validate(answer)
		if err == nil {
			return answer
		}
		m.logger.Warn("rejected answer", "attempt", attempt, "error", err)
		answer = m.picker.Pick(m.settings.Level)
	}
	return answer
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.status = text
	m.statusKind = kind
}

// Round returns the current round.
func (m Model) Round() *hangman.Round {
	return m.round
}

// Status returns the current status line.
func (m Model) Status() string {
	return m.status
}

// Level returns the level used for new rounds.
func (m Model) Level() vocab.Level {
	return m.settings.Level
}

// Countdown returns the per-guess countdown.
func (m Model) Countdown() *core.Countdown {
	return m.countdown
}

// IsQuitting returns true if the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current round.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.round == nil {
		return statusStyles[m.statusKind].Render(m.status)
	}

	snap := m.round.Snapshot()

	title := titleStyle.Render("HANGMAN") + "  " + labelStyle.Render(m.settings.Level.Title())
	board := lipgloss.JoinHorizontal(lipgloss.Top,
		gallowsStyle.Render(renderGallows(snap)),
		renderInfo(snap, m.countdown),
	)
	mask := maskStyle.Render(snap.Mask)
	status := statusStyles[m.statusKind].Render(m.status)

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		board,
		mask,
		renderAlphabet(snap),
		"",
		status,
		"",
		m.help.View(m.keys),
	)

	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return content
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program for local play.
func Run(picker *vocab.Picker, settings Settings, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(picker, settings, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
