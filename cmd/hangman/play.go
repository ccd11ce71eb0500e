package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/vocab"
)

var (
	flagLevel      string
	flagLives      int
	flagTimeout    int
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play hangman",
	Long: `Start a hangman game in this terminal.

Controls:
  a-z     - Guess a letter
  Enter   - New round
  Tab     - Switch level (word / phrase)
  ?       - Toggle help
  Esc     - Quit

Difficulty options:
  easy    - 8 lives
  normal  - 6 lives
  hard    - 4 lives

Examples:
  hangman play
  hangman play --level intermediate
  hangman play --difficulty hard --timeout 10
  hangman play --timeout 0            # no countdown
  hangman play --seed 42              # reproducible answers`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level: basic (word) or intermediate (phrase)")
	playCmd.Flags().IntVar(&flagLives, "lives", 0, "Number of lives (overrides difficulty)")
	playCmd.Flags().IntVar(&flagTimeout, "timeout", -1, "Seconds per guess, 0 disables the countdown")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()

	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fatalf("%v", err)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if cmd.Flags().Changed("lives") {
		cfg.Game.Lives = flagLives
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Game.GuessTimeout = flagTimeout
	}
	if flagLevel != "" {
		cfg.Game.Level = flagLevel
	}
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}

	// The alt screen owns stdout, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		path, err := config.ExpandHome(cfg.Log.File)
		if err != nil {
			fatalf("%v", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			fatalf("cannot open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, cfg, "hangman")

	v, err := loadVocabulary(cfg, logger)
	if err != nil {
		fatalf("%v", err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	picker := vocab.NewPicker(v, rc.Seed)
	picker.SetPhraseChance(cfg.Game.PhraseChance)

	settings := tui.Settings{
		Lives:           cfg.Game.Lives,
		GuessTimeout:    cfg.Game.GuessTimeout,
		Level:           cfg.GameLevel(),
		ValidateAnswers: cfg.Game.ValidateAnswers,
	}

	if err := tui.Run(picker, settings, logger, rc); err != nil {
		fatalf("running game: %v", err)
	}
}
