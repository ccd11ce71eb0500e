// hangman is a terminal hangman game with words and phrases.
//
// Usage:
//
//	hangman play               - Play in the terminal
//	hangman validate <answer>  - Check an answer against the vocabulary
//	hangman vocab list         - Show the vocabulary
//	hangman vocab import <f>   - Import a YAML vocabulary into the store
//	hangman serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.hangman/config.yaml)
//	--seed <value>      - Set RNG seed for reproducible answers
//	--vocab <path>      - Vocabulary YAML file
//	--store <path>      - SQLite vocabulary store (wins over --vocab)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/storage"
	"github.com/vovakirdan/tui-hangman/internal/vocab"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagVocab    string
	flagStore    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - Guess words and phrases in your terminal",
	Long: `Hangman is a terminal word-guessing game. Guess the hidden word
(basic level) or phrase (intermediate level) one letter at a time
before the gallows is complete. Each guess has a countdown; letting
it run out costs a life.

Available commands:
  play      - Play a game in this terminal
  validate  - Check answers against the vocabulary
  vocab     - List or import vocabulary
  serve     - Start SSH server for remote play

Examples:
  hangman play
  hangman play --level intermediate --difficulty hard
  hangman validate "data science"
  hangman vocab import ./words.yaml --store ~/.hangman/vocab.db
  hangman serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagVocab, "vocab", "", "Path to vocabulary YAML (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Path to SQLite vocabulary store")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file and applies global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}

	if flagVocab != "" {
		cfg.Vocabulary.Path = flagVocab
	}
	if flagStore != "" {
		cfg.Vocabulary.Store = flagStore
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			fatalf("%v", err)
		}
	}
	return cfg
}

// newLogger creates a logger writing to w at the configured level.
func newLogger(w io.Writer, cfg config.Config, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           cfg.LogLevel(),
	})
}

// loadVocabulary returns the answer source selected by the config:
// the SQLite store, a YAML file, or the built-in vocabulary.
func loadVocabulary(cfg config.Config, logger *log.Logger) (*vocab.Vocabulary, error) {
	switch {
	case cfg.Vocabulary.Store != "":
		store, err := storage.Open(cfg.Vocabulary.Store)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		logger.Debug("loading vocabulary", "store", cfg.Vocabulary.Store)
		return store.Load()

	case cfg.Vocabulary.Path != "":
		path, err := config.ExpandHome(cfg.Vocabulary.Path)
		if err != nil {
			return nil, err
		}

		logger.Debug("loading vocabulary", "file", path)
		return vocab.FileSource{Path: path}.Load()

	default:
		return vocab.Default(), nil
	}
}

// fatalf prints an error and exits with status 1.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
