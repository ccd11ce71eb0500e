package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/storage"
	"github.com/vovakirdan/tui-hangman/internal/vocab"
)

// defaultStorePath is used by the store commands when no store is configured.
const defaultStorePath = "~/.hangman/vocab.db"

var (
	flagPhrases bool
	flagReplace bool
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "List or manage the vocabulary",
	Long: `Inspect the vocabulary answers are drawn from, or manage the
SQLite vocabulary store.

Examples:
  hangman vocab list
  hangman vocab list --phrases
  hangman vocab import ./words.yaml
  hangman vocab import ./words.yaml --replace --store ./vocab.db
  hangman vocab remove lambda
  hangman vocab stats`,
}

var vocabListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vocabulary words (or phrases)",
	Args:  cobra.NoArgs,
	Run:   runVocabList,
}

var vocabImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Import a YAML vocabulary into the store",
	Args:  cobra.ExactArgs(1),
	Run:   runVocabImport,
}

var vocabRemoveCmd = &cobra.Command{
	Use:   "remove <word>...",
	Short: "Remove words (and phrases using them) from the store",
	Args:  cobra.MinimumNArgs(1),
	Run:   runVocabRemove,
}

var vocabStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store statistics",
	Args:  cobra.NoArgs,
	Run:   runVocabStats,
}

func init() {
	vocabListCmd.Flags().BoolVar(&flagPhrases, "phrases", false, "List curated phrases instead of words")
	vocabImportCmd.Flags().BoolVar(&flagReplace, "replace", false, "Clear the store before importing")

	vocabCmd.AddCommand(vocabListCmd)
	vocabCmd.AddCommand(vocabImportCmd)
	vocabCmd.AddCommand(vocabRemoveCmd)
	vocabCmd.AddCommand(vocabStatsCmd)
}

func runVocabList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, cfg, "hangman")

	v, err := loadVocabulary(cfg, logger)
	if err != nil {
		fatalf("%v", err)
	}

	items := v.SortedWords()
	kind := "words"
	if flagPhrases {
		items = v.Phrases
		kind = "phrases"
	}

	if len(items) == 0 {
		fmt.Printf("No %s available.\n", kind)
		return
	}

	fmt.Printf("Vocabulary %s (%d):\n", kind, len(items))
	fmt.Println()
	for _, item := range items {
		fmt.Printf("  %s\n", item)
	}
}

func runVocabImport(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, cfg, "hangman")

	v, err := vocab.LoadFile(args[0])
	if err != nil {
		fatalf("%v", err)
	}

	store := openStore(cfg)
	defer store.Close()

	if flagReplace {
		if err := store.Clear(); err != nil {
			fatalf("%v", err)
		}
		logger.Info("store cleared")
	}

	res, err := store.Import(v)
	if err != nil {
		fatalf("%v", err)
	}
	logger.Info("vocabulary imported",
		"file", args[0],
		"words_added", res.WordsAdded,
		"phrases_added", res.PhrasesAdded,
	)

	fmt.Printf("Imported %d new words and %d new phrases.\n", res.WordsAdded, res.PhrasesAdded)
	printStats(store)
}

func runVocabRemove(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, cfg, "hangman")

	store := openStore(cfg)
	defer store.Close()

	for _, word := range args {
		word = strings.ToLower(strings.TrimSpace(word))
		removed, err := store.RemoveWord(word)
		if err != nil {
			fatalf("%v", err)
		}
		if !removed {
			logger.Warn("word not in store", "word", word)
			continue
		}
		fmt.Printf("Removed %s\n", word)
	}
}

func runVocabStats(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store := openStore(cfg)
	defer store.Close()

	printStats(store)
}

// openStore opens the configured vocabulary store, or the default one.
func openStore(cfg config.Config) *storage.Store {
	path := cfg.Vocabulary.Store
	if path == "" {
		path = defaultStorePath
	}

	store, err := storage.Open(path)
	if err != nil {
		fatalf("%v", err)
	}
	return store
}

func printStats(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("Store: %d words, %d phrases", stats.Words, stats.Phrases)
	if !stats.LastImport.IsZero() {
		fmt.Printf(" (last import %s)", stats.LastImport.Format("2006-01-02 15:04"))
	}
	fmt.Println()
}
