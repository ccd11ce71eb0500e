package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

var validateCmd = &cobra.Command{
	Use:   "validate <answer>...",
	Short: "Check answers against the vocabulary",
	Long: `Check that every word of each answer is in the vocabulary and
print the normalized form the game would use.

Exits with status 1 if any answer contains unknown words.

Examples:
  hangman validate python
  hangman validate "data science" "machine learning"
  hangman validate "open source" --vocab ./words.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, cfg, "hangman")

	v, err := loadVocabulary(cfg, logger)
	if err != nil {
		fatalf("%v", err)
	}

	failed := false
	for _, answer := range args {
		normalized := hangman.Normalize(answer)

		err := v.Validate(answer)
		var invalid *hangman.InvalidTokenError
		switch {
		case err == nil && normalized == "":
			fmt.Printf("  %-24q  invalid: %v\n", answer, hangman.ErrEmptyAnswer)
			failed = true
		case err == nil:
			fmt.Printf("  %-24q  ok       %s\n", answer, normalized)
		case errors.As(err, &invalid):
			fmt.Printf("  %-24q  invalid: unknown %v\n", answer, invalid.Missing)
			failed = true
		default:
			fatalf("%v", err)
		}
	}

	if failed {
		os.Exit(1)
	}
}
