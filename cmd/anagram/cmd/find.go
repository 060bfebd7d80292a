package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/f3rmion/anagram/internal/logging"
	"github.com/f3rmion/anagram/internal/phrase"
	"github.com/f3rmion/anagram/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var findCmd = &cobra.Command{
	Use:   "find <phrase...>",
	Short: "Print every anagram combination of a phrase",
	Long: `Print every combination of dictionary words that uses exactly the
letters of the phrase, one combination per line in alphabetical order.

Arguments are joined with a space, so quoting is optional.

Example:
  anagram find listen
  anagram find "dormitory"
  anagram find --count astronomer`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().Int("workers", 0, "concurrent search branches (default is the number of CPUs)")
	findCmd.Flags().Bool("count", false, "print only the number of combinations")

	viper.BindPFlag("workers", findCmd.Flags().Lookup("workers"))
}

func runFind(cmd *cobra.Command, args []string) error {
	countOnly, _ := cmd.Flags().GetBool("count")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	solver, err := newSolver(cfg, logging.New(cfg.Log, os.Stderr))
	if err != nil {
		return err
	}

	results, err := solver.FindAnagrams(strings.Join(args, " "))
	if errors.Is(err, phrase.ErrInvalidPhrase) {
		fmt.Fprintln(cmd.ErrOrStderr(), tui.InvalidPhraseMessage)
		return err
	}
	if err != nil {
		return fmt.Errorf("finding anagrams: %w", err)
	}

	out := cmd.OutOrStdout()
	if countOnly {
		fmt.Fprintln(out, len(results))
		return nil
	}
	for _, r := range results {
		fmt.Fprintln(out, r)
	}

	return nil
}
