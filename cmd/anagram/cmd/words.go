package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/f3rmion/anagram/internal/wordlist"
	"github.com/spf13/cobra"
)

// defaultDBName is the word database file inside the config directory.
const defaultDBName = "words.db"

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the SQLite word database",
	Long: `Manage the SQLite word database used when config.yaml sets
wordlist.source to sqlite.`,
}

var wordsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a text or JSONL word list into the database",
	Long: `Import words from a file into the SQLite word database.

Plain text files hold one word per line; blank lines and lines starting with
# are skipped. Files ending in .jsonl hold one {"word": ...} object per line.
Words already in the database are left alone.

Example:
  anagram words import /usr/share/dict/words
  anagram words import words.jsonl --db ./words.db`,
	Args: cobra.ExactArgs(1),
	RunE: runWordsImport,
}

var wordsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show word database statistics",
	RunE:  runWordsStats,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsCmd.AddCommand(wordsImportCmd)
	wordsCmd.AddCommand(wordsStatsCmd)

	wordsCmd.PersistentFlags().String("db", "", "word database path (default is words.db in the config directory)")
}

func dbPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("db"); path != "" {
		return path
	}
	return filepath.Join(getConfigDir(), defaultDBName)
}

func runWordsImport(cmd *cobra.Command, args []string) error {
	src := wordlist.File(args[0])
	words, err := src.Load()
	if err != nil {
		return err
	}

	path := dbPath(cmd)
	n, err := wordlist.Import(cmd.Context(), path, words)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d words from %s into %s\n", n, len(words), args[0], path)
	return nil
}

func runWordsStats(cmd *cobra.Command, args []string) error {
	path := dbPath(cmd)
	st, err := wordlist.ReadStats(cmd.Context(), path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Database: %s\n", path)
	fmt.Fprintf(out, "Words:    %d\n", st.Words)
	fmt.Fprintf(out, "Longest:  %d letters\n", st.Longest)
	return nil
}
