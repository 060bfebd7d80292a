package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/f3rmion/anagram/internal/config"
	"github.com/f3rmion/anagram/internal/phrase"
	"github.com/f3rmion/anagram/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so commands can be executed
// repeatedly within one test binary.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// setupConfig writes a config directory whose word list is the given words.
func setupConfig(t *testing.T, words ...string) string {
	t.Helper()
	dir := t.TempDir()

	listPath := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(listPath, []byte(strings.Join(words, "\n")), 0644))

	cfg := config.Default()
	cfg.Wordlist = config.Wordlist{Source: config.SourceFile, Path: listPath}
	cfg.Log.Level = "error"
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

	return dir
}

func TestFind(t *testing.T) {
	dir := setupConfig(t, "LISTEN", "SILENT", "EN", "LIST", "ENLIST", "TOAST")

	out, _, err := execute(t, "find", "--config", dir, "listen")
	require.NoError(t, err)
	assert.Equal(t, "EN LIST\nENLIST\nLISTEN\nSILENT\n", out)
}

func TestFind_JoinsArguments(t *testing.T) {
	dir := setupConfig(t, "LISTEN", "SILENT")

	out, _, err := execute(t, "find", "--config", dir, "lis", "ten")
	require.NoError(t, err)
	assert.Equal(t, "LISTEN\nSILENT\n", out)
}

func TestFind_Count(t *testing.T) {
	dir := setupConfig(t, "LISTEN", "SILENT", "EN", "LIST", "ENLIST")

	out, _, err := execute(t, "find", "--config", dir, "--count", "--workers", "2", "listen")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	// Flags do not leak into the next run.
	out, _, err = execute(t, "find", "--config", dir, "silent")
	require.NoError(t, err)
	assert.Equal(t, "EN LIST\nENLIST\nLISTEN\nSILENT\n", out)
}

func TestFind_InvalidPhrase(t *testing.T) {
	dir := setupConfig(t, "CAT")

	out, stderr, err := execute(t, "find", "--config", dir, "cat3")
	require.Error(t, err)
	assert.ErrorIs(t, err, phrase.ErrInvalidPhrase)
	assert.Empty(t, out)
	assert.Contains(t, stderr, tui.InvalidPhraseMessage)
}

func TestFind_NoResults(t *testing.T) {
	dir := setupConfig(t, "CAT")

	out, _, err := execute(t, "find", "--config", dir, "dog")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFind_MissingWordListIsEmpty(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Wordlist = config.Wordlist{Source: config.SourceFile, Path: filepath.Join(dir, "gone.txt")}
	cfg.Log.Level = "error"
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

	out, _, err := execute(t, "find", "--config", dir, "--count", "listen")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestFind_EmbeddedWordList(t *testing.T) {
	// No config file: the bundled list is used.
	out, _, err := execute(t, "find", "--config", t.TempDir(), "--log-format", "json", "--count", "listen")
	require.NoError(t, err)
	assert.NotEqual(t, "0\n", out)
}

func TestFind_BadLogFormat(t *testing.T) {
	_, _, err := execute(t, "find", "--config", t.TempDir(), "--log-format", "xml", "listen")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log.format")
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anagram")

	out, _, err := execute(t, "init", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, _, err = execute(t, "init", "--config", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = execute(t, "init", "--config", dir, "--force")
	require.NoError(t, err)
}

func TestWordsImportAndStats(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(list, []byte("# words\nlisten\nsilent\n\nenlist\nlisten\n"), 0644))

	out, _, err := execute(t, "words", "import", "--config", dir, list)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 3 of 4 words")

	out, _, err = execute(t, "words", "stats", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Words:    3")
	assert.Contains(t, out, "Longest:  6 letters")
	assert.Contains(t, out, filepath.Join(dir, defaultDBName))

	// Use the imported database for a search.
	cfg := config.Default()
	cfg.Wordlist = config.Wordlist{Source: config.SourceSQLite, Path: filepath.Join(dir, defaultDBName)}
	cfg.Log.Level = "error"
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

	out, _, err = execute(t, "find", "--config", dir, "tinsel")
	require.NoError(t, err)
	assert.Equal(t, "enlist\nlisten\nsilent\n", out)
}

func TestWordsStats_ExplicitDB(t *testing.T) {
	_, _, err := execute(t, "words", "stats", "--db", filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening word database")
}
