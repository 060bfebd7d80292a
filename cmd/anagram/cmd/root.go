// Package cmd contains all CLI commands for the anagram tool.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/anagram/internal/anagram"
	"github.com/f3rmion/anagram/internal/config"
	"github.com/f3rmion/anagram/internal/logging"
	"github.com/f3rmion/anagram/internal/tui"
	"github.com/f3rmion/anagram/internal/wordlist"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// logFileName receives log output while the TUI owns the terminal.
const logFileName = "anagram.log"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "anagram",
	Short: "Find every way to spell a phrase with dictionary words",
	Long: `anagram finds all combinations of dictionary words whose letters,
taken together, are exactly the letters of a phrase.

Spaces and letter case in the phrase are ignored; any other character is
rejected. Each combination is printed as its words in alphabetical order,
separated by spaces.

The dictionary is the bundled English word list unless config.yaml selects
a text, JSONL or SQLite word list.

Running 'anagram' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/anagram)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("log-format", "", "log format: console or json (overrides config)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig reads in ENV variables if set and resolves the config directory.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		configDir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", configDir)
	}

	viper.SetEnvPrefix("ANAGRAM")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadConfig reads config.yaml from the config directory and applies flag
// and environment overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(getConfigDir(), config.FileName))
	if err != nil {
		return nil, err
	}

	if viper.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}
	if format := viper.GetString("log_format"); format != "" {
		cfg.Log.Format = format
	}
	if workers := viper.GetInt("workers"); workers > 0 {
		cfg.Search.Workers = workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSolver wires the configured word list, logger and worker count into a
// solver.
func newSolver(cfg *config.Config, log zerolog.Logger) (*anagram.Solver, error) {
	src, err := wordlist.Open(cfg.Wordlist)
	if err != nil {
		return nil, err
	}

	return anagram.New(
		wordlist.NewProvider(src, log),
		anagram.WithWorkers(cfg.Search.Workers),
		anagram.WithHook(logging.NewSearchHook(log)),
	), nil
}

// runTUI launches the interactive prompt.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if err := config.EnsureConfigDir(getConfigDir()); err == nil {
		f, err := os.OpenFile(filepath.Join(getConfigDir(), logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			defer f.Close()
			logOut = f
		}
	}

	solver, err := newSolver(cfg, logging.New(cfg.Log, logOut))
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(solver), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
