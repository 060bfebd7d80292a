// Package config handles loading and saving the anagram configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.yaml"

// Word-list sources.
const (
	SourceEmbedded = "embedded" // Word list bundled into the binary
	SourceFile     = "file"     // Plain text or JSONL file
	SourceSQLite   = "sqlite"   // SQLite database with a words table
)

// Config holds all user configuration.
type Config struct {
	Wordlist Wordlist `yaml:"wordlist"`
	Search   Search   `yaml:"search"`
	Log      Log      `yaml:"log"`
}

// Wordlist selects where the dictionary is read from.
type Wordlist struct {
	Source string `yaml:"source"`         // embedded, file, sqlite
	Path   string `yaml:"path,omitempty"` // Required for file and sqlite
}

// Search tunes the search engine.
type Search struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// Log configures the logger.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Wordlist: Wordlist{Source: SourceEmbedded},
		Log:      Log{Level: "info", Format: "console"},
	}
}

// Load reads the configuration from a YAML file. A missing file yields the
// defaults; fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Wordlist.Source {
	case SourceEmbedded:
	case SourceFile, SourceSQLite:
		if c.Wordlist.Path == "" {
			return fmt.Errorf("wordlist.path is required for source %q", c.Wordlist.Source)
		}
	default:
		return fmt.Errorf("unknown wordlist.source %q", c.Wordlist.Source)
	}

	if c.Search.Workers < 0 {
		return fmt.Errorf("search.workers must not be negative, got %d", c.Search.Workers)
	}

	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log.format %q", c.Log.Format)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "anagram"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}
