// Package wordlist supplies the dictionary the anagram search draws from.
package wordlist

import (
	"fmt"

	"github.com/f3rmion/anagram/internal/config"
	"github.com/rs/zerolog"
)

// Provider supplies the dictionary. ReadWords never fails: when the backing
// source cannot be loaded it returns an empty slice.
type Provider interface {
	ReadWords() []string
}

// Source loads a word list and reports failures.
type Source interface {
	Load() ([]string, error)
	String() string
}

// Static is a Provider over a fixed list of words.
type Static []string

// ReadWords returns a copy of the list.
func (s Static) ReadWords() []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Fallible adapts a Source to the Provider contract. Load errors are logged
// as "source unavailable" and reported to the caller as an empty list.
type Fallible struct {
	src Source
	log zerolog.Logger
}

// NewProvider wraps src.
func NewProvider(src Source, log zerolog.Logger) *Fallible {
	return &Fallible{src: src, log: log}
}

// ReadWords loads the source on every call.
func (f *Fallible) ReadWords() []string {
	words, err := f.src.Load()
	if err != nil {
		f.log.Warn().Err(err).Str("source", f.src.String()).Msg("word list source unavailable")
		return []string{}
	}
	f.log.Debug().Str("source", f.src.String()).Int("words", len(words)).Msg("word list loaded")
	return words
}

// Open returns the source selected by cfg.
func Open(cfg config.Wordlist) (Source, error) {
	switch cfg.Source {
	case config.SourceEmbedded, "":
		return Embedded(), nil
	case config.SourceFile:
		return File(cfg.Path), nil
	case config.SourceSQLite:
		return SQLite(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unknown word list source %q", cfg.Source)
	}
}
