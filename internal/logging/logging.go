// Package logging builds the zerolog logger and the search progress hook.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/f3rmion/anagram/internal/config"
	"github.com/rs/zerolog"
)

// New returns a logger writing to w. Format "json" writes one JSON object
// per event; anything else uses zerolog's human-readable console writer.
func New(cfg config.Log, w io.Writer) zerolog.Logger {
	if !strings.EqualFold(cfg.Format, "json") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to a
// zerolog level; anything else is info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SearchHook logs search progress.
type SearchHook struct {
	log zerolog.Logger
}

// NewSearchHook returns a hook logging to log.
func NewSearchHook(log zerolog.Logger) *SearchHook {
	return &SearchHook{log: log}
}

func (h *SearchHook) SearchStarted(phrase string, words, candidates int) {
	h.log.Info().
		Str("phrase", phrase).
		Int("words", words).
		Int("candidates", candidates).
		Msg("search started")
}

func (h *SearchHook) BranchFinished(first string, found int) {
	h.log.Debug().Str("first", first).Int("found", found).Msg("branch finished")
}

func (h *SearchHook) SearchFinished(phrase string, results int, elapsed time.Duration) {
	h.log.Info().
		Str("phrase", phrase).
		Int("results", results).
		Dur("elapsed", elapsed).
		Msg("search finished")
}
