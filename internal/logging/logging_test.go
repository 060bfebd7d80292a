package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/f3rmion/anagram/internal/anagram"
	"github.com/f3rmion/anagram/internal/config"
	"github.com/f3rmion/anagram/internal/wordlist"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ anagram.Hook = (*SearchHook)(nil)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{" Warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.level))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.Log{Level: "info", Format: "json"}, &buf)

	log.Info().Str("k", "v").Msg("hello")

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "hello", m["message"])
	assert.Equal(t, "v", m["k"])
	assert.Equal(t, "info", m["level"])
	assert.Contains(t, m, "time")
}

func TestNew_ConsoleIsNotJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.Log{Level: "info", Format: "console"}, &buf)

	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.Log{Level: "warn", Format: "json"}, &buf)

	log.Info().Msg("suppressed")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSearchHook(t *testing.T) {
	var buf bytes.Buffer
	// Branches log from worker goroutines.
	log := New(config.Log{Level: "debug", Format: "json"}, zerolog.SyncWriter(&buf))

	s := anagram.New(wordlist.Static{"A", "I", "AI"}, anagram.WithHook(NewSearchHook(log)))
	got, err := s.FindAnagrams("ai")
	require.NoError(t, err)
	require.Len(t, got, 2)

	var messages []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		messages = append(messages, m["message"].(string))
	}

	require.Len(t, messages, 5)
	assert.Equal(t, "search started", messages[0])
	assert.Equal(t, "search finished", messages[4])
	for _, m := range messages[1:4] {
		assert.Equal(t, "branch finished", m)
	}
}

func TestSearchHook_InfoHidesBranches(t *testing.T) {
	var buf bytes.Buffer
	h := NewSearchHook(New(config.Log{Level: "info", Format: "json"}, &buf))

	h.BranchFinished("A", 1)
	assert.Zero(t, buf.Len())

	h.SearchFinished("AI", 2, 3*time.Millisecond)
	assert.Contains(t, buf.String(), `"results":2`)
	assert.Contains(t, buf.String(), `"elapsed":3`)
}
