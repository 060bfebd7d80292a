package banner

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, 0, Width(""))
	assert.Equal(t, 7, Width("A"))
	assert.Equal(t, 42, Width("LISTEN"))
}

func TestRender(t *testing.T) {
	out := Render("EAT", 80)
	require.NotEmpty(t, out)

	lines := strings.Split(out, "\n")
	assert.LessOrEqual(t, len(lines), 7)
	for _, line := range lines {
		assert.Equal(t, Width("EAT"), utf8.RuneCountInString(line))
		assert.Equal(t, "", strings.Trim(line, " ▀▄█"), "unexpected rune in %q", line)
	}
	assert.Contains(t, out, "█")
}

func TestRender_TooWideOrEmpty(t *testing.T) {
	assert.Empty(t, Render("", 80))
	assert.Empty(t, Render("DORMITORY", 20))
}

func TestCached(t *testing.T) {
	first := Cached("AI", 80)
	require.NotEmpty(t, first)
	assert.Equal(t, first, Cached("AI", 80))
	assert.Empty(t, Cached("AI", 5))
}
