package letters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   map[byte]int
	}{
		{"empty", "", true, map[byte]int{}},
		{"uppercase", "LISTEN", true, map[byte]int{'L': 1, 'I': 1, 'S': 1, 'T': 1, 'E': 1, 'N': 1}},
		{"lowercase folds", "aAb", true, map[byte]int{'A': 2, 'B': 1}},
		{"digit rejected", "CAT3", false, nil},
		{"apostrophe rejected", "DON'T", false, nil},
		{"space rejected", "A B", false, nil},
		{"accented rejected", "CAFÉ", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Count(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Equal(t, Counts{}, got)
				return
			}
			var want Counts
			for b, n := range tt.want {
				want[b-'A'] = n
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestCounts_SubsetOf(t *testing.T) {
	phrase, _ := Count("HELLO")
	tests := []struct {
		word string
		want bool
	}{
		{"HELL", true},
		{"HOLE", true},
		{"HELLO", true},
		{"LLL", false},
		{"HELP", false},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			w, ok := Count(tt.word)
			require.True(t, ok)
			assert.Equal(t, tt.want, w.SubsetOf(phrase))
		})
	}
}

func TestCounts_SubAddEqual(t *testing.T) {
	phrase, _ := Count("LISTEN")
	word, _ := Count("LIST")
	rest := phrase.Sub(word)

	want, _ := Count("EN")
	assert.True(t, rest.Equal(want))
	assert.Equal(t, 2, rest.Len())
	assert.True(t, rest.Add(word).Equal(phrase))

	// Sub returns a copy.
	assert.Equal(t, 6, phrase.Len())
}

func TestMask(t *testing.T) {
	phrase, _ := Count("BANANA")
	word, _ := Count("NAB")
	other, _ := Count("CAB")

	assert.Equal(t, Mask(1<<0|1<<1|1<<13), phrase.Mask())
	assert.True(t, word.Mask().SubsetOf(phrase.Mask()))
	assert.False(t, other.Mask().SubsetOf(phrase.Mask()))

	// Masks ignore multiplicity; counts do not.
	nn, _ := Count("NNNN")
	assert.True(t, nn.Mask().SubsetOf(phrase.Mask()))
	assert.False(t, nn.SubsetOf(phrase))
}
