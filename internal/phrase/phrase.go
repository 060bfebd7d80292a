// Package phrase normalizes and validates the phrase to be decomposed.
package phrase

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/f3rmion/anagram/internal/letters"
)

// ErrInvalidPhrase is matched by every *InvalidPhraseError via errors.Is.
var ErrInvalidPhrase = errors.New("invalid phrase")

// InvalidPhraseError reports a character outside A-Z in a phrase.
type InvalidPhraseError struct {
	Phrase string // raw input
	Char   rune   // first offending character
	Pos    int    // rune index of Char within the whitespace-free phrase
}

func (e *InvalidPhraseError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d in phrase %q", e.Char, e.Pos, e.Phrase)
}

// Is lets errors.Is(err, ErrInvalidPhrase) match.
func (e *InvalidPhraseError) Is(target error) bool {
	return target == ErrInvalidPhrase
}

// Phrase is a whitespace-free sequence of uppercase A-Z letters.
type Phrase struct {
	text   string
	counts letters.Counts
}

// Normalize strips all whitespace from raw, folds it to uppercase and
// checks that only the letters A-Z remain.
func Normalize(raw string) (Phrase, error) {
	var sb strings.Builder
	sb.Grow(len(raw))

	pos := 0
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		switch {
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r)
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r - 'a' + 'A')
		default:
			return Phrase{}, &InvalidPhraseError{Phrase: raw, Char: r, Pos: pos}
		}
		pos++
	}

	text := sb.String()
	counts, _ := letters.Count(text)
	return Phrase{text: text, counts: counts}, nil
}

// String returns the normalized text.
func (p Phrase) String() string { return p.text }

// Len is the number of letters in the phrase.
func (p Phrase) Len() int { return len(p.text) }

// Empty reports whether the phrase has no letters.
func (p Phrase) Empty() bool { return p.text == "" }

// Counts returns the phrase's letter multiset.
func (p Phrase) Counts() letters.Counts { return p.counts }
