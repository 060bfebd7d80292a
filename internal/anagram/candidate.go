// Package anagram finds every multiset of dictionary words whose letters
// exactly partition a phrase.
//
// A search filters the dictionary down to the words whose letters fit in the
// phrase, orders them by length, then explores one independent branch per
// first word concurrently. Completed combinations are canonicalized (words
// sorted and joined by a single space) and collected into a shared set, so
// the result is identical regardless of how many workers ran the branches.
package anagram

import (
	"sort"
	"strings"

	"github.com/f3rmion/anagram/internal/letters"
)

// Separator joins the words of a canonical combination.
const Separator = " "

// Candidate is a dictionary word that fits inside the phrase.
type Candidate struct {
	Word   string
	counts letters.Counts
}

// Len is the number of letters in the word.
func (c Candidate) Len() int { return len(c.Word) }

// Canonicalize sorts words alphabetically and joins them with Separator, so
// the same multiset of words always yields the same entry.
func Canonicalize(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)
	return strings.Join(sorted, Separator)
}
