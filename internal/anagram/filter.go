package anagram

import (
	"github.com/f3rmion/anagram/internal/letters"
	"github.com/f3rmion/anagram/internal/phrase"
)

// Filter keeps the words of dict that could take part in a decomposition
// of p. A word survives when every distinct letter it uses occurs in p and
// no letter is used more often than p provides. Letters are compared
// case-insensitively but the word text is kept as given; dict is not
// deduplicated.
func Filter(p phrase.Phrase, dict []string) []Candidate {
	target := p.Counts()
	mask := target.Mask()

	var out []Candidate
	for _, w := range dict {
		if w == "" {
			continue
		}
		counts, ok := letters.Count(w)
		if !ok {
			continue
		}
		// Cheap rejection of words using letters absent from the phrase.
		if !counts.Mask().SubsetOf(mask) {
			continue
		}
		if !counts.SubsetOf(target) {
			continue
		}
		out = append(out, Candidate{Word: w, counts: counts})
	}
	return out
}
