package anagram

import "sort"

// Order sorts candidates by ascending length, breaking ties
// lexicographically. The enumerator relies on the length order to stop
// scanning at the first word that no longer fits.
func Order(cands []Candidate) []Candidate {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Len() != cands[j].Len() {
			return cands[i].Len() < cands[j].Len()
		}
		return cands[i].Word < cands[j].Word
	})
	return cands
}
