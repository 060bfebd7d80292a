package anagram

import "github.com/f3rmion/anagram/internal/letters"

// enumerator walks the combinations rooted at one first word. The target and
// results are shared read-only / concurrency-safe; everything else lives on
// the walk's stack.
type enumerator struct {
	target  letters.Counts
	length  int
	results *ResultSet
}

// branch explores every combination starting with first whose remaining
// words are drawn from pool, and returns how many new entries it added.
func (e *enumerator) branch(first Candidate, pool []Candidate) int {
	chosen := make([]Candidate, 1, e.length)
	chosen[0] = first
	return e.walk(chosen, e.target.Sub(first.counts), first.Len(), pool)
}

func (e *enumerator) walk(chosen []Candidate, budget letters.Counts, used int, pool []Candidate) int {
	if used == e.length {
		return e.complete(chosen)
	}

	// Only words that still fit the remaining budget can extend this node.
	feasible := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if c.counts.SubsetOf(budget) && !isChosen(chosen, c.Word) {
			feasible = append(feasible, c)
		}
	}

	found := 0
	for i, c := range feasible {
		if used+c.Len() > e.length {
			// Length ordered: everything after c is at least as long.
			break
		}
		found += e.walk(append(chosen, c), budget.Sub(c.counts), used+c.Len(), feasible[i+1:])
	}
	return found
}

// complete records chosen if its letters are exactly the target's.
func (e *enumerator) complete(chosen []Candidate) int {
	var sum letters.Counts
	words := make([]string, len(chosen))
	for i, c := range chosen {
		sum = sum.Add(c.counts)
		words[i] = c.Word
	}
	if !sum.Equal(e.target) {
		return 0
	}
	if e.results.Add(Canonicalize(words)) {
		return 1
	}
	return 0
}

func isChosen(chosen []Candidate, word string) bool {
	for _, c := range chosen {
		if c.Word == word {
			return true
		}
	}
	return false
}
