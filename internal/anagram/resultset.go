package anagram

import (
	"sort"
	"sync"
)

// ResultSet is a set of canonical combinations safe for concurrent inserts.
type ResultSet struct {
	mu      sync.Mutex
	entries map[string]struct{}
}

// NewResultSet returns an empty set.
func NewResultSet() *ResultSet {
	return &ResultSet{entries: make(map[string]struct{})}
}

// Add inserts entry unless it is already present and reports whether it was
// added.
func (s *ResultSet) Add(entry string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[entry]; ok {
		return false
	}
	s.entries[entry] = struct{}{}
	return true
}

// Len returns the number of entries.
func (s *ResultSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sorted returns the entries in lexicographic order.
func (s *ResultSet) Sorted() []string {
	s.mu.Lock()
	out := make([]string, 0, len(s.entries))
	for e := range s.entries {
		out = append(out, e)
	}
	s.mu.Unlock()

	sort.Strings(out)
	return out
}
