package anagram

import (
	"fmt"
	"runtime"
	"time"

	"github.com/f3rmion/anagram/internal/phrase"
	"github.com/f3rmion/anagram/internal/wordlist"
	"golang.org/x/sync/errgroup"
)

// Solver finds anagram combinations against a word-list provider. A Solver
// holds no per-search state and may be used from several goroutines.
type Solver struct {
	words   wordlist.Provider
	workers int
	hook    Hook
}

// Option configures a Solver.
type Option func(*Solver)

// WithWorkers bounds the number of branches searched concurrently.
// n <= 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(s *Solver) { s.workers = n }
}

// WithHook reports search progress to h.
func WithHook(h Hook) Option {
	return func(s *Solver) {
		if h != nil {
			s.hook = h
		}
	}
}

// New creates a Solver reading its dictionary from words.
func New(words wordlist.Provider, opts ...Option) *Solver {
	s := &Solver{words: words, hook: NopHook{}}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers <= 0 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	return s
}

// FindAnagrams returns every combination of distinct dictionary words whose
// letters are exactly the letters of raw, each as its words sorted and
// joined by Separator, in lexicographic order.
//
// An empty phrase yields an empty result. A phrase containing anything but
// letters and whitespace fails with *phrase.InvalidPhraseError before the
// dictionary is read.
func (s *Solver) FindAnagrams(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}

	p, err := phrase.Normalize(raw)
	if err != nil {
		return nil, err
	}
	if p.Empty() {
		return []string{}, nil
	}

	start := time.Now()
	dict := s.words.ReadWords()
	ordered := Order(Filter(p, dict))
	s.hook.SearchStarted(p.String(), len(dict), len(ordered))

	results := NewResultSet()
	if err := s.fanOut(p, ordered, results); err != nil {
		return nil, err
	}

	out := results.Sorted()
	s.hook.SearchFinished(p.String(), len(out), time.Since(start))
	return out, nil
}

// fanOut searches one branch per candidate, rooted at that candidate and
// drawing further words only from the candidates after it. Every
// combination is therefore owned by the branch of its first word in
// candidate order. All branches are joined before it returns.
func (s *Solver) fanOut(p phrase.Phrase, ordered []Candidate, results *ResultSet) error {
	e := &enumerator{
		target:  p.Counts(),
		length:  p.Len(),
		results: results,
	}

	var g errgroup.Group
	g.SetLimit(s.workers)

	for i, first := range ordered {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("searching branch %q: %v", first.Word, r)
				}
			}()

			found := e.branch(first, ordered[i+1:])
			s.hook.BranchFinished(first.Word, found)
			return nil
		})
	}

	return g.Wait()
}
