package anagram

import "time"

// Hook receives search progress. BranchFinished is called from worker
// goroutines, so implementations must be safe for concurrent use.
type Hook interface {
	SearchStarted(phrase string, words, candidates int)
	BranchFinished(first string, found int)
	SearchFinished(phrase string, results int, elapsed time.Duration)
}

// NopHook ignores every event.
type NopHook struct{}

func (NopHook) SearchStarted(string, int, int)            {}
func (NopHook) BranchFinished(string, int)                {}
func (NopHook) SearchFinished(string, int, time.Duration) {}
