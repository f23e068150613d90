// Package resultstore provides an ephemeral, thread-safe, in-memory
// store for trial results, keyed by (grid point index, repetition).
//
// The trial runner is sequential today, but every (point, repetition)
// pair is an independent unit of work. Keeping the results behind a
// sync.Map means a worker pool can be dropped into the runner later
// without changing how results are collected or aggregated: each key is
// written exactly once, by whichever goroutine ran that trial.
package resultstore

import "sync"

// Key identifies a single trial within one sweep.
type Key struct {
	Point      int
	Repetition int
}

// Store is an in-memory trial result store. Values are opaque to the
// store; the sweep engine records its own trial record type.
type Store struct {
	trials sync.Map // Key -> any
}

// New creates a new, empty result store.
func New() *Store {
	return &Store{}
}

// Record stores the result of one trial. Each (point, repetition) key
// is expected to be written at most once per sweep.
func (s *Store) Record(point, repetition int, result any) {
	s.trials.Store(Key{Point: point, Repetition: repetition}, result)
}

// Get retrieves the result of one trial, reporting whether it was
// recorded.
func (s *Store) Get(point, repetition int) (any, bool) {
	return s.trials.Load(Key{Point: point, Repetition: repetition})
}

// Len returns the number of recorded trials.
func (s *Store) Len() int {
	n := 0
	s.trials.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}
