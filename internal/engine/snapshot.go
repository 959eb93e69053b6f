package engine

import "sync/atomic"

// Published holds the latest frame snapshot. The simulation builds a fresh
// value at the end of each frame and publishes it; readers on any goroutine
// get a complete frame, never a half-written one. Snapshots must not be
// mutated after Publish.
type Published[T any] struct {
	p atomic.Pointer[T]
}

// Publish replaces the current snapshot.
func (s *Published[T]) Publish(v T) {
	s.p.Store(&v)
}

// Load returns the latest snapshot and whether one was published.
func (s *Published[T]) Load() (T, bool) {
	p := s.p.Load()
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
