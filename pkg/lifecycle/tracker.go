// Package lifecycle associates mounted instances with their teardown.
//
// The Tracker holds instances weakly: an instance the caller no longer
// references can be collected, and its entry disappears with it. While the
// instance is reachable its teardown stays registered.
package lifecycle

import (
	"runtime"
	"sync"
	"weak"
)

// Tracker maps live instances of T to their teardown functions.
type Tracker[T any] struct {
	mu      sync.Mutex
	entries map[weak.Pointer[T]]func()
}

// NewTracker creates an empty Tracker.
func NewTracker[T any]() *Tracker[T] {
	return &Tracker[T]{entries: make(map[weak.Pointer[T]]func())}
}

// Track records teardown for inst. A later Track for the same instance
// replaces the earlier teardown.
func (t *Tracker[T]) Track(inst *T, teardown func()) {
	key := weak.Make(inst)

	t.mu.Lock()
	_, existed := t.entries[key]
	t.entries[key] = teardown
	t.mu.Unlock()

	if !existed {
		runtime.AddCleanup(inst, t.forget, key)
	}
}

// Take removes and returns the teardown for inst.
func (t *Tracker[T]) Take(inst *T) (func(), bool) {
	if inst == nil {
		return nil, false
	}
	key := weak.Make(inst)

	t.mu.Lock()
	defer t.mu.Unlock()
	fn, ok := t.entries[key]
	if ok {
		delete(t.entries, key)
	}
	return fn, ok
}

// Has reports whether inst has a registered teardown.
func (t *Tracker[T]) Has(inst *T) bool {
	if inst == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.entries[weak.Make(inst)]
	return ok
}

// Len returns the number of tracked instances.
func (t *Tracker[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func (t *Tracker[T]) forget(key weak.Pointer[T]) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, key)
}
