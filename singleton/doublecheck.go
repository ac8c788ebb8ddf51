package singleton

import (
	"sync"
	"sync/atomic"
)

// DoubleChecked is the check/lock/check-again holder.
//
// The fast path is a single atomic pointer load with no lock. On a miss the
// caller takes the mutex, re-checks (a loser of the race may find the winner
// already published), constructs, and publishes with an atomic store.
//
// The atomic pair is what makes this safe: the store is release-ordered and
// the load acquire-ordered, so every initializing write the constructor made
// happens-before any read through the loaded pointer. Replace the atomic with
// a plain pointer and this degrades into Racy with extra steps: the lock
// alone does not order the unsynchronized first check against publication.
type DoubleChecked[T any] struct {
	ptr  atomic.Pointer[T]
	mu   sync.Mutex
	ctor Ctor[T]
}

// NewDoubleChecked creates the holder without constructing the instance.
//
// It panics with ErrNilCtor if ctor is nil.
func NewDoubleChecked[T any](ctor Ctor[T]) *DoubleChecked[T] {
	return &DoubleChecked[T]{ctor: mustCtor(ctor)}
}

// Instance returns the instance, constructing it on first call.
//
// Safe for concurrent use. After first construction the call is lock-free.
// Panics with ErrNilInstance if the constructor returns nil; nothing is
// published in that case, so a later call retries.
func (h *DoubleChecked[T]) Instance() *T {
	if p := h.ptr.Load(); p != nil {
		return p
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// Re-check: another goroutine may have constructed and published while
	// this one was queued on the lock.
	if p := h.ptr.Load(); p != nil {
		return p
	}

	p := mustInstance(h.ctor())
	h.ptr.Store(p)
	return p
}

// Initialized reports whether construction has happened, without locking.
func (h *DoubleChecked[T]) Initialized() bool { return h.ptr.Load() != nil }
