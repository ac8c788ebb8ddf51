package singleton

import (
	"sync"
	"sync/atomic"
)

// Once delegates the exactly-once guarantee to sync.Once, the primitive the
// runtime provides for this job. Callers that lose the first-access race
// block inside Do until the winner's constructor returns, and Do establishes
// the happens-before edge, so every caller observes the fully-constructed
// instance.
//
// This is the variant to reach for by default. The one sharp edge is
// inherited from sync.Once: if the constructor panics, Do still counts as
// done and the holder is spent. Constructors should not panic.
type Once[T any] struct {
	once sync.Once
	done atomic.Bool
	val  *T
	ctor Ctor[T]
}

// NewOnce creates the holder without constructing the instance.
//
// It panics with ErrNilCtor if ctor is nil.
func NewOnce[T any](ctor Ctor[T]) *Once[T] {
	return &Once[T]{ctor: mustCtor(ctor)}
}

// Instance returns the instance, constructing it on first call.
//
// Safe for concurrent use.
func (h *Once[T]) Instance() *T {
	h.once.Do(func() {
		h.val = mustInstance(h.ctor())
		h.done.Store(true)
	})
	return h.val
}

// Initialized reports whether construction has completed.
//
// It reads a flag set after the constructor returned, so true means the
// instance is fully constructed, not merely in progress.
func (h *Once[T]) Initialized() bool { return h.done.Load() }
