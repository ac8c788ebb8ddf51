package singleton

// Racy is the unsynchronized lazy holder. It checks a plain pointer and
// constructs on nil, with no lock, no atomic and no happens-before edge.
//
// Under concurrent first access it is wrong twice over: two goroutines can
// both observe nil and construct two instances, and a goroutine can observe
// the pointer before the instance's initializing writes become visible,
// returning a partially-constructed value. Both are data races the race
// detector reports.
//
// It is kept because the other four strategies are easiest to understand as
// fixes to this one. Use it from a single goroutine or not at all.
type Racy[T any] struct {
	val  *T
	ctor Ctor[T]
}

// NewRacy creates the holder without constructing the instance.
//
// It panics with ErrNilCtor if ctor is nil.
func NewRacy[T any](ctor Ctor[T]) *Racy[T] {
	return &Racy[T]{ctor: mustCtor(ctor)}
}

// Instance returns the instance, constructing it on first call.
//
// Not safe for concurrent use; see the type comment.
func (h *Racy[T]) Instance() *T {
	if h.val == nil {
		h.val = mustInstance(h.ctor())
	}
	return h.val
}

// Initialized reports whether construction has happened. Like Instance, the
// read is unsynchronized.
func (h *Racy[T]) Initialized() bool { return h.val != nil }
