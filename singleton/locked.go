package singleton

import "sync"

// Locked guards every access with a mutex. The first caller constructs while
// holding the lock; everyone else blocks until construction finishes, so no
// caller can observe a partially-constructed value and the constructor runs
// at most once.
//
// The cost is permanent: the fast path (already constructed) still acquires
// the lock on every call. Prefer Once or DoubleChecked when the accessor is
// hot; Locked is fine for cold paths and is the easiest variant to audit.
type Locked[T any] struct {
	mu   sync.Mutex
	val  *T
	ctor Ctor[T]
}

// NewLocked creates the holder without constructing the instance.
//
// It panics with ErrNilCtor if ctor is nil.
func NewLocked[T any](ctor Ctor[T]) *Locked[T] {
	return &Locked[T]{ctor: mustCtor(ctor)}
}

// Instance returns the instance, constructing it under the lock on first call.
//
// Safe for concurrent use. Panics with ErrNilInstance if the constructor
// returns nil; nothing is published in that case, so a later call retries.
func (h *Locked[T]) Instance() *T {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.val == nil {
		h.val = mustInstance(h.ctor())
	}
	return h.val
}

// Initialized reports whether construction has happened.
func (h *Locked[T]) Initialized() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.val != nil
}
