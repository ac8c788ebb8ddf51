package singleton

// Eager constructs the instance inside NewEager, before the holder (and
// therefore any Instance call) exists. There is no first-access race to
// guard because there is no first access: by the time another goroutine can
// hold a reference to the holder, construction is complete.
//
// Declared as a package-level var,
//
//	var store = singleton.NewEager(newStore)
//
// this is load-time construction: the runtime initializes package-level
// state single-threaded, before main and before any external code can
// observe the value. The trade-off is paying the construction cost whether
// or not the instance is ever used, and losing the ability to sequence it
// after configuration loaded at runtime.
type Eager[T any] struct {
	val *T
}

// NewEager constructs the instance immediately and returns the holder.
//
// It panics with ErrNilCtor if ctor is nil and with ErrNilInstance if the
// constructor returns nil.
func NewEager[T any](ctor Ctor[T]) *Eager[T] {
	return &Eager[T]{val: mustInstance(mustCtor(ctor)())}
}

// Instance returns the instance constructed by NewEager.
//
// Safe for concurrent use; the holder is immutable after creation.
func (h *Eager[T]) Instance() *T { return h.val }

// Initialized always reports true: an Eager holder cannot exist without its
// instance.
func (h *Eager[T]) Initialized() bool { return true }
