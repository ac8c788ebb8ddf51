package singleton

import "errors"

var (
	// ErrNilCtor is the panic value when a holder is created with a nil
	// constructor function. There is nothing sensible a holder can do later,
	// so the mistake surfaces at creation time.
	ErrNilCtor = errors.New("singleton: nil constructor")

	// ErrNilInstance is the panic value when a constructor returns nil.
	// The lazy holders use the nil pointer as the not-yet-constructed
	// sentinel; accepting a nil result would silently re-run the constructor
	// on every call and break the at-most-once contract.
	ErrNilInstance = errors.New("singleton: constructor returned nil instance")
)

// Ctor constructs the instance a holder guards.
//
// It must return a non-nil pointer and should be side-effect free beyond
// cheap setup (a log line is fine). It may run at most once per holder.
type Ctor[T any] func() *T

// Holder is the single contract all five strategies satisfy: Instance returns
// the same fully-constructed pointer on every call, across every concurrent
// caller, for the lifetime of the holder.
//
// Initialized reports whether construction has already happened. It is a
// snapshot for introspection and logging; by the time the caller acts on it
// another goroutine may have constructed the instance.
type Holder[T any] interface {
	Instance() *T
	Initialized() bool
}

// mustCtor validates a constructor at holder-creation time.
func mustCtor[T any](ctor Ctor[T]) Ctor[T] {
	if ctor == nil {
		panic(ErrNilCtor)
	}
	return ctor
}

// mustInstance validates a constructor's result.
func mustInstance[T any](v *T) *T {
	if v == nil {
		panic(ErrNilInstance)
	}
	return v
}
