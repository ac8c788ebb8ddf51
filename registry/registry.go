package registry

import (
	"errors"
	"reflect"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/sghaida/uno/singleton"
)

// ErrNilRegistry is returned when Shared is called on a nil registry.
var ErrNilRegistry = errors.New("registry: nil registry")

// NilCtorError is returned when Shared is called with a nil constructor for a
// name that has not been constructed yet.
type NilCtorError struct{ Name string }

// Error implements the error interface.
func (e NilCtorError) Error() string {
	// Example: registry: nil constructor for "config-store"
	return "registry: nil constructor for " + strconv.Quote(e.Name)
}

// NilInstanceError is returned when the constructor for a name returned nil.
// The nil is cached (the name is spent, like a panicking sync.Once) so the
// mistake surfaces on every retrieval rather than silently re-constructing.
type NilInstanceError struct{ Name string }

// Error implements the error interface.
func (e NilInstanceError) Error() string {
	// Example: registry: constructor for "config-store" returned nil
	return "registry: constructor for " + strconv.Quote(e.Name) + " returned nil"
}

// WrongTypeError is returned when a name holds an instance of a different
// type than the caller asked for.
type WrongTypeError struct {
	// Name is the registry name requested.
	Name string

	// GotType is reflect.TypeOf(stored).String() for the stored instance.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeError) Error() string {
	// Example: registry: "config-store" holds wrong type (*mypkg.Cache)
	return "registry: " + strconv.Quote(e.Name) + " holds wrong type (" + e.GotType + ")"
}

// entry is one named slot. Its own sync.Once serializes first construction
// for the name, so racing callers block until the winner's constructor
// returns and never observe a partially-constructed instance.
//
// done mirrors "val holds a non-nil instance" for the introspection methods,
// which read outside the Once and need their own visibility edge.
type entry struct {
	once sync.Once
	done atomic.Bool
	val  any
}

// Registry holds one instance per name for the lifetime of the process.
//
// The name → entry map is an xsync.MapOf, so looking up or creating a slot
// never takes a global lock; contention is confined to callers racing on the
// same fresh name, and only until its constructor returns.
type Registry struct {
	entries *xsync.MapOf[string, *entry]
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: xsync.NewMapOf[string, *entry]()}
}

// std is the process-wide registry, constructed at load time.
var std = singleton.NewEager(New)

// Default returns the process-wide registry.
func Default() *Registry { return std.Instance() }

// Shared returns the instance registered under name, constructing it with
// ctor on first call. Exactly one constructor run happens per name, even when
// concurrent callers race on a fresh name; all of them receive the winner's
// instance.
//
// It returns:
//   - ErrNilRegistry if r is nil
//   - NilCtorError if the name is unconstructed and ctor is nil
//   - NilInstanceError if the name's constructor returned nil
//   - WrongTypeError if the name holds a *D where D != T
func Shared[T any](r *Registry, name string, ctor func() *T) (*T, error) {
	if r == nil {
		return nil, ErrNilRegistry
	}

	e, _ := r.entries.LoadOrCompute(name, func() *entry { return &entry{} })

	if ctor == nil {
		// Retrieval-only call. The Once must not run (a no-op execution
		// would spend it), so visibility comes from the done flag instead.
		if !e.done.Load() {
			return nil, NilCtorError{Name: name}
		}
	} else {
		e.once.Do(func() {
			// Store only a real instance: a typed-nil pointer boxed in the
			// any field would defeat the nil checks below.
			if v := ctor(); v != nil {
				e.val = v
				e.done.Store(true)
			}
		})
	}

	if e.val == nil {
		return nil, NilInstanceError{Name: name}
	}

	v, ok := e.val.(*T)
	if !ok {
		return nil, WrongTypeError{
			Name:    name,
			GotType: reflect.TypeOf(e.val).String(),
		}
	}
	return v, nil
}

// MustShared returns the instance registered under name or panics.
//
// Useful in examples and mains where a broken registration should fail fast.
func MustShared[T any](r *Registry, name string, ctor func() *T) *T {
	v, err := Shared(r, name, ctor)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether an instance has been constructed under name.
//
// A name that only ever saw failed retrievals (nil ctor, nil result) does not
// count as constructed.
func (r *Registry) Has(name string) bool {
	if r == nil {
		return false
	}
	e, ok := r.entries.Load(name)
	return ok && e.done.Load()
}

// Len returns the number of constructed instances.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	n := 0
	r.entries.Range(func(_ string, e *entry) bool {
		if e.done.Load() {
			n++
		}
		return true
	})
	return n
}

// Names returns the sorted names of constructed instances.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	var names []string
	r.entries.Range(func(name string, e *entry) bool {
		if e.done.Load() {
			names = append(names, name)
		}
		return true
	})
	sort.Strings(names)
	return names
}
