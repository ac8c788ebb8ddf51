// Package singleton provides small, explicit exactly-once construction holders for Go.
//
// This package intentionally supports five strategies for the same contract:
//
//   - Racy — unsynchronized lazy check. Broken under concurrency on purpose: it
//     exists to show the publication hazard the other strategies eliminate, and
//     to give the race detector something to find. Single-goroutine use only.
//
//   - Locked — a mutex around every access. First construction is serialized and
//     every later read still pays for the lock. Correct, simple, slowest hot path.
//
//   - DoubleChecked — an atomic pointer load on the fast path, a mutex plus a
//     re-check on the slow path. After first construction the hot path is a
//     single atomic load. This is the check/lock/check-again discipline; the
//     happens-before edge between initialization and publication comes from the
//     release-ordered atomic store paired with the acquire-ordered load.
//
//   - Once — sync.Once. The runtime primitive built for exactly-once execution;
//     callers that lose the race block until the winner's function returns, so a
//     partially-constructed value is never observable.
//
//   - Eager — construction happens inside the holder's constructor, before any
//     Instance call can exist. Declared as a package-level var this is load-time
//     construction: the runtime initializes package-level state before main and
//     before any other goroutine can observe it.
//
// # Quick guidance
//
// Use Once unless you have a reason not to: it is the idiomatic Go answer.
// Use Eager when construction is cheap and you want failures at startup.
// Use DoubleChecked when you also want Initialized() introspection without
// touching a lock, or want the publication mechanics spelled out.
// Use Locked when you want the simplest possible correct code and the access
// path is cold. Never ship Racy.
//
// All holders satisfy Holder[T]. Constructors take a Ctor[T] (func() *T) and
// fail fast on misuse: a nil ctor panics with ErrNilCtor, and a ctor returning
// nil panics with ErrNilInstance because the lazy strategies use the nil
// pointer as their "not yet constructed" sentinel.
//
// Import
//
//	"github.com/sghaida/uno/singleton"
package singleton
