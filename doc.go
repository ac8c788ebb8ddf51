// Package uno provides a set of explicit exactly-once construction approaches for Go.
//
// This repository explores a progression of small, opinionated strategies for one
// contract: return the same fully-constructed instance to every caller, and
// construct it at most once even under concurrent first access.
//
//   - Racy: unsynchronized lazy check (the hazard the others fix; demo only)
//   - Locked: coarse mutex on every access (simple, pays for the lock forever)
//   - DoubleChecked: atomic fast path + mutex slow path (lock-free after init)
//   - Once: sync.Once (the runtime primitive built for exactly this)
//   - Eager: construct up front, before any accessor call exists
//
// The goal is to keep construction explicit, avoid hidden global state where a
// holder value will do, and keep the memory-model argument for each strategy
// visible in a few lines of code rather than buried in a framework.
//
// See subpackages:
//   - singleton: the five holder strategies
//   - registry: process-wide named singletons (one instance per name)
//   - cmd/unogen: code generator for package-level typed accessors
//   - examples/*: runnable demos racing goroutines against each strategy
package uno
