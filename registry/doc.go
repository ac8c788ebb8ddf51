// Package registry provides process-wide named singletons.
//
// Where package singleton guards one instance per holder, registry guards one
// instance per name: the first caller of Shared for a given name constructs,
// every later caller (and every concurrent racer) gets that same instance.
// Retrieval is typed via generics and returns structured errors you can
// assert in tests (wrong type under a name, nil constructor, nil result).
//
// Expected usage:
//
//	store, err := registry.Shared(registry.Default(), "config-store", NewStore)
//
// The registry never forgets: there is no delete and no reset, matching the
// construct-once-never-tear-down lifecycle of the instances it holds.
package registry
