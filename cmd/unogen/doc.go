// Command unogen — code-generated accessors for exactly-once instances
//
// unogen keeps the holder wiring explicit while removing the boilerplate of
// declaring a package-level holder plus an accessor by hand:
//
//   - You write a tiny *.uno.json spec next to your type.
//   - You add a //go:generate ... directive in the owner Go file.
//   - unogen generates the holder var and a typed accessor:
//   - <Accessor>() *<Type>
//   - <Accessor>Initialized() bool
//
// There is no container, no reflection, no registration step.
//
// Spec format (*.uno.json)
//
// Minimal example:
//
//	{
//	  "type": "Store",
//	  "constructor": "NewStore"
//	}
//
// Full example:
//
//	{
//	  "package": "cfg",
//	  "type": "Store",
//	  "constructor": "NewStore",
//	  "accessor": "SharedStore",
//	  "strategy": "doublechecked"
//	}
//
// Fields left empty are defaulted: package from sibling Go files in the
// output directory, accessor to Shared<Type>, strategy to "once".
//
// Strategies
//
//   - once (default): sync.Once-backed lazy construction
//   - eager: constructed during package initialization, before main
//   - doublechecked: atomic fast path, mutex slow path
//   - locked: mutex on every access
//
// Racy is deliberately not offered: generated code is meant to ship.
//
// Typical go:generate usage
//
// Put this in the owner Go file (same package directory as the spec):
//
//	//go:generate go run github.com/sghaida/uno/cmd/unogen -spec ./store.uno.json -out ./store_uno.gen.go
//
// Then:
//
//	go generate ./...
package main
