package registry_test

import (
	"testing"

	"github.com/sghaida/uno/registry"
)

/*
   Benchmarks cover the steady-state retrieval path: the name is already
   constructed and Shared is a map load, a spent Once and a type assertion.
*/

func BenchmarkShared_SteadyState(b *testing.B) {
	r := registry.New()
	_ = registry.MustShared(r, "db", newStore)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = registry.Shared(r, "db", newStore)
	}
}

func BenchmarkShared_SteadyStateParallel(b *testing.B) {
	r := registry.New()
	_ = registry.MustShared(r, "db", newStore)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = registry.Shared(r, "db", newStore)
		}
	})
}

func BenchmarkMustShared_DistinctNames(b *testing.B) {
	r := registry.New()
	names := []string{"a", "b", "c", "d"}
	for _, name := range names {
		_ = registry.MustShared(r, name, newStore)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = registry.MustShared(r, names[i%len(names)], newStore)
	}
}
