package singleton_test

import (
	"testing"

	"github.com/sghaida/uno/singleton"
)

/*
   Benchmarks compare the steady-state (already constructed) cost of each
   strategy, which is where they actually differ. Construction itself runs
   once and is noise.
*/

func benchWidget() *widget {
	return &widget{Name: "shared", Limit: 42, Tags: []string{"a", "b"}}
}

func BenchmarkLocked_Instance(b *testing.B) {
	h := singleton.NewLocked(benchWidget)
	_ = h.Instance()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Instance()
	}
}

func BenchmarkDoubleChecked_Instance(b *testing.B) {
	h := singleton.NewDoubleChecked(benchWidget)
	_ = h.Instance()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Instance()
	}
}

func BenchmarkOnce_Instance(b *testing.B) {
	h := singleton.NewOnce(benchWidget)
	_ = h.Instance()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Instance()
	}
}

func BenchmarkEager_Instance(b *testing.B) {
	h := singleton.NewEager(benchWidget)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Instance()
	}
}

/*
   Parallel variants: the contention story. Locked serializes every reader;
   DoubleChecked and Once scale with cores after first construction.
*/

func BenchmarkLocked_InstanceParallel(b *testing.B) {
	h := singleton.NewLocked(benchWidget)
	_ = h.Instance()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = h.Instance()
		}
	})
}

func BenchmarkDoubleChecked_InstanceParallel(b *testing.B) {
	h := singleton.NewDoubleChecked(benchWidget)
	_ = h.Instance()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = h.Instance()
		}
	})
}

func BenchmarkOnce_InstanceParallel(b *testing.B) {
	h := singleton.NewOnce(benchWidget)
	_ = h.Instance()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = h.Instance()
		}
	})
}
