package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlkit/unionfind"
)

// BenchmarkUnion_10k merges 10_000 random pairs per iteration.
func BenchmarkUnion_10k(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	pairs := make([][2]int, 10_000)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(5000), rng.Intn(5000)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		uf := unionfind.New[int]()
		for _, p := range pairs {
			uf.Union(p[0], p[1])
		}
	}
}

// BenchmarkFind measures representative lookup on a prebuilt structure
// with long initial chains, i.e. the path-compression steady state.
func BenchmarkFind(b *testing.B) {
	uf := unionfind.New[int]()
	for i := 1; i < 100_000; i++ {
		uf.Union(i-1, i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = uf.Find(i % 100_000)
	}
}
