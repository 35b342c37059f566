package seqs_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/lvlkit/seqs"
)

// BenchmarkSlidingWindow_10k slides a width-16 window over 10k samples.
func BenchmarkSlidingWindow_10k(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	data := make([]float64, 10_000)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range seqs.SlidingWindow(slices.Values(data), 16) {
			n++
		}
		if n != len(data)-15 {
			b.Fatalf("unexpected window count %d", n)
		}
	}
}

// BenchmarkPowerset_12 enumerates all 4096 subsets of a 12-element set.
func BenchmarkPowerset_12(b *testing.B) {
	data := make([]int, 12)
	for i := range data {
		data[i] = i
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range seqs.Powerset(slices.Values(data)) {
			n++
		}
		if n != 1<<len(data) {
			b.Fatalf("unexpected subset count %d", n)
		}
	}
}
