package ndarray_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlkit/ndarray"
)

// BenchmarkCopyInto_256 places a 256×256 block into a 1024×1024 canvas.
func BenchmarkCopyInto_256(b *testing.B) {
	dst, err := ndarray.New[float64](1024, 1024)
	if err != nil {
		b.Fatal(err)
	}
	src, err := ndarray.Full(1.0, 256, 256)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ndarray.CopyInto(dst, src, []int{128, 128}); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFromIndices_10k rasterizes 10_000 random points.
func BenchmarkFromIndices_10k(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	coords := make([][]int, 10_000)
	for i := range coords {
		coords[i] = []int{rng.Intn(512), rng.Intn(512)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ndarray.FromIndices(coords, 1, 0); err != nil {
			b.Fatal(err)
		}
	}
}
