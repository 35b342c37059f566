package mathx_test

import (
	"testing"

	"github.com/katalvlaran/lvlkit/mathx"
)

// BenchmarkPrimeFactors_LargePrime walks the full trial-division range.
func BenchmarkPrimeFactors_LargePrime(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := mathx.PrimeFactors(1_000_000_007); len(got) != 1 {
			b.Fatalf("unexpected factors %v", got)
		}
	}
}

// BenchmarkModularInverse inverts against a large prime modulus.
func BenchmarkModularInverse(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mathx.ModularInverse(123_456_789, 1_000_000_007); err != nil {
			b.Fatal(err)
		}
	}
}
