// Package stats implements the Stats accumulator: five moments of a sample
// sequence (count, sum, sum of squares, min, max) with associative merge.
//
// Merge laws:
//
//	Add(a, b) == Add(b, a)                  (commutative)
//	Add(Add(a, b), c) == Add(a, Add(b, c))  (associative)
//	Add(a, Stats{}) == a                    (identity)
//
// Complexity: construction is O(n); everything else is O(1).
package stats

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number constrains the element types accepted by Of: any integer or
// floating-point kind.
type Number interface {
	constraints.Integer | constraints.Float
}

// Stats is an immutable summary of a sample sequence.
// The zero value is the summary of zero samples: Count()==0, Min()==+Inf,
// Max()==-Inf, Sum()==SumSquares()==0. Stats values are comparable with ==
// (component-wise, like the underlying moments).
type Stats struct {
	count int64   // number of samples
	sum   float64 // Σ x
	sumSq float64 // Σ x²
	min   float64 // smallest sample; meaningful only when count > 0
	max   float64 // largest sample; meaningful only when count > 0
}

// New computes the summary of the given samples.
// No samples yields the empty summary (the zero value).
// Complexity: O(len(samples)).
func New(samples ...float64) Stats {
	// 1. Empty input degenerates to the zero value.
	if len(samples) == 0 {
		return Stats{}
	}
	// 2. Seed extrema from the first sample, then fold the rest.
	s := Stats{count: int64(len(samples)), min: samples[0], max: samples[0]}
	for _, x := range samples {
		s.sum += x
		s.sumSq += x * x
		if x < s.min {
			s.min = x
		}
		if x > s.max {
			s.max = x
		}
	}

	return s
}

// Of computes the summary of a slice of any integer or float type.
// It is the generic companion of New.
// Complexity: O(len(samples)).
func Of[T Number](samples []T) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	s := Stats{count: int64(len(samples))}
	s.min = float64(samples[0])
	s.max = s.min
	for _, v := range samples {
		x := float64(v)
		s.sum += x
		s.sumSq += x * x
		if x < s.min {
			s.min = x
		}
		if x > s.max {
			s.max = x
		}
	}

	return s
}

// FromMoments builds a Stats directly from its five moments, as produced by
// a previous merge or an external aggregator. A non-positive count yields
// the empty summary regardless of the remaining arguments, preserving the
// empty-state invariant.
func FromMoments(count int64, sum, sumSq, min, max float64) Stats {
	if count <= 0 {
		return Stats{}
	}

	return Stats{count: count, sum: sum, sumSq: sumSq, min: min, max: max}
}

// Count returns the number of accumulated samples.
func (s Stats) Count() int64 { return s.count }

// Len returns Count as an int, mirroring the container convention.
func (s Stats) Len() int { return int(s.count) }

// Sum returns Σ x over the samples.
func (s Stats) Sum() float64 { return s.sum }

// SumSquares returns Σ x² over the samples.
func (s Stats) SumSquares() float64 { return s.sumSq }

// Min returns the smallest sample, or +Inf when the summary is empty.
// +Inf is the identity of min, so Add treats empty as neutral.
func (s Stats) Min() float64 {
	if s.count == 0 {
		return math.Inf(1)
	}

	return s.min
}

// Max returns the largest sample, or -Inf when the summary is empty.
func (s Stats) Max() float64 {
	if s.count == 0 {
		return math.Inf(-1)
	}

	return s.max
}

// Add returns the summary of both sample sequences combined, exactly as if
// they had been concatenated and summarized once. Associative and
// commutative; the empty summary is the identity.
// Complexity: O(1).
func (s Stats) Add(other Stats) Stats {
	// 1. Empty operands are identities; returning the other side keeps the
	//    empty-state invariant without special min/max handling.
	if s.count == 0 {
		return other
	}
	if other.count == 0 {
		return s
	}
	// 2. Component-wise sums; extrema via min/max.
	return Stats{
		count: s.count + other.count,
		sum:   s.sum + other.sum,
		sumSq: s.sumSq + other.sumSq,
		min:   math.Min(s.min, other.min),
		max:   math.Max(s.max, other.max),
	}
}

// Scale returns the summary of each original sample repeated n times:
// count, sum and sum of squares are multiplied by n while min and max are
// unchanged. n <= 0 yields the empty summary so that Scale(0) equals the
// Add identity.
// Complexity: O(1).
func (s Stats) Scale(n int) Stats {
	if n <= 0 || s.count == 0 {
		return Stats{}
	}
	f := float64(n)

	return Stats{
		count: s.count * int64(n),
		sum:   s.sum * f,
		sumSq: s.sumSq * f,
		min:   s.min,
		max:   s.max,
	}
}

// Mean returns the sample average, or NaN when the summary is empty.
func (s Stats) Mean() float64 {
	if s.count == 0 {
		return math.NaN()
	}

	return s.sum / float64(s.count)
}

// SumSquaredDeviations returns Σ (x - mean)², computed from the stored
// moments and clamped at zero to absorb floating-point cancellation.
// Returns NaN when the summary is empty.
func (s Stats) SumSquaredDeviations() float64 {
	if s.count == 0 {
		return math.NaN()
	}

	return math.Max(s.sumSq-s.sum*s.sum/float64(s.count), 0)
}

// Variance returns the unbiased (Bessel-corrected) sample variance:
// NaN when empty, 0 for a single sample, otherwise SSD/(count-1).
func (s Stats) Variance() float64 {
	switch {
	case s.count == 0:
		return math.NaN()
	case s.count == 1:
		return 0
	default:
		return s.SumSquaredDeviations() / float64(s.count-1)
	}
}

// StdDev returns the unbiased sample standard deviation, the square root
// of Variance.
func (s Stats) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// RMS returns the root-mean-square sqrt(Σx²/count), or 0 when empty.
func (s Stats) RMS() float64 {
	if s.count == 0 {
		return 0
	}

	return math.Sqrt(s.sumSq / float64(s.count))
}

// String renders a fixed-width one-line summary:
//
//	(    count)          min : max          av=mean        sd=stddev
//
// Fields use %.6g; trailing padding is trimmed.
func (s Stats) String() string {
	out := fmt.Sprintf("(%9d) %12.6g : %-12.6g av=%-12.6g sd=%-12.6g",
		s.count, s.Min(), s.Max(), s.Mean(), s.StdDev())

	return strings.TrimRight(out, " ")
}
