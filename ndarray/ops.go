package ndarray

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvlkit/stats"
)

// Range is a half-open interval [Lo, Hi) along one axis.
type Range struct {
	Lo, Hi int
}

// Len returns the interval width.
func (r Range) Len() int {
	return r.Hi - r.Lo
}

// Equal reports whether two arrays share shape and elements. Two nil
// arrays are equal; nil never equals non-nil.
func Equal[T comparable](a, b *Array[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return slices.Equal(a.shape, b.shape) && slices.Equal(a.data, b.data)
}

// Sum returns the total of all elements; an empty array sums to zero.
func Sum[T stats.Number](a *Array[T]) T {
	var total T
	for _, v := range a.data {
		total += v
	}
	return total
}

// Min returns the smallest element, or ErrEmptyReduce when the array has
// no elements.
func Min[T stats.Number](a *Array[T]) (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, opErrorf("Min", ErrEmptyReduce, "shape %v", a.shape)
	}
	lowest := a.data[0]
	for _, v := range a.data[1:] {
		lowest = min(lowest, v)
	}
	return lowest, nil
}

// Max returns the largest element, or ErrEmptyReduce when the array has
// no elements.
func Max[T stats.Number](a *Array[T]) (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, opErrorf("Max", ErrEmptyReduce, "shape %v", a.shape)
	}
	highest := a.data[0]
	for _, v := range a.data[1:] {
		highest = max(highest, v)
	}
	return highest, nil
}

// StatsOf summarizes every element of a numeric array as running
// statistics: count, extrema, mean, and spread in one pass.
func StatsOf[T stats.Number](a *Array[T]) stats.Stats {
	return stats.Of(a.data)
}

// Diagnostic renders a one-line health summary of a numeric array:
// shape, element type, size, counts of non-finite values, and the
// statistics of the finite elements (zeros are finite and counted
// separately). Meant for logging intermediate arrays in a pipeline.
func Diagnostic[T stats.Number](a *Array[T]) string {
	// 1. Partition elements into NaN, +Inf, -Inf, and finite buckets.
	var nan, posInf, negInf, zeros int
	var finite stats.Stats
	for _, v := range a.data {
		x := float64(v)
		switch {
		case math.IsNaN(x):
			nan++
		case math.IsInf(x, +1):
			posInf++
		case math.IsInf(x, -1):
			negInf++
		default:
			finite = finite.Add(stats.New(x))
			if x == 0 {
				zeros++
			}
		}
	}
	// 2. One line, fixed field order, %.6g for the float fields.
	var zero T
	return fmt.Sprintf(
		"shape=%v dtype=%T size=%d nan=%d posinf=%d neginf=%d finite=%d min=%.6g max=%.6g avg=%.6g sdv=%.6g zero=%d",
		a.shape, zero, len(a.data), nan, posInf, negInf,
		finite.Count(), finite.Min(), finite.Max(), finite.Mean(), finite.StdDev(), zeros)
}

// CopyInto copies src into dst so that src's origin lands at offset.
// The destination region must lie fully inside dst.
func CopyInto[T any](dst, src *Array[T], offset []int) error {
	// 1. Ranks of destination, source, and offset must agree.
	if dst.Rank() != src.Rank() || len(offset) != src.Rank() {
		return opErrorf("CopyInto", ErrRankMismatch,
			"dst rank %d, src rank %d, offset length %d", dst.Rank(), src.Rank(), len(offset))
	}
	// 2. The shifted source box must fit inside dst on every axis.
	for k := range offset {
		if offset[k] < 0 || offset[k]+src.shape[k] > dst.shape[k] {
			return opErrorf("CopyInto", ErrIndexOutOfBounds,
				"axis %d: offset %d + extent %d exceeds size %d", k, offset[k], src.shape[k], dst.shape[k])
		}
	}
	// 3. Copy innermost rows as contiguous runs.
	copyRegion(dst, offset, src, make([]int, src.Rank()), src.shape)
	return nil
}

// Slice returns a copy of the rectangular region [lo, hi) of a.
func Slice[T any](a *Array[T], lo, hi []int) (*Array[T], error) {
	// 1. Bounds must cover every axis.
	if len(lo) != a.Rank() || len(hi) != a.Rank() {
		return nil, opErrorf("Slice", ErrRankMismatch,
			"lo length %d, hi length %d for rank %d", len(lo), len(hi), a.Rank())
	}
	// 2. Each interval must be ordered and inside the array.
	ext := make([]int, a.Rank())
	for k := range ext {
		if lo[k] < 0 || lo[k] > hi[k] || hi[k] > a.shape[k] {
			return nil, opErrorf("Slice", ErrIndexOutOfBounds,
				"axis %d: [%d, %d) outside size %d", k, lo[k], hi[k], a.shape[k])
		}
		ext[k] = hi[k] - lo[k]
	}
	// 3. Materialize the region.
	out, err := New[T](ext...)
	if err != nil {
		return nil, err
	}
	copyRegion(out, make([]int, a.Rank()), a, lo, ext)
	return out, nil
}

// Shift translates the contents of a by offset (positive moves toward
// higher indices), filling vacated cells with fill. The result has the
// same shape as a.
func Shift[T any](a *Array[T], offset []int, fill T) (*Array[T], error) {
	// 1. One offset per axis.
	if len(offset) != a.Rank() {
		return nil, opErrorf("Shift", ErrRankMismatch,
			"offset length %d for rank %d", len(offset), a.Rank())
	}
	// 2. Start from a fully filled canvas.
	out, err := Full(fill, a.shape...)
	if err != nil {
		return nil, err
	}
	// 3. Compute the surviving overlap between source and destination.
	srcLo := make([]int, a.Rank())
	dstLo := make([]int, a.Rank())
	ext := make([]int, a.Rank())
	for k := range offset {
		srcLo[k] = max(0, -offset[k])
		dstLo[k] = max(0, offset[k])
		ext[k] = a.shape[k] - max(offset[k], -offset[k])
		if ext[k] <= 0 {
			return out, nil // shifted entirely out of frame
		}
	}
	copyRegion(out, dstLo, a, srcLo, ext)
	return out, nil
}

// BoundingRanges returns, per axis, the tight half-open interval
// containing every element that differs from background. When no such
// element exists all ranges are [0, 0).
func BoundingRanges[T comparable](a *Array[T], background T) []Range {
	rank := a.Rank()
	lo := make([]int, rank)
	hi := make([]int, rank)
	for k := range lo {
		lo[k] = a.shape[k] // sentinel: nothing seen yet
	}
	// Walk the flat data with a coordinate odometer.
	coord := make([]int, rank)
	found := false
	for _, v := range a.data {
		if v != background {
			found = true
			for k := 0; k < rank; k++ {
				lo[k] = min(lo[k], coord[k])
				hi[k] = max(hi[k], coord[k]+1)
			}
		}
		for k := rank - 1; k >= 0; k-- {
			coord[k]++
			if coord[k] < a.shape[k] {
				break
			}
			coord[k] = 0
		}
	}
	if !found {
		for k := range lo {
			lo[k] = 0
		}
	}
	ranges := make([]Range, rank)
	for k := range ranges {
		ranges[k] = Range{Lo: lo[k], Hi: hi[k]}
	}
	return ranges
}

// BroadcastBlock repeats every element of a as a constant block: axis k
// of the result is block[k] times longer than in a, and each source
// element fills a block-shaped region of copies. A single block extent
// replicates across all axes.
// Complexity: O(len(result)).
func BroadcastBlock[T any](a *Array[T], block ...int) (*Array[T], error) {
	// 1. One extent per axis, or a single extent for all of them.
	if len(block) == 0 {
		return nil, opErrorf("BroadcastBlock", ErrRankMismatch,
			"block has 0 values for rank %d", a.Rank())
	}
	bl, err := replicate("BroadcastBlock", "block", block, a.Rank())
	if err != nil {
		return nil, err
	}
	// 2. The result grows every axis by its block factor.
	shape := make([]int, a.Rank())
	for k := range shape {
		if bl[k] < 0 {
			return nil, opErrorf("BroadcastBlock", ErrInvalidShape,
				"axis %d: block extent %d", k, bl[k])
		}
		shape[k] = a.shape[k] * bl[k]
	}
	out, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	// 3. Walk the result with a coordinate odometer; the source cell is
	//    the per-axis quotient by the block extent.
	coord := make([]int, a.Rank())
	for i := range out.data {
		flat := 0
		for k, c := range coord {
			flat += (c / bl[k]) * a.strides[k]
		}
		out.data[i] = a.data[flat]
		for k := len(coord) - 1; k >= 0; k-- {
			coord[k]++
			if coord[k] < shape[k] {
				break
			}
			coord[k] = 0
		}
	}
	return out, nil
}

// copyRegion copies an ext-shaped block from src at srcOff to dst at
// dstOff. Callers guarantee matching ranks and in-bounds regions; any
// zero extent copies nothing.
func copyRegion[T any](dst *Array[T], dstOff []int, src *Array[T], srcOff []int, ext []int) {
	rank := len(ext)
	if rank == 0 {
		dst.data[0] = src.data[0]
		return
	}
	for _, e := range ext {
		if e == 0 {
			return
		}
	}
	run := ext[rank-1]
	coord := make([]int, rank) // innermost axis stays 0; runs cover it
	for {
		srcBase, dstBase := 0, 0
		for k := 0; k < rank; k++ {
			srcBase += (srcOff[k] + coord[k]) * src.strides[k]
			dstBase += (dstOff[k] + coord[k]) * dst.strides[k]
		}
		copy(dst.data[dstBase:dstBase+run], src.data[srcBase:srcBase+run])
		k := rank - 2
		for ; k >= 0; k-- {
			coord[k]++
			if coord[k] < ext[k] {
				break
			}
			coord[k] = 0
		}
		if k < 0 {
			break
		}
	}
}
