package seqs

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Sentinel errors returned by Only and PeekFirst.
var (
	// ErrNoElements signals an empty input sequence.
	ErrNoElements = errors.New("seqs: no elements")
	// ErrManyElements signals a second element where one was required.
	ErrManyElements = errors.New("seqs: more than one element")
)

// RepeatEach yields every element of seq n times in a row. A count
// below one yields nothing.
func RepeatEach[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n < 1 {
			return
		}
		for v := range seq {
			for i := 0; i < n; i++ {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Only returns the single element of seq. It fails with ErrNoElements
// on an empty sequence and ErrManyElements as soon as a second element
// appears; the rest of the sequence is not consumed.
func Only[T any](seq iter.Seq[T]) (T, error) {
	var first T
	seen := false
	for v := range seq {
		if seen {
			var zero T

			return zero, fmt.Errorf("%w: [%v, %v, ...]", ErrManyElements, first, v)
		}
		first, seen = v, true
	}
	if !seen {
		return first, ErrNoElements
	}

	return first, nil
}

// Grouped yields the elements of seq in groups of exactly n, padding
// the final group with fill when the input runs out mid-group. It
// panics when n < 1.
func Grouped[T any](seq iter.Seq[T], n int, fill T) iter.Seq[[]T] {
	if n < 1 {
		panic("seqs: group size must be at least 1")
	}

	return func(yield func([]T) bool) {
		group := make([]T, 0, n)
		for v := range seq {
			group = append(group, v)
			if len(group) == n {
				if !yield(group) {
					return
				}
				group = make([]T, 0, n)
			}
		}
		if len(group) > 0 {
			for len(group) < n {
				group = append(group, fill)
			}
			yield(group)
		}
	}
}

// Chunked yields the elements of seq in groups of at most n; only the
// final group may be short. It panics when n < 1.
func Chunked[T any](seq iter.Seq[T], n int) iter.Seq[[]T] {
	if n < 1 {
		panic("seqs: chunk size must be at least 1")
	}

	return func(yield func([]T) bool) {
		chunk := make([]T, 0, n)
		for v := range seq {
			chunk = append(chunk, v)
			if len(chunk) == n {
				if !yield(chunk) {
					return
				}
				chunk = make([]T, 0, n)
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}

// SlidingWindow yields every contiguous run of n elements from seq, one
// step apart. Inputs shorter than n yield nothing. It panics when
// n < 1.
func SlidingWindow[T any](seq iter.Seq[T], n int) iter.Seq[[]T] {
	if n < 1 {
		panic("seqs: window size must be at least 1")
	}

	return func(yield func([]T) bool) {
		window := make([]T, 0, n)
		for v := range seq {
			if len(window) == n {
				copy(window, window[1:])
				window[n-1] = v
			} else {
				window = append(window, v)
			}
			if len(window) == n && !yield(slices.Clone(window)) {
				return
			}
		}
	}
}

// Powerset yields every subset of seq: the empty set first, then all
// singletons, then pairs, and so on up to the full set. Subsets of one
// size appear in input index order. The input is materialized up
// front, so it must be finite.
func Powerset[T any](seq iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		elems := slices.Collect(seq)
		for r := 0; r <= len(elems); r++ {
			if !combinations(elems, r, yield) {
				return
			}
		}
	}
}

// combinations yields every r-subset of elems in index order; false
// means the consumer stopped early.
func combinations[T any](elems []T, r int, yield func([]T) bool) bool {
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		subset := make([]T, r)
		for i, j := range idx {
			subset[i] = elems[j]
		}
		if !yield(subset) {
			return false
		}
		// Advance the rightmost index that still has headroom, then
		// restack everything to its right.
		i := r - 1
		for i >= 0 && idx[i] == i+len(elems)-r {
			i--
		}
		if i < 0 {
			return true
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// PeekFirst reads the first element of seq and returns it together
// with a replacement sequence that replays that element before the
// remainder. The replacement is single-use: it can be ranged over once.
func PeekFirst[T any](seq iter.Seq[T]) (T, iter.Seq[T], error) {
	next, stop := iter.Pull(seq)
	first, ok := next()
	if !ok {
		stop()
		var zero T

		return zero, nil, ErrNoElements
	}
	rest := func(yield func(T) bool) {
		defer stop()
		if !yield(first) {
			return
		}
		for {
			v, more := next()
			if !more || !yield(v) {
				return
			}
		}
	}

	return first, rest, nil
}
