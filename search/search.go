package search

import (
	"cmp"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrBadBracket reports an empty search bracket (lo >= hi).
var ErrBadBracket = errors.New("search: empty bracket")

// Discrete returns the largest x in [lo, hi) with f(x) <= want,
// assuming f is non-decreasing and the bracket satisfies
// f(lo) <= want < f(hi).
func Discrete[X constraints.Integer, Y cmp.Ordered](lo, hi X, want Y, f func(X) Y) (X, error) {
	// 1. The bracket must hold at least one candidate.
	if lo >= hi {
		return lo, fmt.Errorf("%w: [%v, %v)", ErrBadBracket, lo, hi)
	}
	// 2. Halve the bracket, keeping f(lo) <= want < f(hi) invariant.
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if want >= f(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo, nil
}
