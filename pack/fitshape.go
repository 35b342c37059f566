package pack

import (
	"fmt"
	"slices"
)

// FitShape resolves a grid shape against the number of elements it must
// hold. Positive extents pass through unchanged; a single -1 extent is
// replaced by the smallest value whose grid fits num elements. A fully
// specified shape fails with ErrShapeTooSmall when its cell count is
// below num. The input slice is never mutated.
func FitShape(shape []int, num int) ([]int, error) {
	// 1. The element count must be non-negative.
	if num < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, num)
	}
	// 2. Scan the extents, remembering the single inferred axis.
	infer := -1
	rest := 1
	for i, extent := range shape {
		switch {
		case extent == -1:
			if infer >= 0 {
				return nil, fmt.Errorf("%w: -1 on axes %d and %d", ErrShapeInference, infer, i)
			}
			infer = i
		case extent <= 0:
			return nil, fmt.Errorf("%w: axis %d has extent %d", ErrBadGridShape, i, extent)
		default:
			rest *= extent
		}
	}
	// 3. Fill the hole with a ceiling division, or verify the capacity.
	out := slices.Clone(shape)
	if infer >= 0 {
		out[infer] = (num + rest - 1) / rest

		return out, nil
	}
	if rest < num {
		return nil, fmt.Errorf("%w: %v holds %d of %d", ErrShapeTooSmall, shape, rest, num)
	}

	return out, nil
}
