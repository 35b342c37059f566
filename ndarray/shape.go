package ndarray

// validateShape rejects negative dimensions. Zero-length dimensions are
// legal and yield empty arrays.
func validateShape(op string, shape []int) error {
	for k, dim := range shape {
		if dim < 0 {
			return opErrorf(op, ErrInvalidShape, "dimension %d is %d", k, dim)
		}
	}
	return nil
}

// prodOf returns the element count implied by shape; the empty shape is
// a scalar with one element.
func prodOf(shape []int) int {
	n := 1
	for _, dim := range shape {
		n *= dim
	}
	return n
}

// stridesFor returns row-major strides: the innermost axis moves by one
// element, each outer axis by the block size beneath it.
func stridesFor(shape []int) []int {
	strides := make([]int, len(shape))
	step := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = step
		step *= shape[k]
	}
	return strides
}

// RavelIndex converts coord to a flat row-major offset within shape.
func RavelIndex(shape, coord []int) (int, error) {
	// 1. Coordinate length must match the rank.
	if len(coord) != len(shape) {
		return 0, opErrorf("RavelIndex", ErrRankMismatch, "got %d indices for rank %d", len(coord), len(shape))
	}
	// 2. Fold axes outermost-first: flat = ((c0*d1 + c1)*d2 + c2)...
	flat := 0
	for k, c := range coord {
		if c < 0 || c >= shape[k] {
			return 0, opErrorf("RavelIndex", ErrIndexOutOfBounds, "index %d on axis %d (size %d)", c, k, shape[k])
		}
		flat = flat*shape[k] + c
	}
	return flat, nil
}

// UnravelIndex converts a flat row-major offset back to a coordinate
// within shape.
func UnravelIndex(shape []int, flat int) ([]int, error) {
	// 1. The offset must address an existing element.
	if n := prodOf(shape); flat < 0 || flat >= n {
		return nil, opErrorf("UnravelIndex", ErrIndexOutOfBounds, "offset %d for %d elements", flat, n)
	}
	// 2. Peel axes innermost-first by modular division.
	coord := make([]int, len(shape))
	for k := len(shape) - 1; k >= 0; k-- {
		coord[k] = flat % shape[k]
		flat /= shape[k]
	}
	return coord, nil
}
