package ndarray

import "slices"

// Array is a dense N-dimensional array of T in row-major layout.
// The zero value is an unusable empty array; construct with New, Full,
// FromFlat, or From2D.
type Array[T any] struct {
	shape   []int // extent per axis; empty shape is a scalar
	strides []int // row-major strides matching shape
	data    []T   // flat backing storage, length == prod(shape)
}

// New returns a zero-valued array of the given shape.
func New[T any](shape ...int) (*Array[T], error) {
	if err := validateShape("New", shape); err != nil {
		return nil, err
	}
	return &Array[T]{
		shape:   slices.Clone(shape),
		strides: stridesFor(shape),
		data:    make([]T, prodOf(shape)),
	}, nil
}

// Full returns an array of the given shape with every element set to fill.
func Full[T any](fill T, shape ...int) (*Array[T], error) {
	a, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = fill
	}
	return a, nil
}

// FromFlat adopts a copy of data as an array of the given shape.
// The data length must equal the shape's element count.
func FromFlat[T any](shape []int, data []T) (*Array[T], error) {
	if err := validateShape("FromFlat", shape); err != nil {
		return nil, err
	}
	if n := prodOf(shape); len(data) != n {
		return nil, opErrorf("FromFlat", ErrInvalidShape, "%d elements for shape of %d", len(data), n)
	}
	return &Array[T]{
		shape:   slices.Clone(shape),
		strides: stridesFor(shape),
		data:    slices.Clone(data),
	}, nil
}

// From2D builds a rows×cols array from nested row slices. All rows must
// share one length.
func From2D[T any](rows [][]T) (*Array[T], error) {
	// 1. Derive the shape, rejecting ragged input.
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, opErrorf("From2D", ErrRaggedGrid, "row %d has %d elements, want %d", r, len(row), cols)
		}
	}
	// 2. Flatten row by row.
	a, err := New[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		copy(a.data[r*cols:], row)
	}
	return a, nil
}

// Shape returns a copy of the per-axis extents.
func (a *Array[T]) Shape() []int {
	return slices.Clone(a.shape)
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// Len returns the total element count.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Data returns the live flat backing slice in row-major order. Mutating
// it mutates the array.
func (a *Array[T]) Data() []T {
	return a.data
}

// flatIndex validates coord against the shape and returns its flat
// offset; op names the calling method for error context.
func (a *Array[T]) flatIndex(op string, coord []int) (int, error) {
	if len(coord) != len(a.shape) {
		return 0, opErrorf(op, ErrRankMismatch, "got %d indices for rank %d", len(coord), len(a.shape))
	}
	flat := 0
	for k, c := range coord {
		if c < 0 || c >= a.shape[k] {
			return 0, opErrorf(op, ErrIndexOutOfBounds, "index %d on axis %d (size %d)", c, k, a.shape[k])
		}
		flat += c * a.strides[k]
	}
	return flat, nil
}

// At returns the element at the given coordinate.
func (a *Array[T]) At(coord ...int) (T, error) {
	idx, err := a.flatIndex("At", coord)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.data[idx], nil
}

// Set stores v at the given coordinate.
func (a *Array[T]) Set(v T, coord ...int) error {
	idx, err := a.flatIndex("Set", coord)
	if err != nil {
		return err
	}
	a.data[idx] = v
	return nil
}

// Clone returns a deep copy.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		shape:   slices.Clone(a.shape),
		strides: slices.Clone(a.strides),
		data:    slices.Clone(a.data),
	}
}

// Reshape returns a copy of the array reinterpreted under a new shape
// with the same element count, in flat order. At most one extent may be
// -1; it is inferred when the remaining extents divide the element
// count exactly.
func (a *Array[T]) Reshape(shape ...int) (*Array[T], error) {
	// 1. Scan for one inferable axis while validating the rest.
	out := slices.Clone(shape)
	infer, rest := -1, 1
	for k, dim := range out {
		switch {
		case dim == -1:
			if infer >= 0 {
				return nil, opErrorf("Reshape", ErrInvalidShape, "-1 on axes %d and %d", infer, k)
			}
			infer = k
		case dim < 0:
			return nil, opErrorf("Reshape", ErrInvalidShape, "dimension %d is %d", k, dim)
		default:
			rest *= dim
		}
	}
	// 2. Resolve or verify the element count.
	switch {
	case infer >= 0:
		if rest == 0 || len(a.data)%rest != 0 {
			return nil, opErrorf("Reshape", ErrInvalidShape,
				"cannot infer axis %d for %d elements", infer, len(a.data))
		}
		out[infer] = len(a.data) / rest
	case rest != len(a.data):
		return nil, opErrorf("Reshape", ErrInvalidShape, "%d elements cannot fill shape of %d", len(a.data), rest)
	}
	return &Array[T]{
		shape:   out,
		strides: stridesFor(out),
		data:    slices.Clone(a.data),
	}, nil
}
