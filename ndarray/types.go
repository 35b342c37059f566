package ndarray

import (
	"errors"
	"fmt"
)

// ErrInvalidShape indicates a negative dimension or a shape that
// conflicts with the supplied data length.
var ErrInvalidShape = errors.New("ndarray: invalid shape")

// ErrRankMismatch indicates a coordinate, offset, or bound whose length
// differs from the array rank.
var ErrRankMismatch = errors.New("ndarray: rank mismatch")

// ErrIndexOutOfBounds indicates a coordinate or region outside the array.
var ErrIndexOutOfBounds = errors.New("ndarray: index out of bounds")

// ErrEmptyReduce indicates Min or Max over an array with no elements.
var ErrEmptyReduce = errors.New("ndarray: reduce over empty array")

// ErrRaggedGrid indicates grid rows of unequal length.
var ErrRaggedGrid = errors.New("ndarray: ragged grid rows")

// ErrUnmappedCell indicates a grid symbol or value absent from the
// supplied mapping.
var ErrUnmappedCell = errors.New("ndarray: unmapped grid cell")

// opErrorf wraps a sentinel with the operation name and offending
// coordinate context, keeping errors.Is chains intact.
func opErrorf(op string, err error, format string, args ...any) error {
	return fmt.Errorf("ndarray.%s: %w: %s", op, err, fmt.Sprintf(format, args...))
}
