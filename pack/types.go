package pack

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by FitShape and Assemble. Wrap sites add the
// offending index or value; match with errors.Is.
var (
	// ErrNoArrays signals an empty input list.
	ErrNoArrays = errors.New("pack: at least one input array required")
	// ErrNilArray signals a nil entry in the input list.
	ErrNilArray = errors.New("pack: nil input array")
	// ErrBadCount signals a negative element count.
	ErrBadCount = errors.New("pack: negative element count")
	// ErrBadGridShape signals a grid extent that is zero or below -1,
	// or a grid with no axes at all.
	ErrBadGridShape = errors.New("pack: invalid grid shape")
	// ErrShapeInference signals more than one -1 extent in a grid shape.
	ErrShapeInference = errors.New("pack: ambiguous shape inference")
	// ErrShapeTooSmall signals a fully specified grid with fewer cells
	// than inputs.
	ErrShapeTooSmall = errors.New("pack: grid insufficiently large")
	// ErrRankMismatch signals inputs of differing rank, or a grid with
	// more axes than the inputs have.
	ErrRankMismatch = errors.New("pack: rank mismatch")
	// ErrTailMismatch signals inputs whose trailing dimensions differ.
	ErrTailMismatch = errors.New("pack: trailing dimensions differ")
	// ErrBadAlign signals an Alignment value outside Start/Center/Stop.
	ErrBadAlign = errors.New("pack: unrecognized alignment")
	// ErrBadSpacing signals a negative inter-cell spacing.
	ErrBadSpacing = errors.New("pack: negative spacing")
	// ErrOptionShape signals a per-axis or per-array option whose length
	// does not match the grid rank or the input count.
	ErrOptionShape = errors.New("pack: option length mismatch")
)

// Alignment selects where an array sits inside a grid cell that is
// larger than the array itself.
type Alignment int

const (
	// Start pins the array to the low edge of the cell.
	Start Alignment = iota
	// Center splits the slack evenly, rounding the lead gap down.
	Center
	// Stop pins the array to the high edge of the cell.
	Stop
)

// String provides a readable identifier for logs/errors (deterministic).
func (a Alignment) String() string {
	switch a {
	case Start:
		return "start"
	case Center:
		return "center"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// ParseAlignment maps the textual names used in fixtures and
// configuration onto Alignment values.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "start":
		return Start, nil
	case "center":
		return Center, nil
	case "stop":
		return Stop, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadAlign, s)
	}
}

// Option adjusts layout behavior for Assemble.
type Option func(*options)

// options carries the raw layout configuration before resolution.
type options struct {
	align         Alignment
	axisAlign     []Alignment
	arrayAlign    [][]Alignment
	spacing       int
	axisSpacing   []int
	roundEven     bool
	axisRoundEven []bool
}

// defaultOptions returns the baseline layout: centered cells, no
// spacing, no parity rounding.
func defaultOptions() options {
	return options{align: Center}
}

// WithAlign sets one alignment for every array on every grid axis.
func WithAlign(a Alignment) Option {
	return func(o *options) { o.align = a }
}

// WithAxisAlign sets one alignment per grid axis, overriding WithAlign.
// The number of values must match the grid rank.
func WithAxisAlign(aligns ...Alignment) Option {
	return func(o *options) { o.axisAlign = aligns }
}

// WithArrayAlign sets the alignment of each array on each grid axis,
// overriding WithAxisAlign and WithAlign. aligns[i][k] applies to input
// i on grid axis k.
func WithArrayAlign(aligns [][]Alignment) Option {
	return func(o *options) { o.arrayAlign = aligns }
}

// WithSpacing inserts the same background gap between adjacent cells on
// every grid axis.
func WithSpacing(cells int) Option {
	return func(o *options) { o.spacing = cells }
}

// WithAxisSpacing sets the inter-cell gap per grid axis. The number of
// values must match the grid rank.
func WithAxisSpacing(cells ...int) Option {
	return func(o *options) { o.axisSpacing = cells }
}

// WithRoundToEven grows the last cell of every axis whose total extent
// would come out odd, keeping the output even-sized.
func WithRoundToEven() Option {
	return func(o *options) { o.roundEven = true }
}

// WithAxisRoundToEven selects parity rounding per grid axis. The number
// of values must match the grid rank.
func WithAxisRoundToEven(round ...bool) Option {
	return func(o *options) { o.axisRoundEven = round }
}
