package ndarray

import "strings"

// GridOption adjusts FromIndices and FromIndexValues.
type GridOption func(*gridOptions)

// gridOptions carries rasterization bounds. Unset bounds derive from the
// points themselves.
type gridOptions struct {
	lo  []int // inclusive coordinate mapped to array origin
	hi  []int // inclusive coordinate mapped to the last array cell
	pad []int // extra background border per axis, both sides
}

// WithMin pins the coordinate that maps to the array origin. One value
// replicates across all axes; otherwise give one value per axis.
func WithMin(lo ...int) GridOption {
	return func(o *gridOptions) {
		o.lo = lo
	}
}

// WithMax pins the coordinate that maps to the last array cell. One
// value replicates across all axes; otherwise give one value per axis.
func WithMax(hi ...int) GridOption {
	return func(o *gridOptions) {
		o.hi = hi
	}
}

// WithPad surrounds the bounded box with extra background cells on both
// sides of each axis. One value replicates across all axes.
func WithPad(pad ...int) GridOption {
	return func(o *gridOptions) {
		o.pad = pad
	}
}

// ParseGrid converts a multiline string literal into a rows×cols array
// of runes. A single leading and trailing newline frame is ignored, so
// raw-string literals read naturally. All rows must share one width.
func ParseGrid(s string) (*Array[rune], error) {
	s = strings.Trim(s, "\n")
	if s == "" {
		return New[rune](0, 0)
	}
	lines := strings.Split(s, "\n")
	rows := make([][]rune, len(lines))
	for r, line := range lines {
		rows[r] = []rune(line)
	}
	return From2D(rows)
}

// ParseGridMap converts a multiline string literal into a rows×cols
// array by translating every symbol through mapping. Symbols absent from
// the mapping fail with ErrUnmappedCell.
func ParseGridMap[T any](s string, mapping map[rune]T) (*Array[T], error) {
	s = strings.Trim(s, "\n")
	if s == "" {
		return New[T](0, 0)
	}
	lines := strings.Split(s, "\n")
	rows := make([][]T, len(lines))
	for r, line := range lines {
		row := make([]T, 0, len(line))
		for _, ch := range line {
			v, ok := mapping[ch]
			if !ok {
				return nil, opErrorf("ParseGridMap", ErrUnmappedCell, "symbol %q at row %d", ch, r)
			}
			row = append(row, v)
		}
		rows[r] = row
	}
	return From2D(rows)
}

// FormatGrid renders a rank-2 rune array as newline-joined rows, the
// inverse of ParseGrid.
func FormatGrid(a *Array[rune]) (string, error) {
	if a.Rank() != 2 {
		return "", opErrorf("FormatGrid", ErrRankMismatch, "rank %d, want 2", a.Rank())
	}
	var b strings.Builder
	rows, cols := a.shape[0], a.shape[1]
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < cols; c++ {
			b.WriteRune(a.data[r*cols+c])
		}
	}
	return b.String(), nil
}

// FormatGridMap renders a rank-2 array as newline-joined rows by
// translating every value through mapping, the inverse of ParseGridMap.
// Values absent from the mapping fail with ErrUnmappedCell.
func FormatGridMap[T comparable](a *Array[T], mapping map[T]rune) (string, error) {
	if a.Rank() != 2 {
		return "", opErrorf("FormatGridMap", ErrRankMismatch, "rank %d, want 2", a.Rank())
	}
	var b strings.Builder
	rows, cols := a.shape[0], a.shape[1]
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < cols; c++ {
			ch, ok := mapping[a.data[r*cols+c]]
			if !ok {
				return "", opErrorf("FormatGridMap", ErrUnmappedCell, "value %v at (%d,%d)", a.data[r*cols+c], r, c)
			}
			b.WriteRune(ch)
		}
	}
	return b.String(), nil
}

// FromIndices rasterizes sparse points: cells listed in coords become
// foreground, all others background. The canvas spans the tight bounding
// box of the points unless WithMin/WithMax pin either side; WithPad adds
// a background border. Points falling outside pinned bounds are errors.
func FromIndices[T any](coords [][]int, foreground, background T, opts ...GridOption) (*Array[T], error) {
	values := make([]T, len(coords))
	for i := range values {
		values[i] = foreground
	}
	return FromIndexValues(coords, values, background, opts...)
}

// FromIndexValues rasterizes sparse point/value pairs over a background,
// with the same bounds rules as FromIndices. Later duplicates of a
// coordinate overwrite earlier ones.
func FromIndexValues[T any](coords [][]int, values []T, background T, opts ...GridOption) (*Array[T], error) {
	const op = "FromIndexValues"
	// 1. Apply options.
	var o gridOptions
	for _, opt := range opts {
		opt(&o)
	}
	// 2. Pair every coordinate with a value.
	if len(values) != len(coords) {
		return nil, opErrorf(op, ErrInvalidShape, "%d values for %d points", len(values), len(coords))
	}
	// 3. Establish the rank and check every point against it. Without
	//    points, the rank comes from whichever bound is pinned.
	var rank int
	switch {
	case len(coords) > 0:
		rank = len(coords[0])
	case o.lo != nil && o.hi != nil:
		rank = max(len(o.lo), len(o.hi))
	default:
		return nil, opErrorf(op, ErrInvalidShape, "no points and no pinned bounds")
	}
	for i, c := range coords {
		if len(c) != rank {
			return nil, opErrorf(op, ErrRankMismatch, "point %d has %d axes, want %d", i, len(c), rank)
		}
	}
	// 4. Resolve bounds: pinned sides replicate or match the rank,
	//    derived sides come from the points' extrema.
	lo, err := resolveBound(op, "min", o.lo, rank, coords, false)
	if err != nil {
		return nil, err
	}
	hi, err := resolveBound(op, "max", o.hi, rank, coords, true)
	if err != nil {
		return nil, err
	}
	pad, err := replicate(op, "pad", o.pad, rank)
	if err != nil {
		return nil, err
	}
	// 5. Derive extents and validate them.
	extent := make([]int, rank)
	for k := 0; k < rank; k++ {
		if pad != nil && pad[k] < 0 {
			return nil, opErrorf(op, ErrInvalidShape, "negative pad %d on axis %d", pad[k], k)
		}
		extent[k] = hi[k] - lo[k] + 1
		if pad != nil {
			extent[k] += 2 * pad[k]
		}
		if extent[k] < 0 {
			return nil, opErrorf(op, ErrInvalidShape, "max %d below min %d on axis %d", hi[k], lo[k], k)
		}
	}
	// 6. Fill the canvas and place every point.
	out, err := Full(background, extent...)
	if err != nil {
		return nil, err
	}
	shifted := make([]int, rank)
	for i, c := range coords {
		for k := 0; k < rank; k++ {
			shifted[k] = c[k] - lo[k]
			if pad != nil {
				shifted[k] += pad[k]
			}
			if shifted[k] < 0 || shifted[k] >= extent[k] {
				return nil, opErrorf(op, ErrIndexOutOfBounds, "point %v outside bounds", c)
			}
		}
		if err = out.Set(values[i], shifted...); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// resolveBound returns the pinned bound (replicated onto rank axes) or
// derives it from the points' per-axis extrema; wantMax selects which.
func resolveBound(op, name string, pinned []int, rank int, coords [][]int, wantMax bool) ([]int, error) {
	if pinned != nil {
		return replicate(op, name, pinned, rank)
	}
	if len(coords) == 0 {
		return nil, opErrorf(op, ErrInvalidShape, "cannot derive %s bound without points", name)
	}
	out := make([]int, rank)
	for k := 0; k < rank; k++ {
		v := coords[0][k]
		for _, c := range coords[1:] {
			if wantMax {
				v = max(v, c[k])
			} else {
				v = min(v, c[k])
			}
		}
		out[k] = v
	}
	return out, nil
}

// replicate expands a one-element option value onto every axis, passes a
// full-rank value through, and rejects anything else. nil stays nil.
func replicate(op, name string, vals []int, rank int) ([]int, error) {
	switch {
	case vals == nil:
		return nil, nil
	case len(vals) == rank:
		return vals, nil
	case len(vals) == 1:
		out := make([]int, rank)
		for k := range out {
			out[k] = vals[0]
		}
		return out, nil
	default:
		return nil, opErrorf(op, ErrRankMismatch, "%s has %d values for rank %d", name, len(vals), rank)
	}
}
