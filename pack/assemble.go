package pack

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlkit/ndarray"
)

// Assemble places arrays row-major onto a grid of the given shape and
// renders the packed layout into one array filled with background.
//
// The grid consumes the leading len(gridShape) axes of every input; the
// trailing axes must match exactly across inputs and are carried into
// the output unchanged. gridShape may contain a single -1 extent, which
// is resolved with FitShape. Alignment, spacing, and parity rounding
// come from options; the defaults center each array in its cell with no
// gaps.
func Assemble[T any](arrays []*ndarray.Array[T], gridShape []int, background T, options ...Option) (*ndarray.Array[T], error) {
	// 1. Validate the input list.
	if len(arrays) == 0 {
		return nil, ErrNoArrays
	}
	for i, a := range arrays {
		if a == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilArray, i)
		}
	}
	// 2. Resolve the grid shape against the input count.
	shape, err := FitShape(gridShape, len(arrays))
	if err != nil {
		return nil, err
	}
	gridRank := len(shape)
	if gridRank == 0 {
		return nil, fmt.Errorf("%w: no grid axes", ErrBadGridShape)
	}
	// 3. Every input shares one rank and one tail beyond the grid axes.
	rank := arrays[0].Rank()
	if gridRank > rank {
		return nil, fmt.Errorf("%w: grid rank %d exceeds array rank %d", ErrRankMismatch, gridRank, rank)
	}
	shapes := make([][]int, len(arrays))
	tail := arrays[0].Shape()[gridRank:]
	for i, a := range arrays {
		shapes[i] = a.Shape()
		if len(shapes[i]) != rank {
			return nil, fmt.Errorf("%w: array %d has rank %d, want %d", ErrRankMismatch, i, len(shapes[i]), rank)
		}
		if !slices.Equal(shapes[i][gridRank:], tail) {
			return nil, fmt.Errorf("%w: array %d has tail %v, want %v", ErrTailMismatch, i, shapes[i][gridRank:], tail)
		}
	}
	// 4. Resolve the layout options.
	o := defaultOptions()
	for _, apply := range options {
		if apply != nil {
			apply(&o)
		}
	}
	aligns, err := resolveAligns(o, len(arrays), gridRank)
	if err != nil {
		return nil, err
	}
	spacing, err := resolveSpacing(o, gridRank)
	if err != nil {
		return nil, err
	}
	roundEven, err := resolveRoundEven(o, gridRank)
	if err != nil {
		return nil, err
	}
	// 5. Locate every array on the grid, row-major.
	coords := make([][]int, len(arrays))
	for i := range arrays {
		if coords[i], err = ndarray.UnravelIndex(shape, i); err != nil {
			return nil, err
		}
	}
	// 6. Size the grid slices: the largest member of each slice sets its
	//    extent; slices holding no array stay zero.
	sliceLen := make([][]int, gridRank)
	for k := range sliceLen {
		sliceLen[k] = make([]int, shape[k])
	}
	for i, c := range coords {
		for k := 0; k < gridRank; k++ {
			sliceLen[k][c[k]] = max(sliceLen[k][c[k]], shapes[i][k])
		}
	}
	// 7. Stack the slices into per-axis totals and origins. Parity
	//    rounding widens the last slice after the raw total is known.
	totals := make([]int, gridRank)
	origins := make([][]int, gridRank)
	for k := 0; k < gridRank; k++ {
		total := spacing[k] * (shape[k] - 1)
		for _, extent := range sliceLen[k] {
			total += extent
		}
		if roundEven[k] && total%2 != 0 {
			sliceLen[k][shape[k]-1]++
			total++
		}
		totals[k] = total
		origins[k] = make([]int, shape[k])
		at := 0
		for j, extent := range sliceLen[k] {
			origins[k][j] = at
			at += extent + spacing[k]
		}
	}
	// 8. Fill the output canvas with background.
	out, err := ndarray.Full(background, slices.Concat(totals, tail)...)
	if err != nil {
		return nil, err
	}
	// 9. Place every array at its aligned offset inside its cell.
	offset := make([]int, rank)
	for i, a := range arrays {
		for k := 0; k < gridRank; k++ {
			slack := sliceLen[k][coords[i][k]] - shapes[i][k]
			shim := 0
			switch aligns[i][k] {
			case Center:
				shim = slack / 2
			case Stop:
				shim = slack
			}
			offset[k] = origins[k][coords[i][k]] + shim
		}
		for k := gridRank; k < rank; k++ {
			offset[k] = 0
		}
		if err = ndarray.CopyInto(out, a, offset); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// resolveAligns expands the alignment configuration into one value per
// array per grid axis. Precedence: per-array, then per-axis, then the
// scalar default.
func resolveAligns(o options, num, gridRank int) ([][]Alignment, error) {
	// 1. A per-array table wins outright.
	if o.arrayAlign != nil {
		if len(o.arrayAlign) != num {
			return nil, fmt.Errorf("%w: %d alignment rows for %d arrays", ErrOptionShape, len(o.arrayAlign), num)
		}
		out := make([][]Alignment, num)
		for i, row := range o.arrayAlign {
			if len(row) != gridRank {
				return nil, fmt.Errorf("%w: alignment row %d has %d entries, want %d", ErrOptionShape, i, len(row), gridRank)
			}
			if err := checkAligns(row); err != nil {
				return nil, err
			}
			out[i] = slices.Clone(row)
		}

		return out, nil
	}
	// 2. A per-axis row, or the scalar default replicated across axes.
	row := o.axisAlign
	if row == nil {
		row = make([]Alignment, gridRank)
		for k := range row {
			row[k] = o.align
		}
	} else if len(row) != gridRank {
		return nil, fmt.Errorf("%w: %d alignments for grid rank %d", ErrOptionShape, len(row), gridRank)
	}
	if err := checkAligns(row); err != nil {
		return nil, err
	}
	// 3. Every array shares the same row; rows are read-only downstream.
	out := make([][]Alignment, num)
	for i := range out {
		out[i] = row
	}

	return out, nil
}

// checkAligns rejects values outside the Alignment enum.
func checkAligns(row []Alignment) error {
	for _, a := range row {
		switch a {
		case Start, Center, Stop:
		default:
			return fmt.Errorf("%w: %d", ErrBadAlign, int(a))
		}
	}

	return nil
}

// resolveSpacing expands the spacing configuration into one gap per
// grid axis and rejects negative gaps.
func resolveSpacing(o options, gridRank int) ([]int, error) {
	row := o.axisSpacing
	if row == nil {
		row = make([]int, gridRank)
		for k := range row {
			row[k] = o.spacing
		}
	} else if len(row) != gridRank {
		return nil, fmt.Errorf("%w: %d spacing entries for grid rank %d", ErrOptionShape, len(row), gridRank)
	}
	for k, gap := range row {
		if gap < 0 {
			return nil, fmt.Errorf("%w: %d on axis %d", ErrBadSpacing, gap, k)
		}
	}

	return row, nil
}

// resolveRoundEven expands the parity-rounding configuration into one
// flag per grid axis.
func resolveRoundEven(o options, gridRank int) ([]bool, error) {
	row := o.axisRoundEven
	if row == nil {
		row = make([]bool, gridRank)
		for k := range row {
			row[k] = o.roundEven
		}
	} else if len(row) != gridRank {
		return nil, fmt.Errorf("%w: %d round-to-even entries for grid rank %d", ErrOptionShape, len(row), gridRank)
	}

	return row, nil
}
