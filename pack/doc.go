// Package pack lays out many small arrays on a regular grid and renders
// them into one large array.
//
// What:
//   - Assemble takes a list of arrays that all share the same rank and
//     the same trailing dimensions, spreads them row-major over a grid,
//     and returns a single array containing every input.
//   - The grid consumes the leading axes: with grid shape (2, 3) the
//     first two axes of each input are packed while any remaining axes
//     ride along unchanged. Grid cells stretch so that every row of the
//     grid is as tall as its tallest member and every column as wide as
//     its widest member.
//   - FitShape resolves a grid shape against an element count, inferring
//     a single -1 extent as the smallest value that fits.
//
// Why:
//   - Stitching tiles into a montage, stacking heterogeneous blocks into
//     one canvas, or batching variable-sized samples into a fixed frame
//     all reduce to the same slice-and-place computation.
//
// Layout:
//   - Cells smaller than their slice leave slack; Alignment picks where
//     the array sits inside it (Start, Center, Stop). The default is
//     Center with the lead gap rounded down.
//   - WithSpacing inserts background cells between adjacent grid cells;
//     spacing never pads the outer border.
//   - WithRoundToEven grows the last cell of an axis by one when the
//     total extent would come out odd, which keeps downstream 2x
//     downsampling exact.
//   - Grid cells beyond the number of inputs stay filled with the
//     background value.
//
// Errors:
//   - ErrNoArrays, ErrNilArray   - the input list is empty or has holes.
//   - ErrBadCount                - a negative element count.
//   - ErrBadGridShape            - a grid extent is zero, below -1, or
//     the grid has no axes.
//   - ErrShapeInference          - more than one -1 extent.
//   - ErrShapeTooSmall           - a fully specified grid cannot hold
//     every input.
//   - ErrRankMismatch            - input ranks differ, or the grid has
//     more axes than the inputs.
//   - ErrTailMismatch            - trailing dimensions differ between
//     inputs.
//   - ErrBadAlign, ErrBadSpacing - an alignment value or spacing is out
//     of range.
//   - ErrOptionShape             - a per-axis or per-array option has
//     the wrong length.
//
// Concurrency:
//   - Assemble and FitShape are pure functions; concurrent calls are
//     safe as long as the inputs are not mutated mid-call.
//
// See example_test.go for runnable scenarios.
package pack
