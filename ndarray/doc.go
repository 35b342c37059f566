// Package ndarray implements a dense, row-major, N-dimensional array
// generic over its element type.
//
// What:
//   - Array[T] stores elements in one flat slice with precomputed
//     strides; At/Set perform bounds-checked element access.
//   - Constructors: New (zero-valued), Full (fill value), FromFlat
//     (adopt a flat slice), From2D (nested rows).
//   - Shape arithmetic: RavelIndex and UnravelIndex convert between
//     coordinates and flat offsets.
//   - Block operations: CopyInto places one array inside another at an
//     offset, Slice extracts a rectangular region, Shift translates
//     contents with a fill value, BoundingRanges finds the tight box of
//     non-background elements, BroadcastBlock upsamples each element
//     into a constant block, and Reshape reinterprets the flat order
//     (one extent may be -1 and is inferred).
//   - Reductions: Sum, Min, Max over numeric elements, plus StatsOf for
//     a full statistical summary and Diagnostic for a loggable one-line
//     report that buckets NaN and infinities.
//   - Text grids: ParseGrid/FormatGrid and their mapped variants convert
//     between small 2D arrays and multiline string literals, handy in
//     tests and puzzle inputs; FromIndices rasterizes sparse points.
//
// Why:
//   - The packing and grid utilities in this repository all need one
//     shared notion of "rectangular block of T", with copy semantics
//     that are explicit rather than view-based.
//   - Keeping storage flat makes block copies run as contiguous copy()
//     calls over innermost rows.
//
// Errors:
//   - ErrInvalidShape      - negative dimension, or data/shape length conflict.
//   - ErrRankMismatch      - coordinate or offset count differs from rank.
//   - ErrIndexOutOfBounds  - coordinate or region outside the array.
//   - ErrEmptyReduce       - Min/Max over an array with no elements.
//   - ErrRaggedGrid        - rows of unequal length in grid input.
//   - ErrUnmappedCell      - grid symbol missing from the mapping.
//
// Concurrency:
//   - Reads may be shared; mutation needs external synchronization.
//
// See array.go for the core type and grid.go for the text helpers.
package ndarray
