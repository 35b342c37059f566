// Package seqs provides small combinators over iter.Seq sequences.
//
// What:
//   - RepeatEach     - every element n times in a row.
//   - Only           - the sole element of a one-element sequence.
//   - Grouped        - fixed-size groups, the last one padded with a
//     fill value.
//   - Chunked        - groups of at most n, the last one short.
//   - SlidingWindow  - overlapping windows of exactly n.
//   - Powerset       - every subset, smallest first.
//   - PeekFirst      - the first element plus a sequence that replays
//     it.
//
// Why:
//   - Range-over-func pipelines keep needing the same shaping steps
//     between a producer and a consumer; these are the ones that come
//     up in batching, signal windowing, and exhaustive search.
//
// Semantics:
//   - Every combinator consumes its input at most once, so single-use
//     sequences (channels, pulls) are fine as inputs.
//   - Yielded slices are freshly allocated; consumers may retain them.
//   - Powerset materializes the input before enumerating.
//   - Grouped, Chunked, and SlidingWindow panic when n < 1, matching
//     slices.Chunk.
//
// Errors:
//   - ErrNoElements   - Only/PeekFirst on an empty sequence.
//   - ErrManyElements - Only on a sequence with two or more elements.
//
// See example_test.go for runnable scenarios.
package seqs
