// Package stats provides an immutable, mergeable accumulator of sample
// statistics: count, sum, sum of squares, minimum and maximum.
//
// What:
//
//   - Stats summarizes a finite sequence of real samples in five moments.
//   - Add merges two summaries as if their samples were concatenated;
//     the operation is associative and commutative, with the empty
//     summary as its identity element.
//   - Scale replicates every sample n times without revisiting the data.
//   - Derived quantities: Mean, SumSquaredDeviations, Variance (unbiased),
//     StdDev, RMS.
//
// Why:
//
//   - Streaming pipelines: summarize shards independently, merge once.
//   - Benchmark harnesses: cheap min/max/mean/deviation of timings.
//   - Array diagnostics: one-line textual profile of numeric data.
//
// Degenerate states are values, not errors: an empty Stats reports
// Mean/Variance/StdDev as NaN, Min as +Inf, Max as -Inf, RMS as 0.
// The zero value of Stats is the empty summary and is ready to use.
//
// Complexity:
//
//   - New/Of: O(n) over the samples, O(1) memory.
//   - Add, Scale, and every accessor: O(1).
//
// Errors: none — every operation is total over the valid state space.
//
// Concurrency: Stats is an immutable value; any number of goroutines may
// share and combine instances without synchronization.
package stats
