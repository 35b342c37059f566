// Package search finds thresholds of monotone functions over integer
// domains.
//
// What:
//   - Discrete locates the largest x in [lo, hi) whose image still sits
//     at or below a target: f(x) <= want < f(x+1). The probe function
//     must be non-decreasing over the bracket.
//
// Why:
//   - Capacity questions reduce to this shape: the largest batch that
//     fits a budget, the last tick before a deadline, the integer
//     square root. Writing the half-open bookkeeping inline gets it
//     wrong often enough to deserve one tested home.
//
// Contract:
//   - The caller guarantees f(lo) <= want < f(hi); Discrete only checks
//     that the bracket is non-empty. Outside that precondition the
//     returned index is the bracket edge, not an answer.
//
// Complexity:
//   - O(log(hi-lo)) probes, O(1) space.
//
// Errors:
//   - ErrBadBracket - lo >= hi.
//
// See example_test.go for runnable scenarios.
package search
