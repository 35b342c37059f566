// Package mathx collects small integer number-theory helpers.
//
// What:
//   - PrimeFactors returns the ascending prime factorization of n, with
//     multiplicity; n < 2 factors into nothing.
//   - ExtendedGCD runs the extended Euclidean algorithm, returning
//     (g, x, y) with a*x + b*y = g.
//   - ModularInverse solves a*x = 1 (mod m) for coprime a and m,
//     normalizing the result into [0, m).
//
// Complexity:
//   - PrimeFactors is O(sqrt(n)) trial division; the Euclidean pair is
//     O(log min(a, b)).
//
// Errors:
//   - ErrBadModulus  - ModularInverse called with m <= 0.
//   - ErrNotCoprime  - no inverse exists because gcd(a, m) != 1.
//
// See example_test.go for runnable scenarios.
package mathx
