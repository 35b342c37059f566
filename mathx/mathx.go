package mathx

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by ModularInverse.
var (
	// ErrBadModulus signals a modulus that is zero or negative.
	ErrBadModulus = errors.New("mathx: modulus must be positive")
	// ErrNotCoprime signals gcd(a, m) != 1, so no inverse exists.
	ErrNotCoprime = errors.New("mathx: arguments are not coprime")
)

// PrimeFactors returns the ascending prime factors of n with
// multiplicity. Values below 2 have no factors and yield nil.
func PrimeFactors(n int) []int {
	var factors []int
	// 1. Peel divisors up to sqrt(n); whatever divides is prime because
	//    every smaller prime was already peeled.
	for d := 2; d*d <= n; d++ {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	// 2. The leftover, if any, is the single prime above sqrt(n).
	if n > 1 {
		factors = append(factors, n)
	}

	return factors
}

// ExtendedGCD returns (g, x, y) such that a*x + b*y = g where g is the
// greatest common divisor of the non-negative inputs a and b.
func ExtendedGCD(a, b int) (g, x, y int) {
	prevX, curX := 1, 0
	prevY, curY := 0, 1
	for b != 0 {
		q := a / b
		curX, prevX = prevX-q*curX, curX
		curY, prevY = prevY-q*curY, curY
		a, b = b, a%b
	}

	return a, prevX, prevY
}

// ModularInverse returns the x in [0, m) with a*x = 1 (mod m). The
// inverse exists only when a and m are coprime.
func ModularInverse(a, m int) (int, error) {
	// 1. The modulus defines the residue ring; it must be positive.
	if m <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadModulus, m)
	}
	// 2. Bezout coefficients give the inverse when the gcd is one.
	g, x, _ := ExtendedGCD(a, m)
	if g != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNotCoprime, a, m, g)
	}

	// 3. Normalize into [0, m).
	return ((x % m) + m) % m, nil
}
