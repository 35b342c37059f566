package mathx_test

import (
	"fmt"

	"github.com/katalvlaran/lvlkit/mathx"
)

// ExamplePrimeFactors factors 60 into its multiset of primes.
func ExamplePrimeFactors() {
	fmt.Println(mathx.PrimeFactors(60))
	// Output: [2 2 3 5]
}

// ExampleExtendedGCD prints Bezout coefficients for 29 and 71.
func ExampleExtendedGCD() {
	g, x, y := mathx.ExtendedGCD(29, 71)
	fmt.Println(g, x, y)
	// Output: 1 -22 9
}

// ExampleModularInverse inverts 29 modulo 71.
func ExampleModularInverse() {
	inv, _ := mathx.ModularInverse(29, 71)
	fmt.Println(inv, (29*inv)%71)
	// Output: 49 1
}
