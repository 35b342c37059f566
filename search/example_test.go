package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvlkit/search"
)

// ExampleDiscrete computes an integer square root as the largest x
// whose square does not exceed the target.
func ExampleDiscrete() {
	isqrt, _ := search.Discrete(0, 1<<16, 2023, func(x int) int { return x * x })
	fmt.Println(isqrt)
	// Output: 44
}
