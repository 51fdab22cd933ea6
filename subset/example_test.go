package subset_test

import (
	"fmt"

	"github.com/almostEric/FrozenWasteland-sub000/subset"
)

// ExampleMask draws each reducer picking 5 of 12 slots.
func ExampleMask() {
	for _, alg := range []subset.Algorithm{subset.Euclidean, subset.GolombRuler, subset.PerfectBalance} {
		fmt.Printf("%-10s", alg)
		for _, on := range subset.Mask(alg, 12, 5) {
			if on {
				fmt.Print("x")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
	// Output:
	// euclidean x.x.x..x.x..
	// golomb    xx..x....x.x
	// balance   x.x...x.x...
}
