package palace_test

import (
	"fmt"

	"github.com/katalvlaran/qimen/palace"
)

// ExampleStep contrasts the numeric sequence with the spatial ring: one step
// from palace 1 lands on different palaces depending on the cycle.
func ExampleStep() {
	fmt.Println(palace.Step(1, 1)) // numeric: 1 → 2

	i, _ := palace.RingIndex(1)
	fmt.Println(palace.AtRing(i + 1)) // spatial: 1 → 8
	// Output:
	// 2
	// 8
}
