package influence_test

import (
	"fmt"

	"github.com/katalvlaran/skinweights/influence"
)

// ExampleStorage_Commit shows the write tail on a single vertex:
// the working set is sorted, rescaled to a unit sum and zero-filled.
func ExampleStorage_Commit() {
	s := influence.Allocate(1)
	set := influence.NewSet()
	set.Put(2, 1)
	set.Put(5, 3)

	s.Commit(0, set, influence.MaxInfluence)
	for k := 0; k < 3; k++ {
		fmt.Printf("slot %d: group=%d weight=%.2f\n", k, s.Indices[k], s.Values[k])
	}
	// Output:
	// slot 0: group=5 weight=0.75
	// slot 1: group=2 weight=0.25
	// slot 2: group=-1 weight=0.00
}
