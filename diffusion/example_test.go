package diffusion_test

import (
	"fmt"

	"github.com/katalvlaran/skinweights/adjacency"
	"github.com/katalvlaran/skinweights/diffusion"
	"github.com/katalvlaran/skinweights/influence"
)

// ExampleSmooth blends the middle of a three-vertex strip halfway toward its
// neighbors.
func ExampleSmooth() {
	coords := []float32{0, 0, 0, 1, 0, 0, 2, 0, 0}
	g, _ := adjacency.New(3, []int32{0, 1, 1, 2}, coords)

	s := influence.Allocate(3)
	_ = s.Load(0, []influence.Weight{{Group: 0, Value: 1}})
	_ = s.Load(1, []influence.Weight{{Group: 1, Value: 1}})
	_ = s.Load(2, []influence.Weight{{Group: 2, Value: 1}})

	res, err := diffusion.Smooth(g, s, []int32{1}, 0.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("updated:", res.Updated)
	ws, _ := s.Slots(1)
	for _, w := range ws {
		fmt.Printf("group %d: %.2f\n", w.Group, w.Value)
	}
	// Output:
	// updated: 1
	// group 1: 0.50
	// group 0: 0.25
	// group 2: 0.25
}
