package adjacency

import (
	"fmt"
	"math"
)

// Validate checks the structure of a host-supplied graph: Starts begins at 0,
// never decreases and ends at len(Indices) == len(Weights); every neighbor
// index lies in [0,NumVerts); every weight is finite and non-negative.
// Symmetry is not checked.
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	if g == nil || len(g.Starts) == 0 {
		return fmt.Errorf("Validate: missing Starts: %w", ErrInvalidParameter)
	}
	n := g.NumVerts()
	if g.Starts[0] != 0 {
		return fmt.Errorf("Validate: Starts[0]=%d: %w", g.Starts[0], ErrOutOfRange)
	}
	for v := 0; v < n; v++ {
		if g.Starts[v+1] < g.Starts[v] {
			return fmt.Errorf("Validate: Starts[%d]=%d < Starts[%d]=%d: %w",
				v+1, g.Starts[v+1], v, g.Starts[v], ErrOutOfRange)
		}
	}
	total := int(g.Starts[n])
	if total != len(g.Indices) || total != len(g.Weights) {
		return fmt.Errorf("Validate: Starts[%d]=%d, len(Indices)=%d, len(Weights)=%d: %w",
			n, total, len(g.Indices), len(g.Weights), ErrOutOfRange)
	}
	for i, nb := range g.Indices {
		if nb < 0 || int(nb) >= n {
			return fmt.Errorf("Validate: Indices[%d]=%d outside [0,%d): %w", i, nb, n, ErrOutOfRange)
		}
	}
	for i, w := range g.Weights {
		if math.IsNaN(float64(w)) || math.IsInf(float64(w), 0) || w < 0 {
			return fmt.Errorf("Validate: Weights[%d]=%g: %w", i, w, ErrInvalidParameter)
		}
	}

	return nil
}

// CheckRange reports whether v's neighbor range is well formed and fits the
// entry arrays. It is the per-vertex slice of Validate used by kernels that
// only touch a few vertices of a large host graph.
func (g *Graph) CheckRange(v int) error {
	n := g.NumVerts()
	if v < 0 || v >= n {
		return fmt.Errorf("vertex %d outside [0,%d): %w", v, n, ErrOutOfRange)
	}
	start, end := g.Range(v)
	if start < 0 || end < start || end > len(g.Indices) || end > len(g.Weights) {
		return fmt.Errorf("vertex %d range [%d,%d) outside entries: %w", v, start, end, ErrOutOfRange)
	}

	return nil
}
