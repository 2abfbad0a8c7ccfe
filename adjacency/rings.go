package adjacency

import "fmt"

// Rings grows a selection breadth-first over the graph and assigns a falloff
// factor per ring: selected vertices get 1, ring i (1..steps) gets
// (steps-i+1)/(steps+1), reaching 0 one ring past the last.
//
// Output order is the selection (duplicates dropped) followed by each ring in
// discovery order, which follows CSR neighbor order. steps == 0 returns the
// selection alone.
//
// Returns ErrInvalidParameter for negative steps and ErrOutOfRange for a
// selected or neighbor index outside the graph.
// Complexity: O(V_reached + E_reached) time, O(V/64) scratch.
func (g *Graph) Rings(selected []int32, steps int) ([]int32, []float32, error) {
	if steps < 0 {
		return nil, nil, fmt.Errorf("Rings: steps=%d: %w", steps, ErrInvalidParameter)
	}
	n := g.NumVerts()
	visited := make([]uint64, (n+63)/64)
	mark := func(v int32) bool {
		word, bit := v>>6, uint64(1)<<(uint(v)&63)
		if visited[word]&bit != 0 {
			return false
		}
		visited[word] |= bit
		return true
	}

	verts := make([]int32, 0, len(selected))
	factors := make([]float32, 0, len(selected))
	for i, v := range selected {
		if v < 0 || int(v) >= n {
			return nil, nil, fmt.Errorf("Rings: selected[%d]=%d outside [0,%d): %w", i, v, n, ErrOutOfRange)
		}
		if mark(v) {
			verts = append(verts, v)
			factors = append(factors, 1)
		}
	}

	ringStart, ringEnd := 0, len(verts)
	for step := 1; step <= steps; step++ {
		factor := float32(steps-step+1) / float32(steps+1)
		for _, v := range verts[ringStart:ringEnd] {
			if err := g.CheckRange(int(v)); err != nil {
				return nil, nil, fmt.Errorf("Rings: %w", err)
			}
			nbrs, _ := g.Neighbors(int(v))
			for _, nb := range nbrs {
				if nb < 0 || int(nb) >= n {
					return nil, nil, fmt.Errorf("Rings: neighbor %d of %d outside [0,%d): %w", nb, v, n, ErrOutOfRange)
				}
				if mark(nb) {
					verts = append(verts, nb)
					factors = append(factors, factor)
				}
			}
		}
		if len(verts) == ringEnd {
			break
		}
		ringStart, ringEnd = ringEnd, len(verts)
	}

	return verts, factors, nil
}
