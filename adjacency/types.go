package adjacency

import "errors"

// DistanceEpsilon keeps edge weights finite for coincident vertices.
const DistanceEpsilon = 1e-4

// Sentinel errors for adjacency operations.
var (
	// ErrOutOfRange indicates a vertex index or buffer length outside its extent.
	ErrOutOfRange = errors.New("adjacency: index out of range")

	// ErrInvalidParameter indicates malformed input (negative counts, odd edge
	// list, non-finite coordinates, …).
	ErrInvalidParameter = errors.New("adjacency: invalid parameter")
)

// Graph is an undirected vertex graph in CSR form. It is a view: Build writes
// into whatever slices the caller placed here and never reallocates them.
type Graph struct {
	Starts  []int32   // len numVerts+1; Starts[v]..Starts[v+1] is v's range
	Indices []int32   // neighbor vertex per entry
	Weights []float32 // edge weight per entry
}

// NumVerts returns the number of vertices described by Starts.
func (g *Graph) NumVerts() int {
	if len(g.Starts) == 0 {
		return 0
	}
	return len(g.Starts) - 1
}

// Range returns the [start, end) entry range of vertex v.
// Caller guarantees v is in range.
func (g *Graph) Range(v int) (start, end int) {
	return int(g.Starts[v]), int(g.Starts[v+1])
}

// Degree returns the number of neighbor entries of v.
// Caller guarantees v is in range.
func (g *Graph) Degree(v int) int {
	start, end := g.Range(v)
	return end - start
}

// Neighbors returns views of v's neighbor indices and edge weights.
// Caller guarantees v is in range.
func (g *Graph) Neighbors(v int) ([]int32, []float32) {
	start, end := g.Range(v)
	return g.Indices[start:end], g.Weights[start:end]
}

// TotalWeight returns the sum of v's incident edge weights.
// Caller guarantees v is in range.
func (g *Graph) TotalWeight(v int) float32 {
	_, ws := g.Neighbors(v)
	var total float32
	for _, w := range ws {
		total += w
	}
	return total
}
