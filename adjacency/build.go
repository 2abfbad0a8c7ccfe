// SPDX-License-Identifier: MIT
// Package: skinweights/adjacency
//
// build.go — CSR construction from an undirected edge list.
//
// Contract:
//   • numVerts ≥ 0; len(edges) even (pairs); len(coords) == 3*numVerts.
//   • out.Starts has numVerts+1 entries; out.Indices and out.Weights have
//     len(edges) entries (2 per edge).
//   • Every index and coordinate is validated before the first write.
//
// Algorithm:
//  1. Degree count: one pass over edges, +1 per endpoint.
//  2. Prefix sum of degrees into Starts; Starts[numVerts] = total entries.
//  3. Re-scan edges with per-vertex write cursors seeded from Starts,
//     appending (v, w) to u's range and (u, w) to v's range.
//
// Determinism:
//   • Neighbor order inside a range follows edge input order.
//   • A self-loop (u,u) contributes two entries to u, as any other edge does.

package adjacency

import (
	"fmt"
	"math"
)

const methodBuild = "Build"

// New allocates exact buffers for numVerts vertices and len(edges)/2 edges and
// runs Build into them.
// Complexity: O(V + E) time and memory.
func New(numVerts int, edges []int32, coords []float32) (*Graph, error) {
	if numVerts < 0 {
		return nil, fmt.Errorf("New: numVerts=%d: %w", numVerts, ErrInvalidParameter)
	}
	g := &Graph{
		Starts:  make([]int32, numVerts+1),
		Indices: make([]int32, len(edges)),
		Weights: make([]float32, len(edges)),
	}
	if err := Build(numVerts, edges, coords, g); err != nil {
		return nil, err
	}

	return g, nil
}

// Build fills out with the CSR graph of the undirected edges.
//
// edges holds numEdges pairs (u0,v0,u1,v1,…); coords holds numVerts xyz
// triples. The weight of edge (u,v) is 1/(|pu-pv| + DistanceEpsilon).
//
// Returns ErrInvalidParameter for a negative vertex count, an odd edge list,
// a coordinate slice of the wrong length or a non-finite coordinate, and
// ErrOutOfRange for an endpoint outside [0,numVerts) or an output buffer of
// the wrong size. out is untouched on error.
// Complexity: O(V + E) time, O(V) scratch.
func Build(numVerts int, edges []int32, coords []float32, out *Graph) error {
	if err := validateBuild(numVerts, edges, coords, out); err != nil {
		return err
	}

	// 1) Degree count, using Starts as the counter array.
	starts := out.Starts
	for i := range starts {
		starts[i] = 0
	}
	for _, v := range edges {
		starts[v]++
	}

	// 2) Exclusive prefix sum.
	var cursor int32
	for i := 0; i < numVerts; i++ {
		count := starts[i]
		starts[i] = cursor
		cursor += count
	}
	starts[numVerts] = cursor

	// 3) Populate with per-vertex write cursors.
	pos := make([]int32, numVerts)
	copy(pos, starts[:numVerts])
	for i := 0; i+1 < len(edges); i += 2 {
		u, v := edges[i], edges[i+1]
		w := edgeWeight(coords, int(u), int(v))

		p := pos[u]
		out.Indices[p] = v
		out.Weights[p] = w
		pos[u]++

		p = pos[v]
		out.Indices[p] = u
		out.Weights[p] = w
		pos[v]++
	}

	return nil
}

// edgeWeight returns 1/(euclidean distance + DistanceEpsilon).
func edgeWeight(coords []float32, u, v int) float32 {
	dx := coords[u*3] - coords[v*3]
	dy := coords[u*3+1] - coords[v*3+1]
	dz := coords[u*3+2] - coords[v*3+2]
	dist := float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))

	return 1 / (dist + DistanceEpsilon)
}

// validateBuild runs every Build check ahead of the first write.
func validateBuild(numVerts int, edges []int32, coords []float32, out *Graph) error {
	if out == nil {
		return fmt.Errorf("%s: nil output graph: %w", methodBuild, ErrInvalidParameter)
	}
	if numVerts < 0 {
		return fmt.Errorf("%s: numVerts=%d: %w", methodBuild, numVerts, ErrInvalidParameter)
	}
	if len(edges)%2 != 0 {
		return fmt.Errorf("%s: len(edges)=%d is not a whole number of pairs: %w",
			methodBuild, len(edges), ErrInvalidParameter)
	}
	if len(edges) > math.MaxInt32 {
		return fmt.Errorf("%s: len(edges)=%d exceeds int32 offsets: %w", methodBuild, len(edges), ErrOutOfRange)
	}
	if len(coords) != 3*numVerts {
		return fmt.Errorf("%s: len(coords)=%d, want %d: %w",
			methodBuild, len(coords), 3*numVerts, ErrInvalidParameter)
	}
	for i, c := range coords {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			return fmt.Errorf("%s: coords[%d]=%g is not finite: %w", methodBuild, i, c, ErrInvalidParameter)
		}
	}
	for i, v := range edges {
		if v < 0 || int(v) >= numVerts {
			return fmt.Errorf("%s: edges[%d]=%d outside [0,%d): %w", methodBuild, i, v, numVerts, ErrOutOfRange)
		}
	}
	if len(out.Starts) != numVerts+1 {
		return fmt.Errorf("%s: len(Starts)=%d, want %d: %w",
			methodBuild, len(out.Starts), numVerts+1, ErrOutOfRange)
	}
	if len(out.Indices) != len(edges) || len(out.Weights) != len(edges) {
		return fmt.Errorf("%s: len(Indices)=%d, len(Weights)=%d, want %d: %w",
			methodBuild, len(out.Indices), len(out.Weights), len(edges), ErrOutOfRange)
	}

	return nil
}
