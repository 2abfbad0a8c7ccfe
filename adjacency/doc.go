// Package adjacency builds and reads the compressed sparse row (CSR) vertex
// graph used by weight diffusion.
//
// What:
//
//   - Build converts an undirected edge list plus vertex coordinates into a
//     CSR graph written to caller-allocated buffers.
//   - Each edge (u,v) appears once in u's range and once in v's range with the
//     same weight 1/(|pu-pv| + DistanceEpsilon): closer vertices pull harder.
//   - Neighbor order inside a range follows edge input order.
//   - Rings expands a selection breadth-first and assigns linear falloff
//     factors per ring.
//
// Layout:
//
//	Starts  [numVerts+1]  Starts[v]..Starts[v+1] is v's neighbor range
//	Indices [2*numEdges]  neighbor vertex per entry
//	Weights [2*numEdges]  edge weight per entry
//
// Complexity:
//
//   - Build: O(V + E) time, O(V) scratch for write cursors.
//   - Rings: O(V_reached + E_reached) time, O(V/64) scratch.
//
// Errors:
//
//   - ErrOutOfRange: a vertex index or a buffer length outside its extent.
//   - ErrInvalidParameter: negative counts, odd edge lists, coordinate length
//     mismatch, non-finite coordinates or weights, negative ring steps.
package adjacency
