// Package skinweights is an in-place processing engine for mesh skinning
// weights: every vertex carries a small, bounded set of (group, weight)
// influence pairs stored in flat fixed-stride buffers owned by the host.
//
// 🚀 What is skinweights?
//
//	A pure Go kernel set that works directly on host buffers:
//		• Adjacency: undirected edge list + positions → CSR graph with
//		  inverse-distance edge weights
//		• Diffusion: blend influences toward the edge-weighted neighbor average
//		• Edit: per-vertex smear / harden / add on a single active group
//
// ✨ Guarantees
//
//   - Every write leaves a vertex sorted descending by weight, contiguous
//     from slot 0, capped at MaxInfluence slots and summing to 1.
//   - Diffusion reads the pre-call state of every vertex (simultaneous update).
//   - Invalid input is rejected with sentinel errors before any buffer is touched.
//   - No goroutines, no locks, no I/O inside the kernels.
//
// Under the hood, everything is organized under four subpackages:
//
//	influence/  — fixed-stride storage view, working set, invariant checks, undo
//	adjacency/  — CSR graph builder, neighbor access, falloff rings
//	diffusion/  — Jacobi-style weight smoothing over the CSR graph
//	edit/       — smear, harden, add and binarize edits on target vertices
//
// The library is silent by default; see SetLogger.
//
//	go get github.com/katalvlaran/skinweights
package skinweights
