// Package diffusion smooths per-vertex skinning weights over a CSR vertex
// graph.
//
// What
//
//   - For each target vertex v and every group g seen on v or on any of its
//     neighbors:
//     new(g) = cur(g)·(1−f) + avg(g)·f
//     where avg(g) is the edge-weighted mean of g over v's neighbors.
//   - Groups with no neighbor support decay as cur(g)·(1−f).
//   - Candidates ≤ influence.KeepThreshold are dropped; the survivors go
//     through influence.Storage.Commit (sort, truncate, renormalize).
//   - Vertices with no neighbors, or a total edge weight below
//     influence.ZeroSumThreshold, are left untouched.
//
// Simultaneous reads
//
//	Every pass computes all target results into a per-call arena before the
//	first write, so no target ever reads another target's updated weights
//	inside the same pass. With WithIterations(n) each later pass reads the
//	previous pass's writes.
//
// Options
//
//   - WithIterations(n): repeat the pass n times (n ≥ 1).
//   - WithTargetFactors(fs): per-target falloff multiplied into factor.
//   - WithInfluenceLimit(n): keep at most n groups per vertex.
//   - WithHistory(h): snapshot the targets into h before the first write.
//
// Errors
//
//   - ErrInvalidParameter: factor outside [0,1], bad option, duplicate
//     target, factor slice length mismatch, nil graph or storage.
//   - ErrOutOfRange: target outside the graph or storage, malformed CSR range,
//     neighbor outside the storage.
//
// Validation finishes before any write; a failed call leaves storage as it was.
//
// Complexity
//
//   - Time:   O(iterations · Σ deg(t) · MaxStorage) over targets t.
//   - Memory: O(len(targets) · MaxStorage) arena, allocated per call.
package diffusion
