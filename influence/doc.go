// Package influence models per-vertex skinning influences stored in flat,
// fixed-stride buffers owned by the host.
//
// What:
//
//   - Storage is a view over two parallel slices, Indices (group ids) and
//     Values (weights), each MaxStorage*numVerts long. Vertex v owns slots
//     [v*MaxStorage, (v+1)*MaxStorage).
//   - A slot is empty iff its group is negative or its weight is ≤ 0.
//   - Set is a small reusable working set used to edit one vertex at a time.
//   - Commit is the shared write tail: stable descending sort, truncate to the
//     influence limit, rescale to a unit sum, zero-fill the remainder.
//
// Invariants after any Commit:
//
//   - occupied slots are contiguous from slot 0 and sorted descending,
//   - at most MaxInfluence slots are occupied,
//   - occupied weights sum to 1 (±NormalizeTolerance), or every slot is empty.
//
// Extras:
//
//   - Check/CheckAll verify the invariants above.
//   - Capture/Restore and History snapshot target vertices for undo.
//   - Normalize re-commits host-populated vertices; DominantGroup picks the
//     strongest group over a selection.
//
// Errors:
//
//   - ErrBadStride: buffer lengths differ or are not a multiple of MaxStorage.
//   - ErrOutOfRange: vertex or group index outside its extent.
//   - ErrInvalidParameter: malformed call parameter (duplicate target, …).
//   - ErrNotNormalized, ErrCapacity, ErrUnordered: invariant violations.
package influence
