// Package edit adjusts the weight of one influence group on a set of
// vertices, independent of mesh topology.
//
// Modes
//
//   - Smear:  new = cur + (target − cur)·f, unclamped. A negative target is
//     the "skip" sentinel and turns the whole call into a no-op.
//   - Harden: new = clamp(cur + (cur − 0.5)·f, 0, 1); weights move away from
//     the midpoint, reaching a hard 0/1 split as f approaches 1.
//   - Add:    new = clamp(cur + target·f, 0, 1); the other groups are scaled
//     to fill 1 − new, or dropped when new reaches 1.
//
// Per vertex, a zero factor or an edit smaller than influence.NoOpThreshold
// leaves the slots bit-for-bit unchanged. Otherwise the active group is
// replaced, appended (only above influence.KeepThreshold) or removed when
// its weight reaches 0, and the set goes through influence.Storage.Commit.
//
// Capacity
//
//	When the active group is absent and all MaxStorage slots are occupied,
//	the lowest-weight slot (the last one among equal weights) is replaced if
//	the new weight exceeds it. Otherwise the new group is dropped and the
//	vertex is left untouched.
//
// Binarize keeps only each vertex's strongest group at weight 1.
//
// Errors
//
//   - ErrInvalidParameter: unknown mode, factor count mismatch, negative or
//     non-finite factor, non-finite or out-of-range target, duplicate target.
//   - ErrOutOfRange: target vertex outside the storage, negative group.
//
// Validation precedes writes; a failed call leaves storage as it was.
package edit
