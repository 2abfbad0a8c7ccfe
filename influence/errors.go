// SPDX-License-Identifier: MIT
// Package: skinweights/influence
//
// errors.go — sentinel errors shared by the kernel packages.
//
// Error policy:
//   • Only package-level sentinels are exposed; match them with errors.Is.
//   • Context is attached at the failure site with fmt.Errorf("...: %w", ErrX).
//   • Degenerate numeric outcomes (no neighbors, nothing survives) are
//     results, never errors.

package influence

import "errors"

var (
	// ErrBadStride indicates Indices/Values lengths differ or are not a
	// multiple of MaxStorage.
	ErrBadStride = errors.New("influence: buffer length is not a whole number of vertex strides")

	// ErrOutOfRange indicates a vertex index, group index or array access
	// outside its declared extent.
	ErrOutOfRange = errors.New("influence: index out of range")

	// ErrInvalidParameter indicates a malformed call parameter: a factor
	// outside its domain, a non-finite value, an unknown mode, a duplicate
	// target or mismatched parallel slices.
	ErrInvalidParameter = errors.New("influence: invalid parameter")

	// ErrNotNormalized indicates occupied weights do not sum to 1.
	ErrNotNormalized = errors.New("influence: weights not normalized")

	// ErrCapacity indicates more than MaxInfluence occupied slots.
	ErrCapacity = errors.New("influence: too many occupied slots")

	// ErrUnordered indicates occupied slots are not sorted descending or an
	// empty slot precedes an occupied one.
	ErrUnordered = errors.New("influence: slots not sorted or not contiguous")
)
