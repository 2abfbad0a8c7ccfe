package influence

import "fmt"

// Check verifies the post-write invariants of vertex v:
// contiguous occupied slots sorted descending (ErrUnordered), at most
// MaxInfluence of them (ErrCapacity), summing to 1 within
// NormalizeTolerance unless the vertex is empty (ErrNotNormalized).
// Mismatched or unstrided buffers report ErrBadStride.
// Complexity: O(MaxStorage).
func (s *Storage) Check(v int) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("Check: %w", err)
	}
	if !s.InRange(v) {
		return fmt.Errorf("Check: vertex %d outside [0,%d): %w", v, s.NumVerts(), ErrOutOfRange)
	}
	base := v * MaxStorage
	occupied := 0
	gap := false
	var sum float32
	var prev Weight
	for k := 0; k < MaxStorage; k++ {
		w := Weight{Group: s.Indices[base+k], Value: s.Values[base+k]}
		if w.Empty() {
			gap = true
			continue
		}
		if gap {
			return fmt.Errorf("Check: vertex %d slot %d follows an empty slot: %w", v, k, ErrUnordered)
		}
		if occupied > 0 && w.Value > prev.Value {
			return fmt.Errorf("Check: vertex %d slot %d weight %g > %g: %w", v, k, w.Value, prev.Value, ErrUnordered)
		}
		prev = w
		sum += w.Value
		occupied++
	}
	if occupied > MaxInfluence {
		return fmt.Errorf("Check: vertex %d has %d occupied slots: %w", v, occupied, ErrCapacity)
	}
	if occupied > 0 && (sum-1 > NormalizeTolerance || 1-sum > NormalizeTolerance) {
		return fmt.Errorf("Check: vertex %d sums to %g: %w", v, sum, ErrNotNormalized)
	}

	return nil
}

// CheckAll runs Check over verts and returns the first violation.
// A nil verts slice checks every vertex of s.
func (s *Storage) CheckAll(verts []int32) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("CheckAll: %w", err)
	}
	if verts == nil {
		for v := 0; v < s.NumVerts(); v++ {
			if err := s.Check(v); err != nil {
				return err
			}
		}
		return nil
	}
	for _, v := range verts {
		if err := s.Check(int(v)); err != nil {
			return err
		}
	}

	return nil
}
