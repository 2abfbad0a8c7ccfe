package influence

import "fmt"

// dominantMin is the smallest weight counted by DominantGroup.
const dominantMin float32 = 0.001

// Normalize commits every vertex in verts so it satisfies the post-write
// invariants; useful after Load. A nil verts slice normalizes all vertices.
// Returns the number of vertices left empty.
func Normalize(s *Storage, verts []int32, limit int) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, fmt.Errorf("Normalize: %w", err)
	}
	if verts == nil {
		verts = make([]int32, s.NumVerts())
		for i := range verts {
			verts[i] = int32(i)
		}
	} else if err := ValidateTargets(verts, s.NumVerts()); err != nil {
		return 0, fmt.Errorf("Normalize: %w", err)
	}

	set := NewSet()
	emptied := 0
	for _, v := range verts {
		s.Read(int(v), set)
		if !s.Commit(int(v), set, limit) {
			emptied++
		}
	}

	return emptied, nil
}

// DominantGroup returns the group with the largest summed weight over verts,
// counting only weights above 0.001. Ties resolve to the group seen first.
// Reports false when no vertex carries such a weight.
func DominantGroup(s *Storage, verts []int32) (int32, bool, error) {
	n := s.NumVerts()
	sums := NewSet()
	for i, v := range verts {
		if v < 0 || int(v) >= n {
			return EmptyGroup, false, fmt.Errorf("DominantGroup: verts[%d]=%d outside [0,%d): %w", i, v, n, ErrOutOfRange)
		}
		base := int(v) * MaxStorage
		for k := 0; k < MaxStorage; k++ {
			w := Weight{Group: s.Indices[base+k], Value: s.Values[base+k]}
			if w.Empty() || w.Value <= dominantMin {
				continue
			}
			sums.Add(w.Group, w.Value)
		}
	}
	if sums.Len() == 0 {
		return EmptyGroup, false, nil
	}
	best := sums.At(0)
	for _, w := range sums.Weights()[1:] {
		if w.Value > best.Value {
			best = w
		}
	}

	return best.Group, true, nil
}
