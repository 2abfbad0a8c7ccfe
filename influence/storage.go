package influence

import "fmt"

// NewStorage wraps host buffers without copying them.
// Returns ErrBadStride if the lengths differ or are not a multiple of MaxStorage.
// Complexity: O(1).
func NewStorage(indices []int32, values []float32) (*Storage, error) {
	if len(indices) != len(values) {
		return nil, fmt.Errorf("NewStorage: len(indices)=%d, len(values)=%d: %w",
			len(indices), len(values), ErrBadStride)
	}
	if len(indices)%MaxStorage != 0 {
		return nil, fmt.Errorf("NewStorage: len=%d is not a multiple of %d: %w",
			len(indices), MaxStorage, ErrBadStride)
	}

	return &Storage{Indices: indices, Values: values}, nil
}

// Allocate returns a Storage for numVerts vertices with every slot empty.
// Kernels never allocate storage; this is a convenience for hosts and tests.
// Complexity: O(numVerts).
func Allocate(numVerts int) *Storage {
	if numVerts < 0 {
		numVerts = 0
	}
	s := &Storage{
		Indices: make([]int32, numVerts*MaxStorage),
		Values:  make([]float32, numVerts*MaxStorage),
	}
	for i := range s.Indices {
		s.Indices[i] = EmptyGroup
	}

	return s
}

// NumVerts returns the number of vertex strides in the view.
func (s *Storage) NumVerts() int {
	return len(s.Indices) / MaxStorage
}

// Validate re-checks the stride invariant on a Storage built by hand.
func (s *Storage) Validate() error {
	if s == nil {
		return fmt.Errorf("Validate: nil storage: %w", ErrInvalidParameter)
	}
	if _, err := NewStorage(s.Indices, s.Values); err != nil {
		return err
	}

	return nil
}

// InRange reports whether v addresses a vertex stride of s.
func (s *Storage) InRange(v int) bool {
	return v >= 0 && v < s.NumVerts()
}

// Read loads the occupied slots of vertex v into set, in slot order.
// Caller guarantees v is in range.
func (s *Storage) Read(v int, set *Set) {
	set.Reset()
	base := v * MaxStorage
	for k := 0; k < MaxStorage; k++ {
		w := Weight{Group: s.Indices[base+k], Value: s.Values[base+k]}
		if w.Empty() {
			continue
		}
		set.Append(w)
	}
}

// Slots returns a copy of the occupied slots of vertex v.
func (s *Storage) Slots(v int) ([]Weight, error) {
	if !s.InRange(v) {
		return nil, fmt.Errorf("Slots: vertex %d outside [0,%d): %w", v, s.NumVerts(), ErrOutOfRange)
	}
	var set Set
	s.Read(v, &set)
	out := make([]Weight, set.Len())
	copy(out, set.Weights())

	return out, nil
}

// Load writes raw host weights into vertex v in the given order, clipped to
// MaxStorage entries, and empties the remaining slots. No sorting or
// normalization is applied; run Normalize afterwards to establish the
// post-write invariants.
func (s *Storage) Load(v int, weights []Weight) error {
	if !s.InRange(v) {
		return fmt.Errorf("Load: vertex %d outside [0,%d): %w", v, s.NumVerts(), ErrOutOfRange)
	}
	base := v * MaxStorage
	k := 0
	for _, w := range weights {
		if k == MaxStorage {
			break
		}
		s.Indices[base+k] = w.Group
		s.Values[base+k] = w.Value
		k++
	}
	for ; k < MaxStorage; k++ {
		s.Indices[base+k] = EmptyGroup
		s.Values[base+k] = 0
	}

	return nil
}

// Clear empties every slot of vertex v. Caller guarantees v is in range.
func (s *Storage) Clear(v int) {
	base := v * MaxStorage
	for k := 0; k < MaxStorage; k++ {
		s.Indices[base+k] = EmptyGroup
		s.Values[base+k] = 0
	}
}

// Commit writes set into vertex v: stable descending sort, truncate to
// limit, rescale to a unit sum and zero-fill the remainder. When the kept
// sum is at or below ZeroSumThreshold every slot is emptied instead.
// Reports whether at least one slot stayed occupied.
//
// limit outside [1, MaxInfluence] means MaxInfluence. set is left sorted
// and truncated. Caller guarantees v is in range.
func (s *Storage) Commit(v int, set *Set, limit int) bool {
	if limit <= 0 || limit > MaxInfluence {
		limit = MaxInfluence
	}
	set.Sort()
	set.Truncate(limit)

	total := set.Sum(set.Len())
	if total <= ZeroSumThreshold {
		s.Clear(v)
		return false
	}

	ratio := 1 / total
	base := v * MaxStorage
	k := 0
	for _, w := range set.Weights() {
		s.Indices[base+k] = w.Group
		s.Values[base+k] = w.Value * ratio
		k++
	}
	for ; k < MaxStorage; k++ {
		s.Indices[base+k] = EmptyGroup
		s.Values[base+k] = 0
	}

	return true
}
