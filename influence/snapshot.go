package influence

import "fmt"

// DefaultHistoryDepth bounds an undo History built with a non-positive depth.
const DefaultHistoryDepth = 20

// Snapshot holds a copy of the slots of a set of vertices.
type Snapshot struct {
	verts   []int32
	indices []int32
	values  []float32
}

// Len returns the number of captured vertices.
func (sn *Snapshot) Len() int { return len(sn.verts) }

// Vertices returns the captured vertex indices.
func (sn *Snapshot) Vertices() []int32 { return sn.verts }

// Capture copies the slots of verts. Returns ErrOutOfRange for an index
// outside s. Complexity: O(len(verts)·MaxStorage).
func (s *Storage) Capture(verts []int32) (*Snapshot, error) {
	n := s.NumVerts()
	for i, v := range verts {
		if v < 0 || int(v) >= n {
			return nil, fmt.Errorf("Capture: verts[%d]=%d outside [0,%d): %w", i, v, n, ErrOutOfRange)
		}
	}
	sn := &Snapshot{
		verts:   append([]int32(nil), verts...),
		indices: make([]int32, len(verts)*MaxStorage),
		values:  make([]float32, len(verts)*MaxStorage),
	}
	for i, v := range verts {
		src := int(v) * MaxStorage
		dst := i * MaxStorage
		copy(sn.indices[dst:dst+MaxStorage], s.Indices[src:src+MaxStorage])
		copy(sn.values[dst:dst+MaxStorage], s.Values[src:src+MaxStorage])
	}

	return sn, nil
}

// Restore writes a snapshot back. The whole snapshot is range-checked before
// any slot is written.
func (s *Storage) Restore(sn *Snapshot) error {
	if sn == nil {
		return fmt.Errorf("Restore: nil snapshot: %w", ErrInvalidParameter)
	}
	n := s.NumVerts()
	for i, v := range sn.verts {
		if v < 0 || int(v) >= n {
			return fmt.Errorf("Restore: verts[%d]=%d outside [0,%d): %w", i, v, n, ErrOutOfRange)
		}
	}
	for i, v := range sn.verts {
		dst := int(v) * MaxStorage
		src := i * MaxStorage
		copy(s.Indices[dst:dst+MaxStorage], sn.indices[src:src+MaxStorage])
		copy(s.Values[dst:dst+MaxStorage], sn.values[src:src+MaxStorage])
	}

	return nil
}

// History is a bounded undo stack of snapshots. The oldest entry is dropped
// once depth is reached.
type History struct {
	depth int
	stack []*Snapshot
}

// NewHistory returns an empty History holding at most depth snapshots.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.stack) }

// Record captures verts and pushes the snapshot.
func (h *History) Record(s *Storage, verts []int32) error {
	sn, err := s.Capture(verts)
	if err != nil {
		return err
	}
	h.Push(sn)

	return nil
}

// Push stores sn, evicting the oldest snapshot when full.
func (h *History) Push(sn *Snapshot) {
	if len(h.stack) == h.depth {
		copy(h.stack, h.stack[1:])
		h.stack = h.stack[:len(h.stack)-1]
	}
	h.stack = append(h.stack, sn)
}

// Undo restores the most recent snapshot into s and drops it.
// Reports false when the history is empty.
func (h *History) Undo(s *Storage) (bool, error) {
	if len(h.stack) == 0 {
		return false, nil
	}
	sn := h.stack[len(h.stack)-1]
	if err := s.Restore(sn); err != nil {
		return false, err
	}
	h.stack[len(h.stack)-1] = nil
	h.stack = h.stack[:len(h.stack)-1]

	return true, nil
}
