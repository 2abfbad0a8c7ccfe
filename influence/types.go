package influence

// Layout and numeric policy shared by every kernel.
const (
	// MaxStorage is the physical slot stride per vertex.
	MaxStorage = 8
	// MaxInfluence is the maximum number of occupied slots kept after a write.
	MaxInfluence = 8

	// EmptyGroup marks an empty slot.
	EmptyGroup int32 = -1

	// KeepThreshold is the minimum candidate weight that survives a blend.
	KeepThreshold float32 = 1e-4
	// ZeroSumThreshold: a kept-weight sum at or below it empties the vertex.
	ZeroSumThreshold float32 = 1e-5
	// NoOpThreshold: edits smaller than this leave a vertex untouched.
	NoOpThreshold float32 = 1e-4
	// NormalizeTolerance bounds |sum-1| accepted by Check.
	NormalizeTolerance float32 = 1e-4
)

// Weight is one (group, weight) influence pair.
type Weight struct {
	Group int32
	Value float32
}

// Empty reports whether w denotes an unoccupied slot.
func (w Weight) Empty() bool {
	return w.Group < 0 || w.Value <= 0
}

// Storage is a strided view over host-owned influence buffers.
//
// Indices[v*MaxStorage+k] and Values[v*MaxStorage+k] form slot k of vertex v.
// Storage never reallocates or resizes either slice.
type Storage struct {
	Indices []int32
	Values  []float32
}
