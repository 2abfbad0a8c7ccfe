package influence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skinweights/influence"
)

// TestNewStorage_Errors verifies stride validation of host buffers.
func TestNewStorage_Errors(t *testing.T) {
	cases := []struct {
		name    string
		indices []int32
		values  []float32
	}{
		{"LengthMismatch", make([]int32, 8), make([]float32, 16)},
		{"NotAStride", make([]int32, 7), make([]float32, 7)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := influence.NewStorage(tc.indices, tc.values)
			assert.ErrorIs(t, err, influence.ErrBadStride)
		})
	}

	s, err := influence.NewStorage(make([]int32, 16), make([]float32, 16))
	require.NoError(t, err)
	assert.Equal(t, 2, s.NumVerts())
}

// TestAllocate checks that every slot of a fresh storage is empty.
func TestAllocate(t *testing.T) {
	s := influence.Allocate(3)
	require.Equal(t, 3, s.NumVerts())
	for i := range s.Indices {
		assert.Equal(t, influence.EmptyGroup, s.Indices[i])
		assert.Zero(t, s.Values[i])
	}
	assert.Equal(t, 0, influence.Allocate(-1).NumVerts())
}

// TestLoadAndSlots checks raw population, clipping and empty-slot skipping.
func TestLoadAndSlots(t *testing.T) {
	s := influence.Allocate(2)
	in := make([]influence.Weight, 0, 10)
	for g := int32(0); g < 10; g++ {
		in = append(in, influence.Weight{Group: g, Value: 0.1})
	}
	require.NoError(t, s.Load(0, in))

	got, err := s.Slots(0)
	require.NoError(t, err)
	assert.Len(t, got, influence.MaxStorage, "Load clips to the stride")

	require.NoError(t, s.Load(1, []influence.Weight{{Group: 3, Value: 0}, {Group: -1, Value: 0.4}, {Group: 5, Value: 0.5}}))
	got, err = s.Slots(1)
	require.NoError(t, err)
	assert.Equal(t, []influence.Weight{{Group: 5, Value: 0.5}}, got)

	assert.ErrorIs(t, s.Load(2, nil), influence.ErrOutOfRange)
	_, err = s.Slots(-1)
	assert.ErrorIs(t, err, influence.ErrOutOfRange)
}

// TestCommit verifies the shared write tail: sort, normalize, zero-fill.
func TestCommit(t *testing.T) {
	s := influence.Allocate(1)
	set := influence.NewSet()
	set.Put(4, 0.2)
	set.Put(7, 0.6)

	require.True(t, s.Commit(0, set, influence.MaxInfluence))
	assert.Equal(t, int32(7), s.Indices[0])
	assert.Equal(t, int32(4), s.Indices[1])
	assert.InDelta(t, 0.75, s.Values[0], 1e-6)
	assert.InDelta(t, 0.25, s.Values[1], 1e-6)
	for k := 2; k < influence.MaxStorage; k++ {
		assert.Equal(t, influence.EmptyGroup, s.Indices[k])
		assert.Zero(t, s.Values[k])
	}
	assert.NoError(t, s.Check(0))
}

// TestCommit_Limit verifies truncation to the influence limit before rescale.
func TestCommit_Limit(t *testing.T) {
	s := influence.Allocate(1)
	set := influence.NewSet()
	set.Put(1, 0.5)
	set.Put(2, 0.3)
	set.Put(3, 0.2)

	require.True(t, s.Commit(0, set, 2))
	got, err := s.Slots(0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 0.625, got[0].Value, 1e-6)
	assert.InDelta(t, 0.375, got[1].Value, 1e-6)
}

// TestCommit_ZeroSum verifies that a vanishing sum empties the vertex.
func TestCommit_ZeroSum(t *testing.T) {
	s := influence.Allocate(1)
	require.NoError(t, s.Load(0, []influence.Weight{{Group: 1, Value: 1}}))
	set := influence.NewSet()
	set.Put(1, 5e-6)

	assert.False(t, s.Commit(0, set, 0))
	got, err := s.Slots(0)
	require.NoError(t, err)
	assert.Empty(t, got)
	for k := 0; k < influence.MaxStorage; k++ {
		assert.Equal(t, influence.EmptyGroup, s.Indices[k])
	}
}
