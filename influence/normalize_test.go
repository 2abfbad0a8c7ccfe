package influence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skinweights/influence"
)

// TestNormalize re-commits host data and counts emptied vertices.
func TestNormalize(t *testing.T) {
	s := influence.Allocate(3)
	require.NoError(t, s.Load(0, []influence.Weight{{Group: 1, Value: 0.2}, {Group: 2, Value: 0.6}}))
	require.NoError(t, s.Load(1, []influence.Weight{{Group: 3, Value: 0.000001}}))

	emptied, err := influence.Normalize(s, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, emptied, "vertex 1 vanishes, vertex 2 was empty")
	require.NoError(t, s.CheckAll(nil))
	assert.Equal(t, int32(2), s.Indices[0])
	assert.InDelta(t, 0.75, s.Values[0], 1e-6)

	_, err = influence.Normalize(s, []int32{0, 0}, 0)
	assert.ErrorIs(t, err, influence.ErrInvalidParameter)
}

// TestDominantGroup picks the group with the largest summed weight.
func TestDominantGroup(t *testing.T) {
	s := influence.Allocate(3)
	require.NoError(t, s.Load(0, []influence.Weight{{Group: 1, Value: 0.6}, {Group: 2, Value: 0.4}}))
	require.NoError(t, s.Load(1, []influence.Weight{{Group: 2, Value: 0.9}, {Group: 1, Value: 0.0005}}))

	g, ok, err := influence.DominantGroup(s, []int32{0, 1})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int32(2), g)

	_, ok, err = influence.DominantGroup(s, []int32{2})
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = influence.DominantGroup(s, []int32{7})
	assert.ErrorIs(t, err, influence.ErrOutOfRange)
}
