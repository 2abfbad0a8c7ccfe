package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skinweights/adjacency"
)

// path5 builds 0-1-2-3-4 along the x axis.
func path5(t *testing.T) *adjacency.Graph {
	t.Helper()
	coords := make([]float32, 0, 15)
	for i := 0; i < 5; i++ {
		coords = append(coords, float32(i), 0, 0)
	}
	g, err := adjacency.New(5, []int32{0, 1, 1, 2, 2, 3, 3, 4}, coords)
	require.NoError(t, err)
	return g
}

// TestRings checks ring order and linear falloff factors.
func TestRings(t *testing.T) {
	g := path5(t)

	verts, factors, err := g.Rings([]int32{2}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 1, 3, 0, 4}, verts)
	require.Len(t, factors, 5)
	assert.InDelta(t, 1.0, factors[0], 1e-6)
	assert.InDelta(t, 2.0/3.0, factors[1], 1e-6)
	assert.InDelta(t, 2.0/3.0, factors[2], 1e-6)
	assert.InDelta(t, 1.0/3.0, factors[3], 1e-6)
	assert.InDelta(t, 1.0/3.0, factors[4], 1e-6)
}

// TestRings_StopsEarly ends when no new vertex is reached.
func TestRings_StopsEarly(t *testing.T) {
	g := path5(t)

	verts, factors, err := g.Rings([]int32{0, 4, 0}, 10)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 4, 1, 3, 2}, verts)
	assert.Equal(t, float32(1), factors[1])
	assert.InDelta(t, 10.0/11.0, factors[2], 1e-6)
	assert.InDelta(t, 9.0/11.0, factors[4], 1e-6)

	verts, factors, err = g.Rings([]int32{3}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int32{3}, verts)
	assert.Equal(t, []float32{1}, factors)
}

// TestRings_Errors covers invalid steps and selections.
func TestRings_Errors(t *testing.T) {
	g := path5(t)
	_, _, err := g.Rings([]int32{0}, -1)
	assert.ErrorIs(t, err, adjacency.ErrInvalidParameter)
	_, _, err = g.Rings([]int32{5}, 1)
	assert.ErrorIs(t, err, adjacency.ErrOutOfRange)

	bad := &adjacency.Graph{Starts: []int32{0, 1, 1}, Indices: []int32{9}, Weights: []float32{1}}
	_, _, err = bad.Rings([]int32{0}, 1)
	assert.ErrorIs(t, err, adjacency.ErrOutOfRange)
}
