package adjacency_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skinweights/adjacency"
)

// TestValidate covers malformed host-supplied graphs.
func TestValidate(t *testing.T) {
	good := func() *adjacency.Graph {
		return &adjacency.Graph{
			Starts:  []int32{0, 1, 2},
			Indices: []int32{1, 0},
			Weights: []float32{1, 1},
		}
	}
	require.NoError(t, good().Validate())

	var nilGraph *adjacency.Graph
	assert.ErrorIs(t, nilGraph.Validate(), adjacency.ErrInvalidParameter)
	assert.ErrorIs(t, (&adjacency.Graph{}).Validate(), adjacency.ErrInvalidParameter)

	g := good()
	g.Starts[0] = 1
	assert.ErrorIs(t, g.Validate(), adjacency.ErrOutOfRange)

	g = good()
	g.Starts = []int32{0, 2, 1}
	assert.ErrorIs(t, g.Validate(), adjacency.ErrOutOfRange)

	g = good()
	g.Weights = g.Weights[:1]
	assert.ErrorIs(t, g.Validate(), adjacency.ErrOutOfRange)

	g = good()
	g.Indices[0] = 5
	assert.ErrorIs(t, g.Validate(), adjacency.ErrOutOfRange)

	g = good()
	g.Weights[1] = float32(math.Inf(1))
	assert.ErrorIs(t, g.Validate(), adjacency.ErrInvalidParameter)
}

// TestCheckRange covers per-vertex range checks.
func TestCheckRange(t *testing.T) {
	g := &adjacency.Graph{Starts: []int32{0, 1, 5}, Indices: []int32{1, 0}, Weights: []float32{1, 1}}
	assert.NoError(t, g.CheckRange(0))
	assert.ErrorIs(t, g.CheckRange(1), adjacency.ErrOutOfRange)
	assert.ErrorIs(t, g.CheckRange(2), adjacency.ErrOutOfRange)
	assert.ErrorIs(t, g.CheckRange(-1), adjacency.ErrOutOfRange)
}
