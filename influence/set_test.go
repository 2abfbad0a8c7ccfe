package influence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/skinweights/influence"
)

// TestSet_AddPutFind exercises accumulation and replacement.
func TestSet_AddPutFind(t *testing.T) {
	var s influence.Set // zero value is usable
	s.Add(3, 0.25)
	s.Add(1, 0.5)
	s.Add(3, 0.25)
	assert.Equal(t, 2, s.Len())
	assert.InDelta(t, 0.5, s.Weight(3), 1e-7)
	assert.Equal(t, -1, s.Find(9))
	assert.Zero(t, s.Weight(9))

	s.Put(1, 0.1)
	s.Put(9, 0.9)
	assert.InDelta(t, 0.1, s.Weight(1), 1e-7)
	assert.Equal(t, 2, s.Find(9))

	s.Remove(0)
	assert.Equal(t, []influence.Weight{{Group: 1, Value: 0.1}, {Group: 9, Value: 0.9}}, s.Weights())

	s.Reset()
	assert.Zero(t, s.Len())
}

// TestSet_SortStable checks descending order with ties in insertion order.
func TestSet_SortStable(t *testing.T) {
	s := influence.NewSet()
	s.Append(influence.Weight{Group: 1, Value: 0.2})
	s.Append(influence.Weight{Group: 2, Value: 0.5})
	s.Append(influence.Weight{Group: 3, Value: 0.2})
	s.Append(influence.Weight{Group: 4, Value: 0.1})
	s.Append(influence.Weight{Group: 5, Value: 0.5})
	s.Sort()

	groups := make([]int32, 0, s.Len())
	for _, w := range s.Weights() {
		groups = append(groups, w.Group)
	}
	assert.Equal(t, []int32{2, 5, 1, 3, 4}, groups)
	assert.InDelta(t, 1.2, s.Sum(3), 1e-6)
	assert.InDelta(t, 1.5, s.Sum(99), 1e-6)
}

// TestSet_Lowest picks the last of the smallest weights.
func TestSet_Lowest(t *testing.T) {
	s := influence.NewSet()
	assert.Equal(t, -1, s.Lowest())
	s.Append(influence.Weight{Group: 1, Value: 0.1})
	s.Append(influence.Weight{Group: 2, Value: 0.4})
	s.Append(influence.Weight{Group: 3, Value: 0.1})
	assert.Equal(t, 2, s.Lowest())
}

// TestWeight_Empty covers the empty-slot definition.
func TestWeight_Empty(t *testing.T) {
	assert.True(t, influence.Weight{Group: -1, Value: 0.5}.Empty())
	assert.True(t, influence.Weight{Group: 2, Value: 0}.Empty())
	assert.True(t, influence.Weight{Group: 2, Value: -0.1}.Empty())
	assert.False(t, influence.Weight{Group: 0, Value: 0.1}.Empty())
}
