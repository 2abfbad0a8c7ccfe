package edit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skinweights/edit"
	"github.com/katalvlaran/skinweights/influence"
)

func TestBinarize(t *testing.T) {
	s := newStorage(t,
		[]influence.Weight{{Group: 0, Value: 0.3}, {Group: 1, Value: 0.7}},
		[]influence.Weight{{Group: 4, Value: 0.5}, {Group: 2, Value: 0.5}},
		[]influence.Weight{{Group: 2, Value: 1}},
		nil,
	)

	res, err := edit.Binarize(s, []int32{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Updated)
	assert.Equal(t, 2, res.Skipped)

	assert.Equal(t, []influence.Weight{{Group: 1, Value: 1}}, slots(t, s, 0))
	assert.Equal(t, []influence.Weight{{Group: 4, Value: 1}}, slots(t, s, 1))
	assert.Equal(t, []influence.Weight{{Group: 2, Value: 1}}, slots(t, s, 2))
	assert.Empty(t, slots(t, s, 3))
	require.NoError(t, s.CheckAll(nil))
}

func TestBinarize_Errors(t *testing.T) {
	s := newStorage(t, []influence.Weight{{Group: 0, Value: 0.3}, {Group: 1, Value: 0.7}})
	before := clone(s)

	_, err := edit.Binarize(s, []int32{1})
	assert.ErrorIs(t, err, edit.ErrOutOfRange)
	_, err = edit.Binarize(s, []int32{0, 0})
	assert.ErrorIs(t, err, edit.ErrInvalidParameter)
	_, err = edit.Binarize(s, []int32{0}, edit.WithInfluenceLimit(42))
	assert.ErrorIs(t, err, edit.ErrInvalidParameter)
	assert.Equal(t, before, s)
}
