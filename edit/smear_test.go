package edit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skinweights/edit"
	"github.com/katalvlaran/skinweights/influence"
)

// TestSmear_Overshoot: factors above 1 extrapolate past the target before
// renormalization.
func TestSmear_Overshoot(t *testing.T) {
	s := newStorage(t, []influence.Weight{{Group: 1, Value: 0.8}, {Group: 0, Value: 0.2}})

	res, err := edit.Apply(s, []int32{0}, []float32{1.5}, 0, edit.Smear, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)

	// 0.2 + (1 − 0.2)·1.5 = 1.4; total 2.2.
	ws := slots(t, s, 0)
	require.Len(t, ws, 2)
	assert.Equal(t, int32(0), ws[0].Group)
	assert.InDelta(t, 1.4/2.2, ws[0].Value, 1e-5)
	assert.InDelta(t, 0.8/2.2, ws[1].Value, 1e-5)
	require.NoError(t, s.Check(0))
}

// TestSmear_OvershootBelowZero removes a group driven under 0.
func TestSmear_OvershootBelowZero(t *testing.T) {
	s := newStorage(t, []influence.Weight{{Group: 0, Value: 0.5}, {Group: 1, Value: 0.5}})

	_, err := edit.Apply(s, []int32{0}, []float32{2}, 0, edit.Smear, 0)
	require.NoError(t, err)
	ws := slots(t, s, 0)
	require.Len(t, ws, 1)
	assert.Equal(t, int32(1), ws[0].Group)
	assert.InDelta(t, 1.0, ws[0].Value, 1e-6)
	require.NoError(t, s.Check(0))
}

// TestFactorZero_UnnormalizedHost keeps host weights above 1 untouched.
func TestFactorZero_UnnormalizedHost(t *testing.T) {
	s := newStorage(t, []influence.Weight{{Group: 0, Value: 1.5}, {Group: 1, Value: 0.5}})
	before := clone(s)

	for _, mode := range []edit.Mode{edit.Smear, edit.Harden, edit.Add} {
		res, err := edit.Apply(s, []int32{0}, []float32{0}, 0, mode, 0.3)
		require.NoError(t, err, mode.String())
		assert.Equal(t, edit.Result{Skipped: 1}, res, mode.String())
		assert.Equal(t, before, s, mode.String())
	}
}

// TestSmear_TinyWeightKept: a positive weight below the keep threshold
// replaces the old one instead of emptying the slot.
func TestSmear_TinyWeightKept(t *testing.T) {
	s := newStorage(t, []influence.Weight{{Group: 0, Value: 0.9}, {Group: 1, Value: 0.1}})

	_, err := edit.Apply(s, []int32{0}, []float32{1}, 1, edit.Smear, 5e-5)
	require.NoError(t, err)
	ws := slots(t, s, 0)
	require.Len(t, ws, 2)
	assert.Equal(t, int32(1), ws[1].Group)
	assert.InDelta(t, 5e-5/0.90005, ws[1].Value, 1e-6)
	require.NoError(t, s.Check(0))
}
