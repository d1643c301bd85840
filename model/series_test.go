package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeries_Last(t *testing.T) {
	s := Series[float64]{1, 2, 3}
	assert.Equal(t, 3.0, s.Last(0))
	assert.Equal(t, 2.0, s.Last(1))
	assert.Equal(t, []float64{2, 3}, s.LastValues(2))
	assert.Equal(t, []float64{1, 2, 3}, s.LastValues(10))
	assert.Equal(t, 3, s.Len())
}

func TestSeries_Cross(t *testing.T) {
	ref := Series[float64]{2, 2}

	up := Series[float64]{1, 3}
	assert.True(t, up.Crossover(ref))
	assert.False(t, up.Crossunder(ref))
	assert.True(t, up.Cross(ref))

	down := Series[float64]{3, 1}
	assert.False(t, down.Crossover(ref))
	assert.True(t, down.Crossunder(ref))

	flat := Series[float64]{3, 3}
	assert.False(t, flat.Cross(ref))
}

func TestValid(t *testing.T) {
	nan := math.NaN()
	assert.Equal(t, 2, Valid(Series[float64]{nan, nan, 1, nan}))
	assert.Equal(t, 0, Valid(Series[float64]{1}))
	assert.Equal(t, 3, Valid(NaNs(3)))
	assert.Equal(t, 0, Valid(nil))
}

func TestNaNs(t *testing.T) {
	out := NaNs(4)
	require.Len(t, out, 4)
	for _, v := range out {
		assert.True(t, math.IsNaN(v))
	}
	assert.Empty(t, NaNs(0))
}
