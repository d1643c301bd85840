package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStochasticK(t *testing.T) {
	high := []float64{10, 12, 14}
	low := []float64{8, 9, 10}
	closes := []float64{9, 11, 13}

	t.Run("window", func(t *testing.T) {
		out := StochasticK(high, low, closes, 2)
		require.Len(t, out, 3)
		assert.True(t, math.IsNaN(out[0]))
		assert.InDelta(t, 75.0, out[1], 1e-12)
		assert.InDelta(t, 80.0, out[2], 1e-12)
	})

	t.Run("flat window", func(t *testing.T) {
		out := StochasticK([]float64{5, 5}, []float64{5, 5}, []float64{5, 5}, 2)
		assert.Equal(t, 0.0, out[1])
	})

	t.Run("bounded", func(t *testing.T) {
		for _, v := range StochasticK(high, low, closes, 1)[1:] {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		out := StochasticK(high[:2], low, closes, 2)
		require.Len(t, out, 3)
		assert.InDelta(t, 75.0, out[1], 1e-12)
		assert.True(t, math.IsNaN(out[2]))
	})

	t.Run("short", func(t *testing.T) {
		out := StochasticK(high, low, closes, 4)
		for _, v := range out {
			assert.True(t, math.IsNaN(v))
		}
	})
}

func TestWilliamsR(t *testing.T) {
	high := []float64{10, 12, 14}
	low := []float64{8, 9, 10}
	closes := []float64{9, 11, 13}

	out := WilliamsR(high, low, closes, 2)
	require.Len(t, out, 3)
	assert.True(t, math.IsNaN(out[0]))
	assert.InDelta(t, -25.0, out[1], 1e-12)
	assert.InDelta(t, -20.0, out[2], 1e-12)

	t.Run("mirror of stochastic", func(t *testing.T) {
		k := StochasticK(high, low, closes, 2)
		for i := 1; i < len(out); i++ {
			assert.InDelta(t, k[i]-100, out[i], 1e-12)
		}
	})

	t.Run("flat window", func(t *testing.T) {
		flat := WilliamsR([]float64{5, 5}, []float64{5, 5}, []float64{5, 5}, 2)
		assert.Zero(t, flat[1])
	})
}

func TestRangeWithNaN(t *testing.T) {
	nan := math.NaN()
	ones := []float64{1, 1, 1, 1}
	zeros := []float64{0, 0, 0, 0}

	tt := []struct {
		name   string
		high   []float64
		low    []float64
		closes []float64
		valid  []bool
	}{
		{"high at start", []float64{nan, 2, 3, 4}, zeros, ones, []bool{false, false, true, true}},
		{"low in the middle", []float64{2, 2, 2, 2}, []float64{0, nan, 0, 0}, ones, []bool{false, false, false, true}},
		{"close at end", []float64{2, 2, 2, 2}, zeros, []float64{1, 1, 1, nan}, []bool{false, true, true, false}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			for _, out := range [][]float64{
				StochasticK(tc.high, tc.low, tc.closes, 2),
				WilliamsR(tc.high, tc.low, tc.closes, 2),
			} {
				require.Len(t, out, 4)
				for i, valid := range tc.valid {
					assert.Equal(t, valid, !math.IsNaN(out[i]), "index %d", i)
				}
			}
		})
	}

	t.Run("whole window", func(t *testing.T) {
		out := StochasticK([]float64{1, nan, 3}, []float64{0, 0, 0}, []float64{1, 1, 1}, 3)
		for _, v := range out {
			assert.True(t, math.IsNaN(v))
		}
	})
}
