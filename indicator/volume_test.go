package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itqwq/indikator/model"
)

func volumeBars() []model.Bar {
	return []model.Bar{
		{High: 3, Low: 1, Close: 2, Volume: 10},
		{High: 6, Low: 4, Close: 5, Volume: 30},
	}
}

func TestVWAP(t *testing.T) {
	// 典型价格 2 和 5：(2x10 + 5x30) / 40
	assert.InDelta(t, 4.25, VWAP(volumeBars()), 1e-12)

	t.Run("zero volume", func(t *testing.T) {
		assert.Equal(t, 0.0, VWAP([]model.Bar{{High: 3, Low: 1, Close: 2}}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0.0, VWAP(nil))
	})
}

func TestVWAPNumeric(t *testing.T) {
	assert.InDelta(t, 1.75, VWAPNumeric([]float64{1, 2}, []float64{1, 3}), 1e-12)
	assert.True(t, math.IsNaN(VWAPNumeric([]float64{1, 2}, []float64{1})))
	assert.True(t, math.IsNaN(VWAPNumeric([]float64{1, 2}, []float64{0, 0})))
	assert.True(t, math.IsNaN(VWAPNumeric(nil, nil)))
}

func TestVWMA(t *testing.T) {
	b := volumeBars()
	assert.Equal(t, 5.0, VWMA(b, 1))
	assert.InDelta(t, 4.25, VWMA(b, 2), 1e-12)
	assert.True(t, math.IsNaN(VWMA(b, 3)))
	assert.True(t, math.IsNaN(VWMA([]model.Bar{{Close: 1}}, 1)))
}

func TestVWMANumeric(t *testing.T) {
	assert.InDelta(t, 8.0/3.0, VWMANumeric([]float64{1, 2, 3}, []float64{1, 1, 2}, 2), 1e-12)
	assert.True(t, math.IsNaN(VWMANumeric([]float64{1, 2}, []float64{1}, 1)))

	series := VWMASeries([]float64{1, 2, 3}, []float64{1, 1, 2}, 2)
	require.Len(t, series, 3)
	assert.True(t, math.IsNaN(series[0]))
	assert.InDelta(t, 1.5, series[1], 1e-12)
	assert.InDelta(t, 8.0/3.0, series[2], 1e-12)
}
