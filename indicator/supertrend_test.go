package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itqwq/indikator/model"
)

func rising(size int) []model.Bar {
	out := make([]model.Bar, size)
	for i := range out {
		base := float64(i)
		out[i] = model.Bar{Low: 10 + base, High: 12 + base, Close: 11.5 + base}
	}
	return out
}

func TestSuperTrend(t *testing.T) {
	t.Run("rising market follows the lower band", func(t *testing.T) {
		b := rising(6)
		out := SuperTrend(b, 2, 1)
		require.Len(t, out, 6)
		assert.True(t, math.IsNaN(out[0]))
		for i := 1; i < len(b); i++ {
			// 中线 11+i，ATR 一直是2
			assert.InDelta(t, 9+float64(i), out[i], 1e-12, "index %d", i)
			assert.True(t, SuperTrendUp(b, out, i))
		}
	})

	t.Run("flips down when close breaks the lower band", func(t *testing.T) {
		b := append(rising(4), model.Bar{Low: 2, High: 4, Close: 3})
		out := SuperTrend(b, 2, 1)
		assert.False(t, SuperTrendUp(b, out, 4))
		assert.Greater(t, out[4], b[4].Close)
	})

	t.Run("not enough bars", func(t *testing.T) {
		out := SuperTrend(rising(2), 3, 1)
		assert.Equal(t, 2, model.Valid(out))
		assert.False(t, SuperTrendUp(rising(2), out, 1))
	})
}

func TestSuperTrendUpOutOfRange(t *testing.T) {
	b := rising(3)
	out := SuperTrend(b, 2, 1)
	assert.False(t, SuperTrendUp(b, out, -1))
	assert.False(t, SuperTrendUp(b, out, 3))
}
