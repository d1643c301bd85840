package indicator

import (
	"math"
	"testing"

	"github.com/markcheno/go-talib"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itqwq/indikator/model"
)

func TestSMASeries(t *testing.T) {
	out := SMASeries([]float64{1, 2, 3, 4}, 2)
	require.Len(t, out, 4)
	assert.True(t, math.IsNaN(out[0]))
	assert.InDeltaSlice(t, []float64{1.5, 2.5, 3.5}, out[1:], 1e-12)

	t.Run("short", func(t *testing.T) {
		out := SMASeries([]float64{1, 2}, 3)
		require.Len(t, out, 2)
		assert.Equal(t, 2, model.Valid(out))
	})

	t.Run("invalid period", func(t *testing.T) {
		assert.Equal(t, 2, model.Valid(SMASeries([]float64{1, 2}, 0)))
	})
}

// 整条序列的版本和单点的版本在每个位置上都要一致
func TestSeriesMatchScalar(t *testing.T) {
	tt := []struct {
		name   string
		period int
		series func([]float64, int) []float64
		scalar func([]float64, int) float64
	}{
		{"sma", 5, SMASeries, SMA},
		{"wma", 5, WMASeries, WMA},
		{"ema", 5, EMASeries, EMA},
		{"highest", 4, HighestSeries, Highest},
		{"lowest", 4, LowestSeries, Lowest},
		{"linreg", 6, LinRegSeries, func(input []float64, period int) float64 {
			return LinReg(input, period, 0)
		}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			out := tc.series(prices, tc.period)
			require.Len(t, out, len(prices))
			assert.Equal(t, tc.period-1, model.Valid(out))
			for i := tc.period - 1; i < len(prices); i++ {
				assert.InDelta(t, tc.scalar(prices[:i+1], tc.period), out[i], 1e-6, "index %d", i)
			}
		})
	}
}

func TestSeriesPeriodOne(t *testing.T) {
	input := []float64{3, 1, 2}
	assert.Equal(t, input, HighestSeries(input, 1))
	assert.Equal(t, input, LowestSeries(input, 1))
	assert.Equal(t, input, LinRegSeries(input, 1))
}

func TestMACD(t *testing.T) {
	macd, signal, hist := MACD(prices, 5, 10, 4)
	require.Len(t, macd, len(prices))
	require.Len(t, signal, len(prices))
	require.Len(t, hist, len(prices))

	assert.Equal(t, 9, model.Valid(macd))
	assert.Equal(t, 12, model.Valid(signal))
	assert.Equal(t, 12, model.Valid(hist))

	for i := 9; i < len(prices); i++ {
		expected := EMA(prices[:i+1], 5) - EMA(prices[:i+1], 10)
		assert.InDelta(t, expected, macd[i], 1e-9, "index %d", i)
	}
	// 信号线是 MACD 有效部分的 EMA
	assert.InDelta(t, EMA(macd[9:], 4), signal[len(prices)-1], 1e-9)
	for i := 12; i < len(prices); i++ {
		assert.InDelta(t, macd[i]-signal[i], hist[i], 1e-12)
	}

	t.Run("swapped periods", func(t *testing.T) {
		swapped, _, _ := MACD(prices, 10, 5, 4)
		assert.InDeltaSlice(t, macd[9:], swapped[9:], 1e-12)
	})

	t.Run("short", func(t *testing.T) {
		macd, signal, _ := MACD(prices[:5], 5, 10, 4)
		assert.Equal(t, 5, model.Valid(macd))
		assert.Equal(t, 5, model.Valid(signal))
	})
}

func TestBollingerBands(t *testing.T) {
	upper, middle, lower := BollingerBands([]float64{1, 2, 3, 4}, 2, 2)
	require.Len(t, upper, 4)
	assert.True(t, math.IsNaN(middle[0]))
	assert.InDeltaSlice(t, []float64{1.5, 2.5, 3.5}, middle[1:], 1e-12)
	assert.InDeltaSlice(t, []float64{2.5, 3.5, 4.5}, upper[1:], 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 1.5, 2.5}, lower[1:], 1e-12)

	t.Run("same as talib", func(t *testing.T) {
		upper, middle, lower := BollingerBands(prices, 20, 2)
		expectedUpper, expectedMiddle, expectedLower := talib.BBands(prices, 20, 2, 2, talib.SMA)
		assert.Equal(t, 19, model.Valid(middle))
		for i := 19; i < len(prices); i++ {
			assert.InDelta(t, expectedUpper[i], upper[i], 1e-6, "index %d", i)
			assert.InDelta(t, expectedMiddle[i], middle[i], 1e-6, "index %d", i)
			assert.InDelta(t, expectedLower[i], lower[i], 1e-6, "index %d", i)
		}
	})

	t.Run("nan in window", func(t *testing.T) {
		upper, _, _ := BollingerBands([]float64{1, math.NaN(), 3, 4}, 2, 2)
		assert.True(t, math.IsNaN(upper[1]))
		assert.True(t, math.IsNaN(upper[2]))
		assert.False(t, math.IsNaN(upper[3]))
	})
}

func TestCCI(t *testing.T) {
	rising := []float64{1, 2, 3, 4}
	out := CCI(rising, rising, rising, 3)
	require.Len(t, out, 4)
	assert.Equal(t, 2, model.Valid(out))
	assert.InDelta(t, 100.0, out[2], 1e-9)
	assert.InDelta(t, 100.0, out[3], 1e-9)

	t.Run("flat", func(t *testing.T) {
		flat := []float64{5, 5, 5}
		assert.Zero(t, CCI(flat, flat, flat, 3)[2])
	})

	t.Run("length mismatch", func(t *testing.T) {
		assert.Equal(t, 4, model.Valid(CCI(rising[:3], rising, rising, 2)))
	})

	t.Run("nan in window", func(t *testing.T) {
		input := []float64{1, 2, math.NaN(), 4, 5, 6}
		out := CCI(input, input, input, 2)
		assert.True(t, math.IsNaN(out[2]))
		assert.True(t, math.IsNaN(out[3]))
		assert.False(t, math.IsNaN(out[4]))
	})
}

func TestOBV(t *testing.T) {
	closes := []float64{10, 11, 10, 10, 12}
	volume := []float64{100, 200, 300, 400, 500}
	assert.Equal(t, []float64{100, 300, 0, 0, 500}, OBV(closes, volume))

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, OBV(nil, nil))
	})

	t.Run("length mismatch", func(t *testing.T) {
		assert.Equal(t, 5, model.Valid(OBV(closes, volume[:4])))
	})

	t.Run("nan", func(t *testing.T) {
		out := OBV(closes, []float64{100, 200, math.NaN(), 400, 500})
		assert.Equal(t, []float64{100, 300}, out[:2])
		assert.Equal(t, 5, len(out))
		assert.Equal(t, 2, len(lo.Filter(out, func(v float64, _ int) bool { return !math.IsNaN(v) })))
	})
}
