package indicator

import (
	"math"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itqwq/indikator/model"
)

func TestInsufficientHistory(t *testing.T) {
	short := []float64{1, 2, 3}
	volumes := []float64{1, 1, 1}
	for period := 4; period < 8; period++ {
		assert.True(t, math.IsNaN(SMA(short, period)), "sma %d", period)
		assert.True(t, math.IsNaN(WMA(short, period)), "wma %d", period)
		assert.True(t, math.IsNaN(EMA(short, period)), "ema %d", period)
		assert.True(t, math.IsNaN(VWMANumeric(short, volumes, period)), "vwma %d", period)
		assert.True(t, math.IsNaN(LinReg(short, period, 0)), "linreg %d", period)
		assert.True(t, math.IsNaN(Highest(short, period)), "highest %d", period)
	}
}

func TestRSIIncreasing(t *testing.T) {
	input := lo.Times(20, func(i int) float64 {
		return float64(i + 1)
	})
	out := RSI(input, 14)
	require.Len(t, out, 20)
	assert.Equal(t, 14, model.Valid(out))
	for _, v := range out[14:] {
		assert.Equal(t, 100.0, v)
	}
}

func TestScanOrderProperties(t *testing.T) {
	assert.Equal(t, 2.0, Median([]float64{3, 1, 2}))
	assert.Equal(t, 2.5, Median([]float64{1, 2, 3, 4}))
	assert.Equal(t, 1.0, Mode([]float64{1, 1, 2, 2, 1}))
	assert.Equal(t, 1, BarsSince([]bool{false, false, true, false}))
	assert.Equal(t, 2, BarsSince([]bool{false, false}))
}

func TestZeroVolumeContracts(t *testing.T) {
	bars := []model.Bar{{High: 2, Low: 1, Close: 1.5}, {High: 3, Low: 2, Close: 2.5}}
	assert.Equal(t, 0.0, VWAP(bars))
	assert.True(t, math.IsNaN(VWAPNumeric([]float64{1.5, 2.5}, []float64{0, 0})))
}

// 同样的输入算两次，结果按位相同，输入也不会被改动
func TestIdempotence(t *testing.T) {
	input := append([]float64(nil), prices...)
	b := lo.Map(prices, func(p float64, _ int) model.Bar {
		return model.Bar{High: p + 0.5, Low: p - 0.5, Close: p, Volume: 10}
	})

	calls := map[string]func() []float64{
		"rsi":        func() []float64 { return RSI(input, 14) },
		"ema":        func() []float64 { return EMASeries(input, 10) },
		"stoch":      func() []float64 { return StochasticK(input, input, input, 5) },
		"atr":        func() []float64 { return ATRSeries(b, 5) },
		"supertrend": func() []float64 { return SuperTrend(b, 5, 2) },
		"scalars": func() []float64 {
			return []float64{SMA(input, 5), WMA(input, 5), EMA(input, 5), LinReg(input, 5, 0),
				Median(input), Mode(input), VWMA(b, 5), VWAP(b)}
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			first, second := call(), call()
			require.Len(t, second, len(first))
			for i := range first {
				assert.Equal(t, math.Float64bits(first[i]), math.Float64bits(second[i]), "index %d", i)
			}
			assert.Equal(t, prices, input)
		})
	}
}
