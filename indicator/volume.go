package indicator

import (
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"

	"github.com/itqwq/indikator/model"
)

// VWAP 成交量加权平均价，对传入的全部K线累计计算：Σ(典型价格 x 成交量) / Σ成交量，
// 典型价格 = (最高价+最低价+收盘价)/3。
// 总成交量为0（包括没有K线）时返回0而不是 NaN，调用方把0当作“没有成交量”的有效结果
func VWAP(bars []model.Bar) float64 {
	var pv, volume float64
	for _, bar := range bars {
		pv += bar.TypicalPrice() * bar.Volume
		volume += bar.Volume
	}
	if volume == 0 {
		return 0
	}
	return pv / volume
}

// VWAPNumeric 是 VWAP 的数组版本，价格和成交量是两条等长的序列。
// 和 VWAP 不同，这里更严格：空输入、长度不一致、总成交量为0都返回 NaN
func VWAPNumeric(prices, volumes []float64) float64 {
	if len(prices) == 0 || len(prices) != len(volumes) {
		return math.NaN()
	}

	volume := lo.Sum(volumes)
	if volume == 0 {
		return math.NaN()
	}
	return floats.Dot(prices, volumes) / volume
}

// VWMA 成交量加权移动平均，最近 period 根K线的 Σ(收盘价 x 成交量) / Σ成交量。
// K线不够或窗口内成交量为0时返回 NaN
func VWMA(bars []model.Bar, period int) float64 {
	if period <= 0 || len(bars) < period {
		return math.NaN()
	}

	window := bars[len(bars)-period:]
	closes := lo.Map(window, func(bar model.Bar, _ int) float64 {
		return bar.Close
	})
	volumes := lo.Map(window, func(bar model.Bar, _ int) float64 {
		return bar.Volume
	})
	return VWMANumeric(closes, volumes, period)
}

// VWMANumeric 是 VWMA 的数组版本，价格和成交量长度不一致时返回 NaN
func VWMANumeric(prices, volumes []float64, period int) float64 {
	if len(prices) != len(volumes) {
		return math.NaN()
	}
	priceWindow, ok := trailing(prices, period)
	if !ok {
		return math.NaN()
	}
	volumeWindow := volumes[len(volumes)-period:]

	volume := lo.Sum(volumeWindow)
	if volume == 0 {
		return math.NaN()
	}
	return floats.Dot(priceWindow, volumeWindow) / volume
}

// VWMASeries 是 VWMA 的整条序列版本，每个位置都用截止到这个位置的窗口计算
func VWMASeries(prices, volumes []float64, period int) []float64 {
	out := model.NaNs(len(prices))
	if len(prices) != len(volumes) {
		return out
	}
	for i := period - 1; i < len(prices); i++ {
		if i < 0 {
			continue
		}
		out[i] = VWMANumeric(prices[:i+1], volumes[:i+1], period)
	}
	return out
}
