package indicator

import (
	"math"

	"github.com/itqwq/indikator/model"
)

// rollingRange 对每个 i >= period-1 取截止到 i 的最近 period 根K线的最高价和最低价，
// 交给 position 算出收盘价在区间里的位置。窗口里最高价等于最低价时结果是0。
// 窗口或收盘价里有 NaN 的位置保持 NaN；三条序列长度不一致时按最短的那条计算，输出和收盘价等长
func rollingRange(high, low, close []float64, period int, position func(close, highest, lowest float64) float64) []float64 {
	size := len(close)
	if len(high) < size {
		size = len(high)
	}
	if len(low) < size {
		size = len(low)
	}

	out := model.NaNs(len(close))
	if period <= 0 || size < period {
		return out
	}

	for i := period - 1; i < size; i++ {
		highest := Highest(high[:i+1], period)
		lowest := Lowest(low[:i+1], period)
		if math.IsNaN(highest) || math.IsNaN(lowest) || math.IsNaN(close[i]) {
			continue
		}
		if highest == lowest {
			out[i] = 0
			continue
		}
		out[i] = position(close[i], highest, lowest)
	}
	return out
}

// StochasticK 随机指标的 %K 线，返回和收盘价等长的序列。
// 对每个 i >= period-1：%K = (收盘价 - 窗口最低价) / (窗口最高价 - 窗口最低价) x 100，
// 窗口是截止到 i 的最近 period 根K线。窗口里最高价等于最低价时 %K 是0，不是 NaN。
// 三条序列长度不一致时按最短的那条计算
func StochasticK(high, low, close []float64, period int) []float64 {
	return rollingRange(high, low, close, period, func(close, highest, lowest float64) float64 {
		return (close - lowest) / (highest - lowest) * 100
	})
}

// WilliamsR 威廉指标 %R = (窗口最高价 - 收盘价) / (窗口最高价 - 窗口最低价) x -100，范围 -100~0。
// 接近0说明收盘在区间顶部（超买），接近 -100 说明在底部（超卖）。窗口规则和 StochasticK 一样
func WilliamsR(high, low, close []float64, period int) []float64 {
	return rollingRange(high, low, close, period, func(close, highest, lowest float64) float64 {
		return (highest - close) / (highest - lowest) * -100
	})
}
