package indicator

// 引入github.com/markcheno/go-talib包，这是TA-Lib（技术分析库）的Go语言版本。
// 这里的整条序列版本都交给 talib 计算，然后把预热期前面的位置换成 NaN，保证输出和输入等长
import (
	"math"

	"github.com/markcheno/go-talib"

	"github.com/itqwq/indikator/model"
)

// seriesOf 检查周期和长度，数据不够时直接返回全 NaN 序列，避免 talib 越界。
// talib 不认识 NaN，窗口里有 NaN 的位置算完以后再换回 NaN
func seriesOf(input []float64, period int, calc func() []float64) []float64 {
	if period <= 0 || len(input) < period {
		return model.NaNs(len(input))
	}
	return maskNaN(warmup(calc(), period-1), input, period)
}

// maskNaN 窗口 input[i-period+1 : i+1] 里有 NaN 时把 out[i] 换成 NaN，滑动计数
func maskNaN(out, input []float64, period int) []float64 {
	nans := 0
	for i, v := range input {
		if math.IsNaN(v) {
			nans++
		}
		if i >= period && math.IsNaN(input[i-period]) {
			nans--
		}
		if nans > 0 && i < len(out) {
			out[i] = math.NaN()
		}
	}
	return out
}

// warmup 把前 n 个位置换成 NaN。talib 在预热期里填的是0，和真正算出来的0分不开
func warmup(out []float64, n int) []float64 {
	for i := 0; i < n && i < len(out); i++ {
		out[i] = math.NaN()
	}
	return out
}

// SMASeries 整条序列的简单移动平均线，第 i 个值等于 SMA(input[:i+1], period)
func SMASeries(input []float64, period int) []float64 {
	return seriesOf(input, period, func() []float64 {
		return talib.Sma(input, period)
	})
}

// WMASeries 整条序列的加权移动平均线，权重从旧到新是 1..period
func WMASeries(input []float64, period int) []float64 {
	return seriesOf(input, period, func() []float64 {
		return talib.Wma(input, period)
	})
}

// EMASeries 整条序列的指数移动平均线。
// talib 的 EMA 也是用前 period 个值的 SMA 做种子，所以最后一个值和 EMA(input, period) 一致
func EMASeries(input []float64, period int) []float64 {
	return seriesOf(input, period, func() []float64 {
		return talib.Ema(input, period)
	})
}

// LinRegSeries 整条序列的线性回归值（不带偏移）
func LinRegSeries(input []float64, period int) []float64 {
	if period == 1 {
		out := make([]float64, len(input))
		copy(out, input)
		return out
	}
	return seriesOf(input, period, func() []float64 {
		return talib.LinearReg(input, period)
	})
}

// HighestSeries 每个位置最近 period 个值的最大值
func HighestSeries(input []float64, period int) []float64 {
	if period == 1 {
		out := make([]float64, len(input))
		copy(out, input)
		return out
	}
	return seriesOf(input, period, func() []float64 {
		return talib.Max(input, period)
	})
}

// LowestSeries 每个位置最近 period 个值的最小值
func LowestSeries(input []float64, period int) []float64 {
	if period == 1 {
		out := make([]float64, len(input))
		copy(out, input)
		return out
	}
	return seriesOf(input, period, func() []float64 {
		return talib.Min(input, period)
	})
}

// MACD 计算 MACD 线、信号线和柱状图。
// MACD = 快速EMA - 慢速EMA；信号线是 MACD 有效部分的 EMA；柱状图 = MACD - 信号线。
// 没有直接用 talib.Macd，因为它的信号线把预热期里的0也算进了种子
func MACD(input []float64, fast, slow, signal int) (macd, macdSignal, hist []float64) {
	if fast > slow {
		fast, slow = slow, fast
	}

	macd = model.NaNs(len(input))
	fastEMA := EMASeries(input, fast)
	slowEMA := EMASeries(input, slow)
	for i := range input {
		macd[i] = fastEMA[i] - slowEMA[i]
	}

	macdSignal = model.NaNs(len(input))
	hist = model.NaNs(len(input))
	start := model.Valid(macd)
	if start == len(macd) {
		return macd, macdSignal, hist
	}

	copy(macdSignal[start:], EMASeries(macd[start:], signal))
	for i := start; i < len(input); i++ {
		hist[i] = macd[i] - macdSignal[i]
	}
	return macd, macdSignal, hist
}

// CCI 顺势指标，基于典型价格 (最高价+最低价+收盘价)/3：
// CCI = (典型价格 - 典型价格的SMA) / (0.015 x 平均绝对偏差)。
// 三条序列长度不一致时返回全 NaN
func CCI(high, low, close []float64, period int) []float64 {
	if len(high) != len(close) || len(low) != len(close) {
		return model.NaNs(len(close))
	}
	typical := make([]float64, len(close))
	for i := range close {
		typical[i] = (high[i] + low[i] + close[i]) / 3
	}
	return seriesOf(typical, period, func() []float64 {
		return talib.Cci(high, low, close, period)
	})
}

// OBV 能量潮：收盘价上涨时累加当根成交量，下跌时减去，持平不变，第一根的值就是它的成交量。
// 价格和成交量长度不一致时返回全 NaN；出现 NaN 以后的值都是 NaN
func OBV(close, volume []float64) []float64 {
	if len(close) != len(volume) {
		return model.NaNs(len(close))
	}
	if len(close) == 0 {
		return []float64{}
	}

	out := talib.Obv(close, volume)
	for i := range out {
		if math.IsNaN(close[i]) || math.IsNaN(volume[i]) {
			copy(out[i:], model.NaNs(len(out)-i))
			break
		}
	}
	return out
}
