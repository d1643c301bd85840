package indicator

import (
	"math"

	"github.com/itqwq/indikator/model"
)

// DefaultSineLength 没有指定长度时正弦波的采样点数
const DefaultSineLength = 100

// BarsSince 从最新的一个值往回数，返回距离最近一次 true 过去了多少根K线。
// 最后一个值就是 true 时返回0；从来没有 true 时返回 len(conditions)
func BarsSince(conditions []bool) int {
	for i := len(conditions) - 1; i >= 0; i-- {
		if conditions[i] {
			return len(conditions) - 1 - i
		}
	}
	return len(conditions)
}

// Crosses 逐根K线判断 series 有没有穿过 ref（上穿或下穿都算），第一根K线和两边有 NaN 的位置是 false。
// 两条序列长度不一致时按短的那条计算，输出和 series 等长
func Crosses(series, ref []float64) []bool {
	out := make([]bool, len(series))
	size := len(series)
	if len(ref) < size {
		size = len(ref)
	}
	for i := 1; i < size; i++ {
		if hasNaN(series[i-1:i+1]) || hasNaN(ref[i-1:i+1]) {
			continue
		}
		out[i] = model.Series[float64](series[i-1 : i+1]).Cross(ref[i-1 : i+1])
	}
	return out
}

// SineWaveConst 用固定周期合成正弦波：第 n 个点 = amplitude x sin(2π x n / period)，n = 0..length-1。
// length <= 0 时使用 DefaultSineLength
func SineWaveConst(amplitude, period float64, length int) []float64 {
	if length <= 0 {
		length = DefaultSineLength
	}

	out := make([]float64, length)
	for n := range out {
		out[n] = amplitude * math.Sin(2*math.Pi*float64(n)/period)
	}
	return out
}

// SineWave 用每个点自己的周期合成正弦波，periods 里每一项产生一个点，
// 第 n 个点 = amplitude x sin(2π x n / periods[n])，所以频率可以逐点变化。
// length > 0 时最多输出 length 个点
func SineWave(amplitude float64, periods []float64, length int) []float64 {
	size := len(periods)
	if length > 0 && length < size {
		size = length
	}

	out := make([]float64, size)
	for n := range out {
		out[n] = amplitude * math.Sin(2*math.Pi*float64(n)/periods[n])
	}
	return out
}
