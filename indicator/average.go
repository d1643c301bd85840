package indicator

import (
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SMA 简单移动平均线，最近 period 个值的算术平均。序列长度小于周期时返回 NaN
// 例如 SMA([1,2,3,4,5], 5) = 15/5 = 3
func SMA(input []float64, period int) float64 {
	window, ok := trailing(input, period)
	if !ok {
		return math.NaN()
	}
	return lo.Sum(window) / float64(period)
}

// WMA 加权移动平均线，权重是每个位置从旧到新的名次：最旧的权重是1，最新的是 period
// WMA = Σ(值 x 权重) / Σ权重，例如 WMA([1,2,3], 3) = (1x1 + 2x2 + 3x3) / 6
func WMA(input []float64, period int) float64 {
	window, ok := trailing(input, period)
	if !ok {
		return math.NaN()
	}
	return floats.Dot(window, ageWeights(period)) / float64(period*(period+1)/2)
}

// ageWeights 返回 1..period 的权重
func ageWeights(period int) []float64 {
	return lo.Times(period, func(i int) float64 {
		return float64(i + 1)
	})
}

// LinReg 线性回归，用最小二乘法拟合最近 period 个值，x 取 0..period-1（0 是窗口里最旧的值），
// 返回拟合直线在窗口最后一个位置上的值再加上 offset。
// offset 直接加在拟合值上，不是把取值的位置往前或往后挪
func LinReg(input []float64, period int, offset float64) float64 {
	window, ok := trailing(input, period)
	if !ok {
		return math.NaN()
	}
	// 只有一个点的时候斜率没有意义，拟合值就是这个点本身
	if period == 1 {
		return window[0] + offset
	}

	xs := lo.Times(period, func(i int) float64 {
		return float64(i)
	})
	// alpha 是截距，beta 是斜率
	alpha, beta := stat.LinearRegression(xs, window, nil, false)
	return alpha + beta*float64(period-1) + offset
}
