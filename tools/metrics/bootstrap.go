// Package metrics 对指标输出做一些汇总统计，describe 命令用它给出统计量的置信区间。
package metrics

import (
	"math"
	"sort"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// BootstrapInterval 自助法算出的统计量分布：均值、标准差和置信区间的上下界
type BootstrapInterval struct {
	Lower  float64
	Upper  float64
	StdDev float64
	Mean   float64
}

// Measure 对一组样本计算一个统计量
type Measure func([]float64) float64

// Mean 样本的算术平均，中位数这类统计量直接用 indicator 包里的函数
func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// Finite 去掉 NaN 和无穷大，指标的预热期全是 NaN，统计之前要先去掉
func Finite(values []float64) []float64 {
	return lo.Filter(values, func(v float64, _ int) bool {
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	})
}

// Bootstrap 用自助法估计 measure 的置信区间：有放回地抽 sampleSize 次、每次和原数据一样多的样本，
// 对每次抽样计算 measure，再取这些结果的均值、标准差和 confidence 对应的分位数。
// values 为空或 sampleSize 不是正数时返回全 NaN
func Bootstrap(values []float64, measure Measure, sampleSize int, confidence float64) BootstrapInterval {
	if len(values) == 0 || sampleSize <= 0 {
		nan := math.NaN()
		return BootstrapInterval{Lower: nan, Upper: nan, StdDev: nan, Mean: nan}
	}

	data := make([]float64, 0, sampleSize)
	for i := 0; i < sampleSize; i++ {
		samples := lo.Times(len(values), func(int) float64 {
			return lo.Sample(values)
		})
		data = append(data, measure(samples))
	}

	// 两边各留一半的尾部概率
	tail := 1 - confidence
	sort.Float64s(data)
	mean, stdDev := stat.MeanStdDev(data, nil)
	upper := stat.Quantile(1-tail/2, stat.LinInterp, data, nil)
	lower := stat.Quantile(tail/2, stat.LinInterp, data, nil)

	return BootstrapInterval{
		Lower:  lower,
		Upper:  upper,
		StdDev: stdDev,
		Mean:   mean,
	}
}
