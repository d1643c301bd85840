// Package indicator 提供了金融市场技术指标的计算方法。
// 所有函数都是纯函数：不修改输入，不保存状态，数据不够的时候返回 NaN 而不是报错。
package indicator

import (
	"math"
	"sort"

	"github.com/samber/lo"
)

// trailing 返回序列最后 period 个值组成的窗口，数据不够、周期非法或窗口里有 NaN 时 ok 为 false
func trailing(input []float64, period int) (window []float64, ok bool) {
	if period <= 0 || len(input) < period {
		return nil, false
	}
	window = input[len(input)-period:]
	if hasNaN(window) {
		return nil, false
	}
	return window, true
}

// hasNaN NaN 表示数据不足，只要出现一个，整段数据就不能参与计算
func hasNaN(values []float64) bool {
	return lo.SomeBy(values, math.IsNaN)
}

// whole 序列非空并且没有 NaN 时返回 true
func whole(input []float64) bool {
	return len(input) > 0 && !hasNaN(input)
}

// Highest 返回最近 period 个值里的最大值，序列长度小于周期或窗口里有 NaN 时返回 NaN
func Highest(input []float64, period int) float64 {
	window, ok := trailing(input, period)
	if !ok {
		return math.NaN()
	}
	return lo.Max(window)
}

// Lowest 返回最近 period 个值里的最小值，序列长度小于周期或窗口里有 NaN 时返回 NaN
func Lowest(input []float64, period int) float64 {
	window, ok := trailing(input, period)
	if !ok {
		return math.NaN()
	}
	return lo.Min(window)
}

// Max 返回整个序列的最大值，空序列或含有 NaN 时返回 NaN
func Max(input []float64) float64 {
	if !whole(input) {
		return math.NaN()
	}
	return lo.Max(input)
}

// Min 返回整个序列的最小值，空序列或含有 NaN 时返回 NaN
func Min(input []float64) float64 {
	if !whole(input) {
		return math.NaN()
	}
	return lo.Min(input)
}

// Median 计算整个序列的中位数，不是窗口。
// 先升序排序（在副本上排，不动输入），个数是偶数时取中间两个数的平均值，奇数时取正中间那个。
// 空序列或含有 NaN 时返回 NaN
func Median(input []float64) float64 {
	if !whole(input) {
		return math.NaN()
	}

	sorted := make([]float64, len(input))
	copy(sorted, input)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Mode 计算整个序列的众数。
// 从左到右扫描一遍，某个值的计数严格大于当前最高计数时才替换，
// 所以出现次数相同的时候，先达到最高次数的那个值胜出，而不是数值最小的那个。
// 空序列或含有 NaN 时返回 NaN
func Mode(input []float64) float64 {
	if !whole(input) {
		return math.NaN()
	}

	counts := make(map[float64]int, len(input))
	mode, best := math.NaN(), 0
	for _, v := range input {
		counts[v]++
		if counts[v] > best {
			mode, best = v, counts[v]
		}
	}
	return mode
}
