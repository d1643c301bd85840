// 定义model包
package model

import (
	"math" // NaN 判断

	"golang.org/x/exp/constraints" // 引入constraints包，提供泛型约束
)

// Series是一个时间序列数据的泛型切片，索引顺序就是时间顺序，下标0是最旧的数据
// T 可以是任何符合 constraints.Ordered 约束的类型（整数、浮点、字符串），指标计算里一般是 Series[float64]
// 缺失的数据用 NaN 表示，所有使用者都要把 NaN 当作“数据不足”，而不是参与运算的数字
type Series[T constraints.Ordered] []T

// Values返回序列中的所有值
func (s Series[T]) Values() []T {
	return s
}

// Len返回序列中值的数量
func (s Series[T]) Len() int {
	return len(s)
}

// Last返回序列中给定过去索引位置的值，Last(0)是最新的值，Last(1)是上一个
func (s Series[T]) Last(position int) T {
	return s[len(s)-1-position]
}

// LastValues返回序列中最后size个值，序列不够长时返回整个序列
func (s Series[T]) LastValues(size int) []T {
	if l := len(s); l > size {
		return s[l-size:]
	}
	return s
}

// Crossover判断序列是否在最后一根K线上向上穿过参考序列
func (s Series[T]) Crossover(ref Series[T]) bool {
	return s.Last(0) > ref.Last(0) && s.Last(1) <= ref.Last(1)
}

// Crossunder判断序列是否在最后一根K线上向下穿过参考序列
func (s Series[T]) Crossunder(ref Series[T]) bool {
	return s.Last(0) <= ref.Last(0) && s.Last(1) > ref.Last(1)
}

// Cross判断两条序列在最后一根K线上是否发生了交叉
func (s Series[T]) Cross(ref Series[T]) bool {
	return s.Crossover(ref) || s.Crossunder(ref)
}

// Valid 返回从第一个非NaN值开始的下标，全部都是NaN时返回len(s)
// 窗口类指标输出的前面会用NaN补齐，绘图的时候要从这个位置开始取值
func Valid(s Series[float64]) int {
	for i, v := range s {
		if !math.IsNaN(v) {
			return i
		}
	}
	return len(s)
}

// NaNs 创建一个长度为size、全部是NaN的序列，指标输出都从这里开始填充
func NaNs(size int) Series[float64] {
	out := make(Series[float64], size)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
