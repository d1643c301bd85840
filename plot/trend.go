package plot

import "math"

// ClassifyTrend 给序列的每个点标上涨或跌的颜色，柱状图用它来区分颜色。
// 第一个点总是 up；之后当前值 >= 上一个值时是 up，否则是 down；
// 当前值或上一个值是 NaN 时也当作 up。输入不会被修改，每次调用都返回新的切片
func ClassifyTrend(series []float64, up, down string) []string {
	colors := make([]string, len(series))
	for i := range series {
		if i == 0 || math.IsNaN(series[i]) || math.IsNaN(series[i-1]) || series[i] >= series[i-1] {
			colors[i] = up
			continue
		}
		colors[i] = down
	}
	return colors
}
