// Package plot 定义了画在图表上的指标的接口，并把指标的计算结果整理成渲染层可以直接使用的数据。
// 真正的绘制（canvas、提示框、鼠标交互）不在这里，由外部的渲染层负责。
package plot

import (
	"math"
	"time"

	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/tools/log"
)

// MetricStyle 表示一条指标线在图表上的显示风格
type MetricStyle = string

// 指标的显示风格
const (
	StyleLine      MetricStyle = "line"      // 折线图：显示数据随时间变化的趋势
	StyleBar       MetricStyle = "bar"       // 柱状图
	StyleScatter   MetricStyle = "scatter"   // 散点图
	StyleHistogram MetricStyle = "histogram" // 直方图：每根柱子可以有自己的颜色，见 ClassifyTrend
)

// Indicator 接口定义了所有图表指标必须实现的方法
type Indicator interface {
	Name() string                    // 指标的名称，比如 "RSI(14)"
	Overlay() bool                   // 是否叠加在K线主图上，false 表示单独画一个子图
	Warmup() int                     // 算出第一个有效值之前需要的K线数量
	Metrics() []IndicatorMetric      // 指标包含的各条线
	Load(dataframe *model.Dataframe) // 用数据帧计算各条线的值
}

// IndicatorMetric 代表一条指标线
type IndicatorMetric struct {
	Name   string                // 线的名称
	Color  string                // 线的颜色
	Style  MetricStyle           // 线的样式
	Values model.Series[float64] // 和数据帧等长的值，前面预热期是 NaN
	Time   []time.Time           // 和 Values 一一对应的时间
	Colors []string              // 每个点自己的颜色，直方图和散点图会用到，可以为空
}

// PlotMetric 是导出给渲染层的一条线，NaN 的点已经去掉了
type PlotMetric struct {
	Name   string      `json:"name"`
	Time   []time.Time `json:"time"`
	Values []float64   `json:"value"`
	Colors []string    `json:"colors,omitempty"`
	Color  string      `json:"color"`
	Style  string      `json:"style"`
}

// PlotIndicator 是导出给渲染层的一个指标
type PlotIndicator struct {
	Name    string       `json:"name"`
	Overlay bool         `json:"overlay"`
	Metrics []PlotMetric `json:"metrics"`
	Warmup  int          `json:"-"`
}

// Export 用数据帧计算每个指标，然后整理成渲染层需要的格式。
// JSON 不能表示 NaN，所以只保留有效的点，时间和颜色跟着一起过滤
func Export(df *model.Dataframe, indicators ...Indicator) []PlotIndicator {
	out := make([]PlotIndicator, 0, len(indicators))
	for _, indicator := range indicators {
		if df.Len() < indicator.Warmup() {
			log.WithFields(log.Fields{
				"indicator": indicator.Name(),
				"warmup":    indicator.Warmup(),
				"candles":   df.Len(),
			}).Debug("not enough candles, indicator will be empty")
		}
		indicator.Load(df)

		plotted := PlotIndicator{
			Name:    indicator.Name(),
			Overlay: indicator.Overlay(),
			Warmup:  indicator.Warmup(),
		}
		for _, metric := range indicator.Metrics() {
			plotted.Metrics = append(plotted.Metrics, exportMetric(metric))
		}
		out = append(out, plotted)
	}
	return out
}

// exportMetric 去掉 NaN 的点
func exportMetric(metric IndicatorMetric) PlotMetric {
	out := PlotMetric{
		Name:   metric.Name,
		Color:  metric.Color,
		Style:  metric.Style,
		Time:   make([]time.Time, 0, len(metric.Values)),
		Values: make([]float64, 0, len(metric.Values)),
	}
	for i, v := range metric.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) || i >= len(metric.Time) {
			continue
		}
		out.Time = append(out.Time, metric.Time[i])
		out.Values = append(out.Values, v)
		if i < len(metric.Colors) {
			out.Colors = append(out.Colors, metric.Colors[i])
		}
	}
	return out
}
