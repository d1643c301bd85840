package indicator // 定义了一个包名为indicator，用于存放技术分析指标的实现

import (
	"fmt"  // 导入fmt包，用于格式化字符串
	"time" // 导入time包，用于处理时间相关的功能

	ta "github.com/itqwq/indikator/indicator"
	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/params"
	"github.com/itqwq/indikator/plot"
)

var willrDefinition = params.MustDefinition("willr",
	params.Spec{Name: "period", Default: params.Scalar(14)},
	params.Spec{Name: "color", Default: palette},
	params.Spec{Name: "overbought", Default: params.Scalar(-20)},
	params.Spec{Name: "oversold", Default: params.Scalar(-80)},
)

func buildWillR(resolved params.Resolved, instance int) plot.Indicator {
	return &willR{
		Period:     resolved.Int("period", instance),
		Color:      resolved.String("color", instance),
		Overbought: resolved.Float("overbought", instance),
		Oversold:   resolved.Float("oversold", instance),
	}
}

// WillR函数创建并返回一个Williams %R指标对象
// 它衡量收盘价在过去 period 根K线最高价和最低价之间的位置，范围 -100~0。
// 高于-20时可能超买，价格可能回调；低于-80时可能超卖，价格可能反弹
func WillR(period int, color string) plot.Indicator {
	return &willR{
		Period:     period, // 指定计算Williams %R时使用的周期
		Color:      color,  // 指定绘制指标线条时使用的颜色
		Overbought: -20,
		Oversold:   -80,
	}
}

// willR结构体定义了Williams %R指标所需的基本属性
type willR struct {
	Period     int                   // 计算指标所需的周期长度
	Color      string                // 绘图时使用的颜色
	Overbought float64               // 超买线
	Oversold   float64               // 超卖线
	Values     model.Series[float64] // 存储计算出的Williams %R值
	Time       []time.Time           // 对应每个Williams %R值的时间点
}

// Warmup方法返回计算该指标所需的最小数据点数，等于指定的周期
func (w willR) Warmup() int {
	return w.Period
}

// Name方法返回该指标的名称，格式为"%R(周期长度)"
func (w willR) Name() string {
	return fmt.Sprintf("%%R(%d)", w.Period)
}

// Overlay方法指示该指标是否应该覆盖在主图表上，对于Williams %R，通常不覆盖在价格图表上，所以返回false
func (w willR) Overlay() bool {
	return false
}

// Load方法计算Williams %R，前 Period-1 个是 NaN
func (w *willR) Load(dataframe *model.Dataframe) {
	w.Values = ta.WilliamsR(dataframe.High, dataframe.Low, dataframe.Close, w.Period)
	w.Time = dataframe.Time
}

// Metrics方法返回指标线和超买超卖两条参考线
func (w willR) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Style:  plot.StyleLine,
			Color:  w.Color,
			Values: w.Values,
			Time:   w.Time,
		},
		level("overbought", w.Overbought, w.Time),
		level("oversold", w.Oversold, w.Time),
	}
}
