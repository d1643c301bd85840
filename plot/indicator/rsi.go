package indicator

// 引入必要的包
import (
	"fmt"  // 用于格式化字符串
	"time" // 用于处理时间相关的操作

	ta "github.com/itqwq/indikator/indicator"
	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/params"
	"github.com/itqwq/indikator/plot"
)

// rsiDefinition RSI 的参数：周期、颜色，以及超买超卖两条参考线
var rsiDefinition = params.MustDefinition("rsi",
	params.Spec{Name: "period", Default: params.Scalar(14)},
	params.Spec{Name: "color", Default: palette},
	params.Spec{Name: "overbought", Default: params.Scalar(70)},
	params.Spec{Name: "oversold", Default: params.Scalar(30)},
)

func buildRSI(resolved params.Resolved, instance int) plot.Indicator {
	return &rsi{
		Period:     resolved.Int("period", instance),
		Color:      resolved.String("color", instance),
		Overbought: resolved.Float("overbought", instance),
		Oversold:   resolved.Float("oversold", instance),
	}
}

// RSI 函数返回一个RSI指标的实例
// RSI值超过70通常被认为是过度买入区域，低于30则通常被视为过度卖出区域。
func RSI(period int, color string) plot.Indicator {
	return &rsi{
		Period:     period,
		Color:      color,
		Overbought: 70,
		Oversold:   30,
	}
}

// rsi 结构体定义了RSI指标需要的数据
type rsi struct {
	Period     int                   // RSI计算的周期
	Color      string                // 绘图时使用的颜色
	Overbought float64               // 超买线
	Oversold   float64               // 超卖线
	Values     model.Series[float64] // 存储计算后的RSI值，前 Period 个是 NaN
	Time       []time.Time           // 对应每个RSI值的时间序列
}

// Warmup 第一个RSI值需要 Period 次价格变化，也就是 Period+1 根K线
func (e rsi) Warmup() int {
	return e.Period + 1
}

// Name 方法返回该指标的名称，包括周期
func (e rsi) Name() string {
	return fmt.Sprintf("RSI(%d)", e.Period)
}

// Overlay 方法表示该指标不需要覆盖在主图上
func (e rsi) Overlay() bool {
	return false
}

// Load 方法加载数据帧并计算RSI值
func (e *rsi) Load(dataframe *model.Dataframe) {
	e.Values = ta.RSI(dataframe.Close, e.Period)
	e.Time = dataframe.Time
}

// Metrics 方法定义如何在图表上展示RSI指标，超买超卖线是两条水平线
func (e rsi) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Color:  e.Color,
			Style:  plot.StyleLine,
			Values: e.Values,
			Time:   e.Time,
		},
		level("overbought", e.Overbought, e.Time),
		level("oversold", e.Oversold, e.Time),
	}
}

// level 生成一条水平参考线
func level(name string, value float64, t []time.Time) plot.IndicatorMetric {
	values := make(model.Series[float64], len(t))
	for i := range values {
		values[i] = value
	}
	return plot.IndicatorMetric{
		Name:   name,
		Color:  "#9e9e9e",
		Style:  plot.StyleLine,
		Values: values,
		Time:   t,
	}
}
