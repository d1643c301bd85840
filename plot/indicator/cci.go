package indicator // 定义一个包名为 indicator，用于存放交易指标相关的代码

import (
	"fmt"  // 导入 fmt 包，用于格式化输出
	"time" // 导入 time 包，用于处理时间相关的操作

	ta "github.com/itqwq/indikator/indicator"
	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/params"
	"github.com/itqwq/indikator/plot"
)

var cciDefinition = params.MustDefinition("cci",
	params.Spec{Name: "period", Default: params.Scalar(20)},
	params.Spec{Name: "color", Default: palette},
)

func buildCCI(resolved params.Resolved, instance int) plot.Indicator {
	return CCI(resolved.Int("period", instance), resolved.String("color", instance))
}

// CCI 函数接受一个周期长度和颜色，返回一个 plot.Indicator 类型的 CCI 指标
// 超买与超卖：当CCI大于+100时，市场被认为是超买的，这可能是卖出的信号。当CCI小于-100时，市场被认为是超卖的，这可能是买入的信号。
func CCI(period int, color string) plot.Indicator {
	return &cci{
		Period: period,
		Color:  color,
	}
}

// cci 结构体定义了 CCI 指标的属性
type cci struct {
	Period int                   // CCI 指标的周期长度
	Color  string                // 绘图时使用的颜色
	Values model.Series[float64] // 存储 CCI 指标的计算结果，前 Period-1 个是 NaN
	Time   []time.Time           // 对应每个 CCI 值的时间点
}

// Warmup 方法返回计算 CCI 指标所需的预热期长度
func (c cci) Warmup() int {
	return c.Period
}

// Name 方法返回指标的名称，包含其周期长度
func (c cci) Name() string {
	return fmt.Sprintf("CCI(%d)", c.Period)
}

// Overlay 方法指示该指标是否需要叠加在主图上
func (c cci) Overlay() bool {
	return false
}

// Load 方法用最高价、最低价和收盘价计算 CCI
func (c *cci) Load(dataframe *model.Dataframe) {
	c.Values = ta.CCI(dataframe.High, dataframe.Low, dataframe.Close, c.Period)
	c.Time = dataframe.Time
}

// Metrics 方法定义了如何在图表上绘制 CCI 指标，±100 是两条参考线
func (c cci) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Style:  plot.StyleLine,
			Color:  c.Color,
			Values: c.Values,
			Time:   c.Time,
		},
		level("overbought", 100, c.Time),
		level("oversold", -100, c.Time),
	}
}
