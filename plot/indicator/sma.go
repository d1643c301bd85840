// 定义指标包，把 indicator 包算出来的序列包装成可以画在图表上的指标。
package indicator

import (
	"fmt"
	"time"

	ta "github.com/itqwq/indikator/indicator"
	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/params"
	"github.com/itqwq/indikator/plot"
)

// smaDefinition SMA 的参数：周期和颜色
var smaDefinition = params.MustDefinition("sma",
	params.Spec{Name: "period", Default: params.Scalar(20)},
	params.Spec{Name: "color", Default: palette},
)

func buildSMA(resolved params.Resolved, instance int) plot.Indicator {
	return SMA(resolved.Int("period", instance), resolved.String("color", instance))
}

// SMA 创建一个新的SMA指标实例，接收周期和颜色作为参数。
func SMA(period int, color string) plot.Indicator {
	return &sma{
		Period: period, // 例如20，就是最近20根K线收盘价的算术平均值
		Color:  color,
	}
}

// sma 结构体定义了SMA指标的内部数据结构。
type sma struct {
	Period int
	Color  string
	Values model.Series[float64] // 和数据帧等长，前 Period-1 个是 NaN
	Time   []time.Time
}

// Warmup 返回计算指标所需的最小数据点数，即指标的周期。
func (s sma) Warmup() int {
	return s.Period
}

// Name 返回指标的名称，如 "SMA(20)"。
func (s sma) Name() string {
	return fmt.Sprintf("SMA(%d)", s.Period)
}

// Overlay SMA 画在K线主图上，方便和价格直接比较。
func (s sma) Overlay() bool {
	return true
}

// Load 从数据帧的收盘价计算SMA。
func (s *sma) Load(dataframe *model.Dataframe) {
	s.Values = ta.SMASeries(dataframe.Close, s.Period)
	s.Time = dataframe.Time
}

// Metrics 返回一条线。
func (s sma) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Style:  plot.StyleLine,
			Color:  s.Color,
			Values: s.Values,
			Time:   s.Time,
		},
	}
}
