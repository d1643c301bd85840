package indicator // 定义指标相关功能的包

import (
	"time" // 导入时间处理的包

	ta "github.com/itqwq/indikator/indicator"
	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/params"
	"github.com/itqwq/indikator/plot"
)

var obvDefinition = params.MustDefinition("obv",
	params.Spec{Name: "color", Default: palette},
)

func buildOBV(resolved params.Resolved, instance int) plot.Indicator {
	return OBV(resolved.String("color", instance))
}

// OBV 函数创建并返回一个 OBV 指标对象
// 趋势确认：价格和OBV同时上升，说明上升趋势有成交量支持；同时下降，说明下降趋势有成交量支持。
// 收盘价比昨天高就加上今天的成交量，比昨天低就减去，相等时不变
func OBV(color string) plot.Indicator {
	return &obv{
		Color: color, // 设置绘图时使用的颜色
	}
}

// obv 结构体定义了 OBV 指标所需的基本属性
type obv struct {
	Color  string                // 绘图时使用的颜色
	Values model.Series[float64] // 存储计算出的 OBV 值
	Time   []time.Time           // 对应每个 OBV 值的时间点
}

// Warmup OBV 是成交量的累计，有一根K线就有值
func (e obv) Warmup() int {
	return 1
}

// Name 方法返回该指标的名称，即 "OBV"
func (e obv) Name() string {
	return "OBV"
}

// Overlay 方法指示该指标是否应该覆盖在主图表上，对于 OBV，通常不覆盖在价格图表上，所以返回 false
func (e obv) Overlay() bool {
	return false
}

// Load 方法用收盘价和成交量计算 OBV
func (e *obv) Load(df *model.Dataframe) {
	e.Values = ta.OBV(df.Close, df.Volume)
	e.Time = df.Time
}

// Metrics 方法返回一个包含该指标绘图数据的切片
func (e obv) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Color:  e.Color,
			Style:  plot.StyleLine,
			Values: e.Values,
			Time:   e.Time,
		},
	}
}
