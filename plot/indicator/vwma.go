package indicator

import (
	"fmt"
	"time"

	ta "github.com/itqwq/indikator/indicator"
	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/params"
	"github.com/itqwq/indikator/plot"
)

var vwmaDefinition = params.MustDefinition("vwma",
	params.Spec{Name: "period", Default: params.Scalar(20)},
	params.Spec{Name: "color", Default: palette},
)

func buildVWMA(resolved params.Resolved, instance int) plot.Indicator {
	return VWMA(resolved.Int("period", instance), resolved.String("color", instance))
}

// VWMA 成交量加权移动平均，成交量大的K线对均线的影响更大。
// 窗口里成交量全是0的位置没有值
func VWMA(period int, color string) plot.Indicator {
	return &vwma{
		Period: period,
		Color:  color,
	}
}

type vwma struct {
	Period int
	Color  string
	Values model.Series[float64]
	Time   []time.Time
}

func (v vwma) Warmup() int {
	return v.Period
}

func (v vwma) Name() string {
	return fmt.Sprintf("VWMA(%d)", v.Period)
}

func (v vwma) Overlay() bool {
	return true
}

func (v *vwma) Load(dataframe *model.Dataframe) {
	v.Values = ta.VWMASeries(dataframe.Close, dataframe.Volume, v.Period)
	v.Time = dataframe.Time
}

func (v vwma) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Style:  plot.StyleLine,
			Color:  v.Color,
			Values: v.Values,
			Time:   v.Time,
		},
	}
}
