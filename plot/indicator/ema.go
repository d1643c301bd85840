package indicator

import (
	"fmt"
	"time"

	ta "github.com/itqwq/indikator/indicator"
	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/params"
	"github.com/itqwq/indikator/plot"
)

var emaDefinition = params.MustDefinition("ema",
	params.Spec{Name: "period", Default: params.Scalar(9)},
	params.Spec{Name: "color", Default: palette},
)

func buildEMA(resolved params.Resolved, instance int) plot.Indicator {
	return EMA(resolved.Int("period", instance), resolved.String("color", instance))
}

// EMA 创建指数移动平均线，第一个值是前 period 根K线的 SMA，之后按 k = 2/(period+1) 递推
func EMA(period int, color string) plot.Indicator {
	return &ema{
		Period: period,
		Color:  color,
	}
}

type ema struct {
	Period int
	Color  string
	Values model.Series[float64]
	Time   []time.Time
}

func (e ema) Warmup() int {
	return e.Period
}

func (e ema) Name() string {
	return fmt.Sprintf("EMA(%d)", e.Period)
}

func (e ema) Overlay() bool {
	return true
}

func (e *ema) Load(dataframe *model.Dataframe) {
	e.Values = ta.EMASeries(dataframe.Close, e.Period)
	e.Time = dataframe.Time
}

func (e ema) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Style:  plot.StyleLine,
			Color:  e.Color,
			Values: e.Values,
			Time:   e.Time,
		},
	}
}
