package indicator

import (
	"fmt"
	"time"

	ta "github.com/itqwq/indikator/indicator"
	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/params"
	"github.com/itqwq/indikator/plot"
)

var wmaDefinition = params.MustDefinition("wma",
	params.Spec{Name: "period", Default: params.Scalar(20)},
	params.Spec{Name: "color", Default: palette},
)

func buildWMA(resolved params.Resolved, instance int) plot.Indicator {
	return WMA(resolved.Int("period", instance), resolved.String("color", instance))
}

// WMA 加权移动平均线，越新的K线权重越大，最旧的是1，最新的是 period
func WMA(period int, color string) plot.Indicator {
	return &wma{
		Period: period,
		Color:  color,
	}
}

type wma struct {
	Period int
	Color  string
	Values model.Series[float64]
	Time   []time.Time
}

func (w wma) Warmup() int {
	return w.Period
}

func (w wma) Name() string {
	return fmt.Sprintf("WMA(%d)", w.Period)
}

func (w wma) Overlay() bool {
	return true
}

func (w *wma) Load(dataframe *model.Dataframe) {
	w.Values = ta.WMASeries(dataframe.Close, w.Period)
	w.Time = dataframe.Time
}

func (w wma) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Style:  plot.StyleLine,
			Color:  w.Color,
			Values: w.Values,
			Time:   w.Time,
		},
	}
}
