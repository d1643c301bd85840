package indicator

import (
	"fmt"
	"time"

	ta "github.com/itqwq/indikator/indicator"
	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/params"
	"github.com/itqwq/indikator/plot"
)

var atrDefinition = params.MustDefinition("atr",
	params.Spec{Name: "period", Default: params.Scalar(14)},
	params.Spec{Name: "color", Default: palette},
)

func buildATR(resolved params.Resolved, instance int) plot.Indicator {
	return ATR(resolved.Int("period", instance), resolved.String("color", instance))
}

// ATR 平均真实波幅，值越大说明市场波动越大
func ATR(period int, color string) plot.Indicator {
	return &atr{
		Period: period,
		Color:  color,
	}
}

type atr struct {
	Period int
	Color  string
	Values model.Series[float64]
	Time   []time.Time
}

func (a atr) Warmup() int {
	return a.Period
}

func (a atr) Name() string {
	return fmt.Sprintf("ATR(%d)", a.Period)
}

func (a atr) Overlay() bool {
	return false
}

func (a *atr) Load(dataframe *model.Dataframe) {
	a.Values = ta.ATRSeries(dataframe.Bars(), a.Period)
	a.Time = dataframe.Time
}

func (a atr) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Style:  plot.StyleLine,
			Color:  a.Color,
			Values: a.Values,
			Time:   a.Time,
		},
	}
}
