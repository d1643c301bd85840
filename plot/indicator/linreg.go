package indicator

import (
	"fmt"
	"time"

	ta "github.com/itqwq/indikator/indicator"
	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/params"
	"github.com/itqwq/indikator/plot"
)

var linregDefinition = params.MustDefinition("linreg",
	params.Spec{Name: "period", Default: params.Scalar(20)},
	params.Spec{Name: "offset", Default: params.Scalar(0)},
	params.Spec{Name: "color", Default: palette},
)

func buildLinReg(resolved params.Resolved, instance int) plot.Indicator {
	return LinReg(
		resolved.Int("period", instance),
		resolved.Float("offset", instance),
		resolved.String("color", instance),
	)
}

// LinReg 线性回归线：每个位置用最近 period 个收盘价做最小二乘拟合，取窗口最后一个位置的拟合值，再加上 offset
func LinReg(period int, offset float64, color string) plot.Indicator {
	return &linreg{
		Period: period,
		Offset: offset,
		Color:  color,
	}
}

type linreg struct {
	Period int
	Offset float64
	Color  string
	Values model.Series[float64]
	Time   []time.Time
}

func (l linreg) Warmup() int {
	return l.Period
}

func (l linreg) Name() string {
	if l.Offset != 0 {
		return fmt.Sprintf("LINREG(%d, %g)", l.Period, l.Offset)
	}
	return fmt.Sprintf("LINREG(%d)", l.Period)
}

func (l linreg) Overlay() bool {
	return true
}

func (l *linreg) Load(dataframe *model.Dataframe) {
	l.Values = ta.LinRegSeries(dataframe.Close, l.Period)
	// NaN 加上偏移还是 NaN，预热期不受影响
	for i := range l.Values {
		l.Values[i] += l.Offset
	}
	l.Time = dataframe.Time
}

func (l linreg) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Style:  plot.StyleLine,
			Color:  l.Color,
			Values: l.Values,
			Time:   l.Time,
		},
	}
}
