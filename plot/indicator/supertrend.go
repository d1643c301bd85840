package indicator // 定义了一个包名为indicator，用于存放技术分析指标的实现

import (
	"fmt"
	"time"

	ta "github.com/itqwq/indikator/indicator"
	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/params"
	"github.com/itqwq/indikator/plot"
)

var supertrendDefinition = params.MustDefinition("supertrend",
	params.Spec{Name: "period", Default: params.Scalar(10)},
	params.Spec{Name: "factor", Default: params.Scalar(3)},
	params.Spec{Name: "color", Default: palette},
	params.Spec{Name: "color_down", Default: params.Scalar("#ef5350")},
)

func buildSuperTrend(resolved params.Resolved, instance int) plot.Indicator {
	return SuperTrend(
		resolved.Int("period", instance),
		resolved.Float("factor", instance),
		resolved.String("color", instance),
		resolved.String("color_down", instance),
	)
}

// SuperTrend 超级趋势线，画在K线主图上。价格在线上方是上涨趋势，点用 color，
// 在线下方是下跌趋势，点用 colorDown
func SuperTrend(period int, factor float64, color, colorDown string) plot.Indicator {
	return &supertrend{
		Period:    period, // 计算 ATR 的周期
		Factor:    factor, // ATR 的倍数，越小越灵敏
		Color:     color,
		ColorDown: colorDown,
	}
}

type supertrend struct {
	Period     int
	Factor     float64
	Color      string
	ColorDown  string
	SuperTrend model.Series[float64]
	Colors     []string
	Time       []time.Time
}

func (s supertrend) Warmup() int {
	return s.Period
}

func (s supertrend) Name() string {
	return fmt.Sprintf("SuperTrend(%d,%.1f)", s.Period, s.Factor)
}

func (s supertrend) Overlay() bool {
	return true
}

// Load 计算超级趋势线，每个点按当时的趋势方向上色
func (s *supertrend) Load(df *model.Dataframe) {
	bars := df.Bars()
	s.SuperTrend = ta.SuperTrend(bars, s.Period, s.Factor)
	s.Colors = make([]string, len(s.SuperTrend))
	for i := range s.Colors {
		s.Colors[i] = s.ColorDown
		if ta.SuperTrendUp(bars, s.SuperTrend, i) {
			s.Colors[i] = s.Color
		}
	}
	s.Time = df.Time
}

func (s supertrend) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Style:  plot.StyleScatter,
			Color:  s.Color,
			Values: s.SuperTrend,
			Colors: s.Colors,
			Time:   s.Time,
		},
	}
}
