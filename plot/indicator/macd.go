package indicator

import (
	"fmt"
	"time"

	ta "github.com/itqwq/indikator/indicator"
	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/params"
	"github.com/itqwq/indikator/plot"
)

var macdDefinition = params.MustDefinition("macd",
	params.Spec{Name: "fast", Default: params.Scalar(12)},
	params.Spec{Name: "slow", Default: params.Scalar(26)},
	params.Spec{Name: "signal", Default: params.Scalar(9)},
	params.Spec{Name: "color_macd", Default: palette},
	params.Spec{Name: "color_signal", Default: params.Scalar("#ff9800")},
	params.Spec{Name: "color_up", Default: params.Scalar("#26a69a")},
	params.Spec{Name: "color_down", Default: params.Scalar("#ef5350")},
)

func buildMACD(resolved params.Resolved, instance int) plot.Indicator {
	return &macd{
		Fast:            resolved.Int("fast", instance),
		Slow:            resolved.Int("slow", instance),
		Signal:          resolved.Int("signal", instance),
		ColorMACD:       resolved.String("color_macd", instance),
		ColorMACDSignal: resolved.String("color_signal", instance),
		ColorUp:         resolved.String("color_up", instance),
		ColorDown:       resolved.String("color_down", instance),
	}
}

// MACD 创建一个移动平均收敛散度指标（MACD）的实例。
// MACD线 = 快速EMA - 慢速EMA，信号线是MACD线的EMA，直方图 = MACD线 - 信号线。
// 直方图的每根柱子比上一根高就用 colorUp，比上一根低就用 colorDown。
// MACD线穿过信号线的K线上另外画一个点，上穿用 colorUp，下穿用 colorDown
func MACD(fast, slow, signal int, colorMACD, colorMACDSignal, colorUp, colorDown string) plot.Indicator {
	return &macd{
		Fast:            fast,
		Slow:            slow,
		Signal:          signal,
		ColorMACD:       colorMACD,
		ColorMACDSignal: colorMACDSignal,
		ColorUp:         colorUp,
		ColorDown:       colorDown,
	}
}

// macd 结构体定义了移动平均收敛散度指标（MACD）的内部数据结构。
type macd struct {
	Fast             int
	Slow             int
	Signal           int
	ColorMACD        string
	ColorMACDSignal  string
	ColorUp          string
	ColorDown        string
	ValuesMACD       model.Series[float64]
	ValuesMACDSignal model.Series[float64]
	ValuesMACDHist   model.Series[float64]
	HistColors       []string
	ValuesCross      model.Series[float64]
	CrossColors      []string
	Time             []time.Time
}

// Warmup 慢速EMA需要 Slow 根K线，信号线再需要 Signal-1 根
func (e macd) Warmup() int {
	return e.Slow + e.Signal - 1
}

func (e macd) Name() string {
	return fmt.Sprintf("MACD(%d, %d, %d)", e.Fast, e.Slow, e.Signal)
}

func (e macd) Overlay() bool {
	return false
}

// Load 计算三条线，给直方图的每根柱子分好颜色，再标出MACD线和信号线的交叉点
func (e *macd) Load(df *model.Dataframe) {
	e.ValuesMACD, e.ValuesMACDSignal, e.ValuesMACDHist = ta.MACD(df.Close, e.Fast, e.Slow, e.Signal)
	e.HistColors = plot.ClassifyTrend(e.ValuesMACDHist, e.ColorUp, e.ColorDown)

	e.ValuesCross = model.NaNs(len(e.ValuesMACD))
	e.CrossColors = make([]string, len(e.ValuesMACD))
	for i, crossed := range ta.Crosses(e.ValuesMACD, e.ValuesMACDSignal) {
		if !crossed {
			continue
		}
		e.ValuesCross[i] = e.ValuesMACD[i]
		e.CrossColors[i] = e.ColorDown
		if e.ValuesMACD[:i+1].Crossover(e.ValuesMACDSignal[:i+1]) {
			e.CrossColors[i] = e.ColorUp
		}
	}
	e.Time = df.Time
}

func (e macd) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Color:  e.ColorMACD,
			Name:   "MACD",
			Style:  plot.StyleLine,
			Values: e.ValuesMACD,
			Time:   e.Time,
		},
		{
			Color:  e.ColorMACDSignal,
			Name:   "MACDSignal",
			Style:  plot.StyleLine,
			Values: e.ValuesMACDSignal,
			Time:   e.Time,
		},
		{
			Color:  e.ColorUp,
			Name:   "MACDHist",
			Style:  plot.StyleHistogram,
			Values: e.ValuesMACDHist,
			Colors: e.HistColors,
			Time:   e.Time,
		},
		{
			Color:  e.ColorUp,
			Name:   "Cross",
			Style:  plot.StyleScatter,
			Values: e.ValuesCross,
			Colors: e.CrossColors,
			Time:   e.Time,
		},
	}
}
