package indicator

// 引入必要的包
import (
	"fmt"
	"time"

	ta "github.com/itqwq/indikator/indicator"
	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/params"
	"github.com/itqwq/indikator/plot"
)

var stochDefinition = params.MustDefinition("stoch",
	params.Spec{Name: "period", Default: params.Scalar(14)},
	params.Spec{Name: "smooth", Default: params.Scalar(3)},
	params.Spec{Name: "color_k", Default: palette},
	params.Spec{Name: "color_d", Default: params.Scalar("#ff9800")},
)

func buildStoch(resolved params.Resolved, instance int) plot.Indicator {
	return Stoch(
		resolved.Int("period", instance),
		resolved.Int("smooth", instance),
		resolved.String("color_k", instance),
		resolved.String("color_d", instance),
	)
}

// Stoch 随机指标。%K 是收盘价在最近 period 根K线高低区间里的位置（0~100），
// %D 是 %K 的 smooth 周期 SMA。高于80通常是超买，低于20通常是超卖
func Stoch(period, smooth int, colorK, colorD string) plot.Indicator {
	return &stoch{
		Period: period,
		Smooth: smooth,
		ColorK: colorK,
		ColorD: colorD,
	}
}

// stoch结构体保存随机振荡器指标的设置和计算结果
type stoch struct {
	Period  int
	Smooth  int
	ColorK  string
	ColorD  string
	ValuesK model.Series[float64]
	ValuesD model.Series[float64]
	Time    []time.Time
}

// Warmup %D 需要先有 smooth 个 %K
func (e stoch) Warmup() int {
	return e.Period + e.Smooth - 1
}

func (e stoch) Name() string {
	return fmt.Sprintf("STOCH(%d, %d)", e.Period, e.Smooth)
}

func (e stoch) Overlay() bool {
	return false
}

// Load 计算 %K，再对 %K 的有效部分做 SMA 得到 %D
func (e *stoch) Load(dataframe *model.Dataframe) {
	e.ValuesK = ta.StochasticK(dataframe.High, dataframe.Low, dataframe.Close, e.Period)
	e.ValuesD = model.NaNs(len(e.ValuesK))
	if start := model.Valid(e.ValuesK); start < len(e.ValuesK) {
		copy(e.ValuesD[start:], ta.SMASeries(e.ValuesK[start:], e.Smooth))
	}
	e.Time = dataframe.Time
}

func (e stoch) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Color:  e.ColorK,
			Name:   "K",
			Style:  plot.StyleLine,
			Values: e.ValuesK,
			Time:   e.Time,
		},
		{
			Color:  e.ColorD,
			Name:   "D",
			Style:  plot.StyleLine,
			Values: e.ValuesD,
			Time:   e.Time,
		},
	}
}
