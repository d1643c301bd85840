package indicator

// 引入必要的包
import (
	"fmt"  // 用于格式化字符串
	"time" // 用于处理时间

	ta "github.com/itqwq/indikator/indicator"
	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/params"
	"github.com/itqwq/indikator/plot"
)

var bbDefinition = params.MustDefinition("bb",
	params.Spec{Name: "period", Default: params.Scalar(20)},
	params.Spec{Name: "deviation", Default: params.Scalar(2)},
	params.Spec{Name: "color", Default: palette},
	params.Spec{Name: "color_middle", Default: params.Scalar("#9e9e9e")},
)

func buildBollingerBands(resolved params.Resolved, instance int) plot.Indicator {
	return BollingerBands(
		resolved.Int("period", instance),
		resolved.Float("deviation", instance),
		resolved.String("color", instance),
		resolved.String("color_middle", instance),
	)
}

// BollingerBands 布林带，画在K线主图上。中带是收盘价的 SMA，上下带离中带 stdDeviation 倍标准差。
// 价格持续在中带之上可能是上升趋势，持续在中带之下可能是下降趋势；
// 突破上带说明买盘强，也可能是超买，突破下带正好相反。带子越宽说明波动越大
func BollingerBands(period int, stdDeviation float64, upDnBandColor, midBandColor string) plot.Indicator {
	return &bollingerBands{
		Period:        period,        // 计算中带的周期
		StdDeviation:  stdDeviation,  // 上下带离中带的标准差倍数
		UpDnBandColor: upDnBandColor, // 上下带的颜色
		MidBandColor:  midBandColor,  // 中带的颜色
	}
}

// bollingerBands结构体定义了布林带指标的配置和计算结果
type bollingerBands struct {
	Period        int                   // 计算中带的移动平均的周期
	StdDeviation  float64               // 上下带距离中带的标准偏差倍数
	UpDnBandColor string                // 上下带的颜色
	MidBandColor  string                // 中带的颜色
	UpperBand     model.Series[float64] // 上带值
	MiddleBand    model.Series[float64] // 中带值
	LowerBand     model.Series[float64] // 下带值
	Time          []time.Time           // 对应的时间序列
}

// Warmup方法返回指标计算前需要预热的数据长度，等同于布林带的周期
func (bb bollingerBands) Warmup() int {
	return bb.Period
}

// Name方法返回指标的名称和配置的参数
func (bb bollingerBands) Name() string {
	return fmt.Sprintf("BB(%d, %.2f)", bb.Period, bb.StdDeviation)
}

// Overlay方法指示布林带指标需要覆盖在价格图上
func (bb bollingerBands) Overlay() bool {
	return true
}

// Load方法计算布林带的三条线，预热期是 NaN
func (bb *bollingerBands) Load(dataframe *model.Dataframe) {
	bb.UpperBand, bb.MiddleBand, bb.LowerBand = ta.BollingerBands(dataframe.Close, bb.Period, bb.StdDeviation)
	bb.Time = dataframe.Time
}

// Metrics方法定义了如何在图表上展示布林带的计算结果
func (bb bollingerBands) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Name:   "Upper",
			Style:  plot.StyleLine,
			Color:  bb.UpDnBandColor,
			Values: bb.UpperBand,
			Time:   bb.Time,
		},
		{
			Name:   "Middle",
			Style:  plot.StyleLine,
			Color:  bb.MidBandColor,
			Values: bb.MiddleBand,
			Time:   bb.Time,
		},
		{
			Name:   "Lower",
			Style:  plot.StyleLine,
			Color:  bb.UpDnBandColor,
			Values: bb.LowerBand,
			Time:   bb.Time,
		},
	}
}
