package indicator

import (
	"math"

	"github.com/itqwq/indikator/model"
)

// EMA 指数移动平均线，返回序列最后一个位置的 EMA 值。
// 种子是前 period 个值的 SMA，之后从左到右按 EMA = 今天的值 x k + 昨天的EMA x (1-k) 递推到序列末尾，
// k = 2 / (period+1)。序列长度小于周期时返回 NaN
func EMA(input []float64, period int) float64 {
	if period <= 0 || len(input) < period {
		return math.NaN()
	}

	k := 2.0 / float64(period+1)
	ema := SMA(input[:period], period)
	for _, v := range input[period:] {
		ema = v*k + ema*(1-k)
	}
	return ema
}

// rsiState 保存 RSI 递推时的两个平滑平均值。
// 下一步的平均涨幅/跌幅只从这里取，不从上一个 RSI 百分比反推，避免长序列上误差越滚越大
type rsiState struct {
	period  float64
	avgGain float64
	avgLoss float64
}

// newRSIState 用前 period 次价格变化的平均涨幅和平均跌幅做种子
func newRSIState(deltas []float64) *rsiState {
	state := &rsiState{period: float64(len(deltas))}
	for _, d := range deltas {
		gain, loss := splitDelta(d)
		state.avgGain += gain
		state.avgLoss += loss
	}
	state.avgGain /= state.period
	state.avgLoss /= state.period
	return state
}

// update 威尔德平滑：avg = (上一个avg x (period-1) + 本次的值) / period
func (s *rsiState) update(delta float64) {
	gain, loss := splitDelta(delta)
	s.avgGain = (s.avgGain*(s.period-1) + gain) / s.period
	s.avgLoss = (s.avgLoss*(s.period-1) + loss) / s.period
}

// value 返回当前的 RSI，平均跌幅为0的时候 RSI 正好是100
func (s *rsiState) value() float64 {
	if s.avgLoss == 0 {
		return 100
	}
	rs := s.avgGain / s.avgLoss
	return 100 - 100/(1+rs)
}

// splitDelta 把价格变化拆成涨幅和跌幅，两者都是非负数；变化是 NaN 时两者都是 NaN
func splitDelta(delta float64) (gain, loss float64) {
	if math.IsNaN(delta) {
		return delta, delta
	}
	if delta > 0 {
		return delta, 0
	}
	return 0, -delta
}

// RSI 相对强弱指数，返回和输入等长的序列。
// 下标小于 period 的位置是 NaN；下标等于 period 的位置用前 period 次变化的平均涨跌做种子；
// 之后每个位置都用威尔德平滑递推。
// 平滑会带着之前所有的变化，所以输入里出现 NaN 以后，从它参与的第一次变化开始往后全是 NaN
func RSI(input []float64, period int) []float64 {
	out := model.NaNs(len(input))
	if period <= 0 || len(input) <= period {
		return out
	}

	deltas := make([]float64, period)
	for i := 1; i <= period; i++ {
		deltas[i-1] = input[i] - input[i-1]
	}
	state := newRSIState(deltas)
	out[period] = state.value()

	for i := period + 1; i < len(input); i++ {
		state.update(input[i] - input[i-1])
		out[i] = state.value()
	}
	return out
}

// TrueRange 真实波幅 TR = max(最高价-最低价, |最高价-昨收|, |最低价-昨收|)。
// 第一根K线没有昨收，只剩下 最高价-最低价 这一项
func TrueRange(bars []model.Bar, index int) float64 {
	if index < 0 || index >= len(bars) {
		return math.NaN()
	}

	bar := bars[index]
	tr := bar.High - bar.Low
	if index == 0 {
		return tr
	}

	prevClose := bars[index-1].Close
	return math.Max(tr, math.Max(math.Abs(bar.High-prevClose), math.Abs(bar.Low-prevClose)))
}

// ATR 平均真实波幅，index 位置往前 period 根K线（包含 index）的 TR 的算术平均。
// index < period-1 或者越界时返回 NaN
func ATR(bars []model.Bar, index, period int) float64 {
	if period <= 0 || index < period-1 || index >= len(bars) {
		return math.NaN()
	}

	sum := 0.0
	for i := index - period + 1; i <= index; i++ {
		sum += TrueRange(bars, i)
	}
	return sum / float64(period)
}

// ATRSeries 是 ATR 的整条序列版本，下标小于 period-1 的位置都是 NaN
func ATRSeries(bars []model.Bar, period int) []float64 {
	out := model.NaNs(len(bars))
	if period <= 0 || len(bars) < period {
		return out
	}

	tr := make([]float64, len(bars))
	for i := range bars {
		tr[i] = TrueRange(bars, i)
	}

	// 滑动窗口：加上新的TR，减掉掉出窗口的TR
	sum := 0.0
	for i := range tr {
		sum += tr[i]
		if i >= period {
			sum -= tr[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}
