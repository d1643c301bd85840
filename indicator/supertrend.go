package indicator

import (
	"math"

	"github.com/itqwq/indikator/model"
)

// SuperTrend 超级趋势指标，基于 ATRSeries（真实波幅的算术平均）。
// 基本上带 = (最高价+最低价)/2 + factor x ATR，基本下带 = (最高价+最低价)/2 - factor x ATR。
// 最终上带：基本上带低于上一根的最终上带，或者上一根收盘价突破了上一根的最终上带，才更新为基本上带，否则保持不变；
// 最终下带同理。ATR 还没有值的位置输出 NaN
func SuperTrend(bars []model.Bar, atrPeriod int, factor float64) []float64 {
	atr := ATRSeries(bars, atrPeriod)
	superTrend := model.NaNs(len(bars))

	start := model.Valid(atr)
	if start >= len(bars) {
		return superTrend
	}

	// 第一根有 ATR 的K线直接用基本带做最终带，趋势先当作向上（跟随下带）
	finalUpper := make([]float64, len(bars))
	finalLower := make([]float64, len(bars))
	mid := (bars[start].High + bars[start].Low) / 2
	finalUpper[start] = mid + factor*atr[start]
	finalLower[start] = mid - factor*atr[start]
	superTrend[start] = finalLower[start]

	for i := start + 1; i < len(bars); i++ {
		mid = (bars[i].High + bars[i].Low) / 2
		basicUpper := mid + factor*atr[i]
		basicLower := mid - factor*atr[i]
		prevClose := bars[i-1].Close

		if basicUpper < finalUpper[i-1] || prevClose > finalUpper[i-1] {
			finalUpper[i] = basicUpper
		} else {
			finalUpper[i] = finalUpper[i-1]
		}

		if basicLower > finalLower[i-1] || prevClose < finalLower[i-1] {
			finalLower[i] = basicLower
		} else {
			finalLower[i] = finalLower[i-1]
		}

		// 上一根跟随上带说明处于下跌趋势，收盘突破上带就翻转成上涨
		if superTrend[i-1] == finalUpper[i-1] {
			if bars[i].Close > finalUpper[i] {
				superTrend[i] = finalLower[i]
			} else {
				superTrend[i] = finalUpper[i]
			}
			continue
		}

		if bars[i].Close < finalLower[i] {
			superTrend[i] = finalUpper[i]
		} else {
			superTrend[i] = finalLower[i]
		}
	}
	return superTrend
}

// SuperTrendUp 判断超级趋势在 index 位置是否处于上涨（价格在线的上方）
func SuperTrendUp(bars []model.Bar, superTrend []float64, index int) bool {
	if index < 0 || index >= len(bars) || index >= len(superTrend) || math.IsNaN(superTrend[index]) {
		return false
	}
	return bars[index].Close >= superTrend[index]
}
