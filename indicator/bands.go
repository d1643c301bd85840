package indicator

import (
	"gonum.org/v1/gonum/stat"

	"github.com/itqwq/indikator/model"
)

// BollingerBands 布林带：中轨是 period 周期的 SMA，上下轨是中轨加减 deviation 倍的总体标准差。
// 三条线都和输入等长，预热期和窗口里有 NaN 的位置是 NaN
func BollingerBands(input []float64, period int, deviation float64) (upper, middle, lower []float64) {
	upper = model.NaNs(len(input))
	middle = model.NaNs(len(input))
	lower = model.NaNs(len(input))

	for i := range input {
		window, ok := trailing(input[:i+1], period)
		if !ok {
			continue
		}
		mean, std := stat.PopMeanStdDev(window, nil)
		middle[i] = mean
		upper[i] = mean + deviation*std
		lower[i] = mean - deviation*std
	}
	return upper, middle, lower
}
