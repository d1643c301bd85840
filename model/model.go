// 定义模型包
package model

import (
	"time"

	"github.com/samber/lo"
)

// Bar 是一根K线，和Series的下标一一对应
// Open 和 Volume 在某些数据源里可能没有，这时就是0
type Bar struct {
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// TypicalPrice 典型价格 = (最高价 + 最低价 + 收盘价) / 3，VWAP 用它来加权
func (b Bar) TypicalPrice() float64 {
	return (b.High + b.Low + b.Close) / 3
}

// Dataframe 定义了数据帧的结构，用于存储和处理时间序列数据，每个时间点都有开高低收和成交量
type Dataframe struct {
	Pair string // 交易对

	Close  Series[float64] // 收盘价序列
	Open   Series[float64] // 开盘价序列
	High   Series[float64] // 最高价序列
	Low    Series[float64] // 最低价序列
	Volume Series[float64] // 成交量序列

	Time       []time.Time // 时间戳序列
	LastUpdate time.Time   // 最后更新时间

	// 自定义用户元数据，CSV里多出来的列会放在这里
	Metadata map[string]Series[float64]
}

// Len 返回数据帧中K线的数量
func (df Dataframe) Len() int {
	return len(df.Close)
}

// Bars 把并列的几条价格序列组合成 []Bar，供 ATR、VWAP 这类需要整根K线的指标使用
func (df Dataframe) Bars() []Bar {
	return lo.Times(len(df.Close), func(i int) Bar {
		bar := Bar{Close: df.Close[i]}
		if i < len(df.Open) {
			bar.Open = df.Open[i]
		}
		if i < len(df.High) {
			bar.High = df.High[i]
		}
		if i < len(df.Low) {
			bar.Low = df.Low[i]
		}
		if i < len(df.Volume) {
			bar.Volume = df.Volume[i]
		}
		return bar
	})
}

// Append 在数据帧末尾追加一根K线
func (df *Dataframe) Append(t time.Time, bar Bar) {
	df.Open = append(df.Open, bar.Open)
	df.High = append(df.High, bar.High)
	df.Low = append(df.Low, bar.Low)
	df.Close = append(df.Close, bar.Close)
	df.Volume = append(df.Volume, bar.Volume)
	df.Time = append(df.Time, t)
	df.LastUpdate = t
}

// Sample 方法用于从Dataframe中抽取最近的N个数据点作为一个新的Dataframe
func (df Dataframe) Sample(positions int) Dataframe {
	size := len(df.Time)
	start := size - positions
	if start <= 0 {
		return df
	}

	sample := Dataframe{
		Pair:       df.Pair,
		Close:      df.Close.LastValues(positions),
		Open:       df.Open.LastValues(positions),
		High:       df.High.LastValues(positions),
		Low:        df.Low.LastValues(positions),
		Volume:     df.Volume.LastValues(positions),
		Time:       df.Time[start:],
		LastUpdate: df.LastUpdate,
		Metadata:   make(map[string]Series[float64]),
	}

	for key := range df.Metadata {
		sample.Metadata[key] = df.Metadata[key].LastValues(positions)
	}

	return sample
}
