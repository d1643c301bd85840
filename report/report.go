// Package report 把指标的计算结果打印成表格，并对一条指标线做分布统计（中位数、众数、
// 自助法置信区间和直方图），命令行工具的输出都经过这里。
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	ta "github.com/itqwq/indikator/indicator"
	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/plot"
	"github.com/itqwq/indikator/tools/metrics"
)

// 时间列的格式
const timeLayout = "2006-01-02 15:04"

// Options 控制统计输出
type Options struct {
	Bins       int     // 直方图的箱数
	Samples    int     // 自助法的抽样次数
	Confidence float64 // 置信度，比如 0.95
}

// DefaultOptions describe 命令的默认值
var DefaultOptions = Options{Bins: 15, Samples: 1000, Confidence: 0.95}

// column 表格里的一列，指标名加线名
type column struct {
	header string
	values model.Series[float64]
}

// columns 收集已经 Load 过的指标的所有线
func columns(indicators []plot.Indicator) []column {
	var out []column
	for _, indicator := range indicators {
		for _, metric := range indicator.Metrics() {
			header := indicator.Name()
			if metric.Name != "" {
				header = fmt.Sprintf("%s %s", header, metric.Name)
			}
			out = append(out, column{header: header, values: metric.Values})
		}
	}
	return out
}

// formatValue NaN 显示成 "-"
func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// Values 打印最后 last 根K线上每个指标的值，last <= 0 时打印全部。
// 指标需要先用同一个数据帧 Load 过
func Values(w io.Writer, df *model.Dataframe, indicators []plot.Indicator, last int) {
	cols := columns(indicators)

	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{"Time", "Close"}, lo.Map(cols, func(c column, _ int) string {
		return c.header
	})...))
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	if last <= 0 {
		last = df.Len()
	}
	sample := df.Sample(last)
	rows := sample.Len()
	for i := 0; i < rows; i++ {
		row := []string{sample.Time[i].Format(timeLayout), formatValue(sample.Close[i])}
		for _, c := range cols {
			// 比数据帧短的线按最后一根K线对齐
			values := c.values.LastValues(rows)
			value := math.NaN()
			if j := i - (rows - len(values)); j >= 0 {
				value = values[j]
			}
			row = append(row, formatValue(value))
		}
		table.Append(row)
	}
	table.Render()
}

// Sine 打印一条正弦波，第一列是位置
func Sine(w io.Writer, wave []float64) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Value"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i, v := range wave {
		table.Append([]string{strconv.Itoa(i), formatValue(v)})
	}
	table.Render()
}

// Summary 一条线的分布统计
type Summary struct {
	Name   string
	Count  int
	Min    float64
	Max    float64
	Median float64
	Mode   float64
	Mean   metrics.BootstrapInterval
}

// Summarize 对一条线的有效值做统计，预热期的 NaN 不参与
func Summarize(name string, values []float64, options Options) Summary {
	finite := metrics.Finite(values)
	return Summary{
		Name:   name,
		Count:  len(finite),
		Min:    ta.Min(finite),
		Max:    ta.Max(finite),
		Median: ta.Median(finite),
		Mode:   ta.Mode(finite),
		Mean:   metrics.Bootstrap(finite, metrics.Mean, options.Samples, options.Confidence),
	}
}

// Describe 打印每个指标每条线的统计表格，后面跟着各自的直方图
func Describe(w io.Writer, indicators []plot.Indicator, options Options) error {
	cols := columns(indicators)
	summaries := lo.Map(cols, func(c column, _ int) Summary {
		return Summarize(c.header, c.values, options)
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Count", "Min", "Max", "Median", "Mode", "Mean",
		fmt.Sprintf("%.4g%% CI", options.Confidence*100)})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, s := range summaries {
		table.Append([]string{
			s.Name,
			strconv.Itoa(s.Count),
			formatValue(s.Min),
			formatValue(s.Max),
			formatValue(s.Median),
			formatValue(s.Mode),
			formatValue(s.Mean.Mean),
			fmt.Sprintf("%s ~ %s", formatValue(s.Mean.Lower), formatValue(s.Mean.Upper)),
		})
	}
	table.Render()

	for _, c := range cols {
		finite := metrics.Finite(c.values)
		if len(finite) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n-- %s --\n", c.header)
		hist := histogram.Hist(options.Bins, finite)
		if err := histogram.Fprint(w, hist, histogram.Linear(10)); err != nil {
			return err
		}
	}
	return nil
}
