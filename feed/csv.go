// Package feed 从 CSV 文件读取K线，生成指标计算用的数据帧。
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/itqwq/indikator/model"
)

// ErrInsufficientData CSV 里没有任何K线
var ErrInsufficientData = errors.New("insufficient data")

// ErrMissingColumn 缺少必需的列
var ErrMissingColumn = errors.New("missing column")

// defaultHeaders 没有表头时各列的默认位置：时间(unix秒),开盘,收盘,最低,最高,成交量
var defaultHeaders = []string{"time", "open", "close", "low", "high", "volume"}

// requiredHeaders 必须存在的列，开盘价和成交量缺失时保持0
var requiredHeaders = []string{"time", "close", "low", "high"}

// parseHeaders 解析第一行，返回每个字段所在的列、额外的自定义列，以及第一行是不是表头。
// 第一列能转成数字说明第一行就是数据，这时按默认顺序取列，超出行宽的列视为缺失；
// 有表头时只按表头建立索引
func parseHeaders(headers []string) (index map[string]int, additional []string, hasHeader bool, err error) {
	index = make(map[string]int, len(defaultHeaders))
	if _, err := strconv.Atoi(headers[0]); err == nil {
		for i, h := range defaultHeaders {
			if i < len(headers) {
				index[h] = i
			}
		}
	} else {
		hasHeader = true
		for i, h := range headers {
			if !lo.Contains(defaultHeaders, h) {
				additional = append(additional, h)
			}
			index[h] = i
		}
	}

	for _, h := range requiredHeaders {
		if _, ok := index[h]; !ok {
			return nil, nil, hasHeader, fmt.Errorf("%w: %s", ErrMissingColumn, h)
		}
	}
	return index, additional, hasHeader, nil
}

// LoadCSV 打开文件并读取K线
func LoadCSV(path, pair string) (*model.Dataframe, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	df, err := Read(file, pair)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return df, nil
}

// Read 从 reader 读取 CSV 格式的K线，多出来的列放进数据帧的 Metadata
func Read(r io.Reader, pair string) (*model.Dataframe, error) {
	lines, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrInsufficientData
	}

	index, additional, hasHeader, err := parseHeaders(lines[0])
	if err != nil {
		return nil, err
	}
	if hasHeader {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return nil, ErrInsufficientData
	}

	df := &model.Dataframe{
		Pair:     pair,
		Metadata: make(map[string]model.Series[float64]),
	}
	for row, line := range lines {
		timestamp, err := strconv.ParseInt(line[index["time"]], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: time: %w", row+1, err)
		}

		var bar model.Bar
		fields := map[string]*float64{
			"open":   &bar.Open,
			"close":  &bar.Close,
			"low":    &bar.Low,
			"high":   &bar.High,
			"volume": &bar.Volume,
		}
		for name, target := range fields {
			column, ok := index[name]
			if !ok {
				continue
			}
			if *target, err = strconv.ParseFloat(line[column], 64); err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", row+1, name, err)
			}
		}
		df.Append(time.Unix(timestamp, 0).UTC(), bar)

		for _, header := range additional {
			value, err := strconv.ParseFloat(line[index[header]], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", row+1, header, err)
			}
			df.Metadata[header] = append(df.Metadata[header], value)
		}
	}
	return df, nil
}
