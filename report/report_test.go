package report

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/plot"
	"github.com/itqwq/indikator/plot/indicator"
)

func dataframe(closes ...float64) *model.Dataframe {
	df := &model.Dataframe{}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		df.Append(start.Add(time.Duration(i)*time.Hour), model.Bar{High: c + 1, Low: c - 1, Close: c, Volume: 1})
	}
	return df
}

func TestValues(t *testing.T) {
	df := dataframe(1, 2, 3, 4, 5)
	sma := indicator.SMA(2, "red")
	plot.Export(df, sma)

	var buf bytes.Buffer
	Values(&buf, df, []plot.Indicator{sma}, 2)

	out := buf.String()
	assert.Contains(t, out, "SMA(2)")
	assert.Contains(t, out, "2024-01-01 04:00")
	assert.Contains(t, out, "4.5000")
	assert.NotContains(t, out, "2024-01-01 02:00")

	t.Run("all rows", func(t *testing.T) {
		var buf bytes.Buffer
		Values(&buf, df, []plot.Indicator{sma}, 0)
		out := buf.String()
		assert.Contains(t, out, "2024-01-01 00:00")
		assert.Contains(t, out, "1.5000")
		assert.Contains(t, out, "-")
	})

	t.Run("more rows than candles", func(t *testing.T) {
		var buf bytes.Buffer
		Values(&buf, df, []plot.Indicator{sma}, 50)
		assert.Contains(t, buf.String(), "2024-01-01 00:00")
	})
}

func TestSummarize(t *testing.T) {
	summary := Summarize("x", []float64{math.NaN(), 1, 2, 2, 5}, Options{Bins: 5, Samples: 50, Confidence: 0.95})
	assert.Equal(t, 4, summary.Count)
	assert.Equal(t, 1.0, summary.Min)
	assert.Equal(t, 5.0, summary.Max)
	assert.Equal(t, 2.0, summary.Median)
	assert.Equal(t, 2.0, summary.Mode)
	assert.LessOrEqual(t, summary.Mean.Lower, summary.Mean.Upper)
}

func TestDescribe(t *testing.T) {
	df := dataframe(1, 3, 2, 5, 4, 6, 5, 7)
	rsi := indicator.RSI(2, "red")
	plot.Export(df, rsi)

	var buf bytes.Buffer
	require.NoError(t, Describe(&buf, []plot.Indicator{rsi}, Options{Bins: 4, Samples: 20, Confidence: 0.9}))

	out := buf.String()
	assert.Contains(t, out, "RSI(2) overbought")
	assert.Contains(t, out, "-- RSI(2) --")
	assert.Contains(t, out, "90% CI")
}

func TestSine(t *testing.T) {
	var buf bytes.Buffer
	Sine(&buf, []float64{0, 1})
	assert.Contains(t, buf.String(), "1.0000")
}
