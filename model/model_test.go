package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBar_TypicalPrice(t *testing.T) {
	assert.Equal(t, 3.0, Bar{High: 4, Low: 2, Close: 3}.TypicalPrice())
}

func TestDataframe(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	df := &Dataframe{Pair: "BTCUSDT", Metadata: map[string]Series[float64]{}}
	for i := 0; i < 5; i++ {
		v := float64(i)
		df.Append(start.Add(time.Duration(i)*time.Hour), Bar{
			Open: v, High: v + 2, Low: v - 1, Close: v + 1, Volume: 10 * v,
		})
		df.Metadata["signal"] = append(df.Metadata["signal"], v)
	}

	t.Run("append", func(t *testing.T) {
		assert.Equal(t, 5, df.Len())
		assert.Equal(t, start.Add(4*time.Hour), df.LastUpdate)
	})

	t.Run("bars", func(t *testing.T) {
		bars := df.Bars()
		require.Len(t, bars, 5)
		assert.Equal(t, Bar{Open: 2, High: 4, Low: 1, Close: 3, Volume: 20}, bars[2])
	})

	t.Run("bars with missing series", func(t *testing.T) {
		partial := Dataframe{Close: Series[float64]{1, 2}, High: Series[float64]{3}}
		bars := partial.Bars()
		require.Len(t, bars, 2)
		assert.Equal(t, Bar{High: 3, Close: 1}, bars[0])
		assert.Equal(t, Bar{Close: 2}, bars[1])
	})

	t.Run("sample", func(t *testing.T) {
		sample := df.Sample(2)
		assert.Equal(t, 2, sample.Len())
		assert.Equal(t, []float64{4, 5}, sample.Close.Values())
		assert.Equal(t, []float64{3, 4}, sample.Metadata["signal"].Values())
		assert.Equal(t, df.Time[3:], sample.Time)

		assert.Equal(t, 5, df.Sample(10).Len())
	})
}
