package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptoRSI/internal/ports"
)

func TestExtractClosePrices(t *testing.T) {
	t.Run("empty input yields empty output", func(t *testing.T) {
		for _, mode := range []PriceMode{PriceModeStrict, PriceModeLenient} {
			prices, err := ExtractClosePrices(nil, mode)
			require.NoError(t, err)
			assert.NotNil(t, prices)
			assert.Empty(t, prices)
		}
	})

	t.Run("preserves length and order", func(t *testing.T) {
		candles := candlesFromCloses("43000.01000000", "42999.99", "1e3", "0.00000001", "7")
		prices, err := ExtractClosePrices(candles, PriceModeStrict)
		require.NoError(t, err)
		require.Len(t, prices, len(candles))
		assert.Equal(t, []float64{43000.01, 42999.99, 1000, 0.00000001, 7}, prices)
	})

	t.Run("strict reports the offending candle", func(t *testing.T) {
		_, err := ExtractClosePrices(candlesFromCloses("1", "2", ""), PriceModeStrict)
		require.ErrorIs(t, err, ports.ErrInvalidPrice)
		assert.Contains(t, err.Error(), "candle 2")
	})

	t.Run("lenient coercion", func(t *testing.T) {
		prices, err := ExtractClosePrices(candlesFromCloses(" 12.5 ", "", "abc", "1e400"), PriceModeLenient)
		require.NoError(t, err)
		require.Len(t, prices, 4)
		assert.Equal(t, 12.5, prices[0])
		assert.Equal(t, 0.0, prices[1])
		assert.True(t, math.IsNaN(prices[2]))
		assert.True(t, math.IsInf(prices[3], 1))
	})
}

func TestPriceMode_String(t *testing.T) {
	assert.Equal(t, "strict", PriceModeStrict.String())
	assert.Equal(t, "lenient", PriceModeLenient.String())
	assert.Equal(t, "unknown", PriceMode(9).String())
}
