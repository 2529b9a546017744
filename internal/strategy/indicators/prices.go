package indicators

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"cryptoRSI/internal/domain"
	"cryptoRSI/internal/ports"
)

// PriceMode controls how close-price strings are converted to numbers.
type PriceMode int

const (
	// PriceModeStrict rejects any close price that is not a valid decimal number.
	PriceModeStrict PriceMode = iota
	// PriceModeLenient coerces like a loose numeric cast: surrounding whitespace
	// is ignored, an empty string is 0 and anything unparsable becomes NaN.
	PriceModeLenient
)

// String returns the configuration name of the mode.
func (m PriceMode) String() string {
	switch m {
	case PriceModeStrict:
		return "strict"
	case PriceModeLenient:
		return "lenient"
	default:
		return "unknown"
	}
}

// ExtractClosePrices projects candles onto their closing prices, keeping order and length.
func ExtractClosePrices(candles []domain.Candle, mode PriceMode) ([]float64, error) {
	prices := make([]float64, len(candles))
	for i, c := range candles {
		if mode == PriceModeLenient {
			prices[i] = coercePrice(c.Close)
			continue
		}
		d, err := decimal.NewFromString(c.Close)
		if err != nil {
			return nil, fmt.Errorf("close price %q of candle %d: %w: %w", c.Close, i, ports.ErrInvalidPrice, err)
		}
		prices[i], _ = d.Float64()
	}
	return prices, nil
}

func coercePrice(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v // ErrRange still yields ±Inf or 0
}
