package ports

import (
	"context"

	"cryptoRSI/internal/domain"
)

// Indicator defines a technical indicator reduced from a candle sequence to a single value.
type Indicator interface {
	// Name returns the display name of the indicator.
	Name() string

	// RequiredDataPoints returns the minimum number of candles needed for the calculation.
	RequiredDataPoints() int

	// Calculate computes the indicator value for the given candles.
	Calculate(ctx context.Context, candles []domain.Candle) (float64, error)
}

// Oscillator is an Indicator whose readings fall into overbought and oversold zones.
type Oscillator interface {
	Indicator

	// Zone classifies a reading.
	Zone(value float64) domain.Zone
}
