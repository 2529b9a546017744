package indicators

import (
	"context"
	"fmt"
	"math"

	"cryptoRSI/internal/domain"
	"cryptoRSI/internal/ports"
)

// RSIConfig holds configuration for the RSI indicator
type RSIConfig struct {
	IndicatorConfig
	Overbought float64
	Oversold   float64

	// StrictBounds fails the calculation when the window reaches past the
	// available prices instead of letting the missing values turn into NaN.
	StrictBounds bool
	// PriceMode selects how close prices are parsed in Calculate.
	PriceMode PriceMode
}

// RSI implements the Relative Strength Index indicator
type RSI struct {
	BaseIndicator
	config RSIConfig
}

// NewRSI creates a new RSI indicator instance
func NewRSI(config RSIConfig) *RSI {
	return &RSI{
		BaseIndicator: BaseIndicator{Config: config.IndicatorConfig},
		config:        config,
	}
}

// Name returns the name of the indicator
func (r *RSI) Name() string {
	return "RSI"
}

// RequiredDataPoints returns how many prices the window reads.
// A period of one or less reads nothing.
func (r *RSI) RequiredDataPoints() int {
	if r.Config.Period <= 1 {
		return 0
	}
	return r.Config.Period
}

// Calculate extracts close prices from the candles and computes the RSI over them.
func (r *RSI) Calculate(ctx context.Context, candles []domain.Candle) (float64, error) {
	prices, err := ExtractClosePrices(candles, r.config.PriceMode)
	if err != nil {
		return 0, err
	}
	return r.Compute(prices)
}

// Compute returns the RSI of prices, enforcing the bounds check when configured.
func (r *RSI) Compute(prices []float64) (float64, error) {
	if r.config.StrictBounds && len(prices) < r.RequiredDataPoints() {
		return 0, fmt.Errorf("RSI for period %d needs %d prices, got %d: %w",
			r.Config.Period, r.RequiredDataPoints(), len(prices), ports.ErrInsufficientData)
	}
	return ComputeRSI(prices, r.Config.Period), nil
}

// Zone classifies an RSI reading against the configured thresholds.
// NaN readings are neutral.
func (r *RSI) Zone(value float64) domain.Zone {
	switch {
	case r.IsOverbought(value):
		return domain.ZoneOverbought
	case r.IsOversold(value):
		return domain.ZoneOversold
	default:
		return domain.ZoneNeutral
	}
}

// IsOverbought checks if the RSI value indicates an overbought condition
func (r *RSI) IsOverbought(value float64) bool {
	return value >= r.config.Overbought
}

// IsOversold checks if the RSI value indicates an oversold condition
func (r *RSI) IsOversold(value float64) bool {
	return value <= r.config.Oversold
}

// ComputeRSI reduces the first periods-1 price changes to an RSI value.
//
// Both sums are divided by periods itself, not by the number of changes, and no
// smoothing is applied. A period of one or less, or a window without any price
// movement, yields NaN. Indices past the end of prices read as NaN.
func ComputeRSI(prices []float64, periods int) float64 {
	price := func(i int) float64 {
		if i < len(prices) {
			return prices[i]
		}
		return math.NaN()
	}

	var gains, losses float64
	for i := 1; i < periods; i++ {
		change := price(i) - price(i-1)
		if change > 0 {
			gains += change
		} else {
			losses += math.Abs(change)
		}
	}
	avgGain := gains / float64(periods)
	avgLoss := losses / float64(periods)

	return 100 - 100/(1+avgGain/avgLoss)
}
