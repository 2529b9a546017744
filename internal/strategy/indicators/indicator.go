package indicators

import "cryptoRSI/internal/ports"

// Compile-time check that the indicators satisfy the application port.
var _ ports.Oscillator = (*RSI)(nil)

// IndicatorConfig holds common configuration for indicators
type IndicatorConfig struct {
	Period int
}

// BaseIndicator provides common functionality for indicators
type BaseIndicator struct {
	Config IndicatorConfig
}

// RequiredDataPoints returns the minimum number of candles needed for calculation
func (b *BaseIndicator) RequiredDataPoints() int {
	return b.Config.Period
}
