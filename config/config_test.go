package config

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptoRSI/internal/adapters/logger"
	"cryptoRSI/internal/domain"
	"cryptoRSI/internal/ports"
)

// clearEnv blanks every variable LoadConfig reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RSI_SYMBOL", "RSI_INTERVAL", "RSI_PERIOD", "RSI_MARKET",
		"RSI_STRICT_BOUNDS", "RSI_STRICT_PRICES", "RSI_OVERBOUGHT", "RSI_OVERSOLD",
		"BINANCE_SPOT_BASE_URL", "BINANCE_FUTURES_BASE_URL", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "BTCBUSD", cfg.Symbol)
	assert.Equal(t, "4h", cfg.Interval)
	assert.Equal(t, 1000, cfg.Period)
	assert.Equal(t, domain.MarketSpot, cfg.Market)
	assert.True(t, cfg.StrictBounds)
	assert.True(t, cfg.StrictPrices)
	assert.Equal(t, 70.0, cfg.RSIOverbought)
	assert.Equal(t, 30.0, cfg.RSIOversold)
	assert.Equal(t, logger.LevelWarn, cfg.LogLevel)
	assert.Empty(t, cfg.BaseURL())
}

func TestLoadConfig_Flags(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig([]string{"-c", "ETHUSDT", "-i", "1d", "-p", "14", "-m", "futures"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "ETHUSDT", cfg.Symbol)
	assert.Equal(t, "1d", cfg.Interval)
	assert.Equal(t, 14, cfg.Period)
	assert.Equal(t, domain.MarketFutures, cfg.Market)
}

func TestLoadConfig_EmptyFlagsFallBackToDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig([]string{"-c", "", "-i", ""}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, DefaultSymbol, cfg.Symbol)
	assert.Equal(t, DefaultInterval, cfg.Interval)
}

func TestLoadConfig_EnvironmentAndPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("RSI_SYMBOL", "SOLUSDT")
	t.Setenv("RSI_PERIOD", "21")
	t.Setenv("RSI_STRICT_BOUNDS", "false")
	t.Setenv("RSI_STRICT_PRICES", "0")
	t.Setenv("RSI_MARKET", "futures")
	t.Setenv("BINANCE_SPOT_BASE_URL", "http://spot.local")
	t.Setenv("BINANCE_FUTURES_BASE_URL", "http://futures.local")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig([]string{"-p", "7"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "SOLUSDT", cfg.Symbol)
	assert.Equal(t, 7, cfg.Period, "flag wins over environment")
	assert.False(t, cfg.StrictBounds)
	assert.False(t, cfg.StrictPrices)
	assert.Equal(t, logger.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "http://futures.local", cfg.BaseURL())

	cfg.Market = domain.MarketSpot
	assert.Equal(t, "http://spot.local", cfg.BaseURL())
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		message string
	}{
		{name: "bad period env", env: map[string]string{"RSI_PERIOD": "ten"}, message: "invalid RSI_PERIOD"},
		{name: "bad market", args: []string{"-m", "margin"}, message: "unknown market"},
		{name: "bad strict flag", env: map[string]string{"RSI_STRICT_BOUNDS": "maybe"}, message: "invalid RSI_STRICT_BOUNDS"},
		{name: "inverted thresholds", env: map[string]string{"RSI_OVERBOUGHT": "20", "RSI_OVERSOLD": "80"}, message: "invalid RSI thresholds"},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}, message: "invalid LOG_LEVEL"},
		{name: "positional arguments", args: []string{"extra"}, message: "unexpected arguments: extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig(tt.args, io.Discard)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ports.ErrConfigurationError)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadConfig_FlagErrors(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig([]string{"-p", "many"}, io.Discard)
	require.Error(t, err)

	_, err = LoadConfig([]string{"-h"}, io.Discard)
	assert.True(t, errors.Is(err, flag.ErrHelp))
}
