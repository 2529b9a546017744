package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"cryptoRSI/internal/adapters/logger"
	"cryptoRSI/internal/domain"
	"cryptoRSI/internal/ports"
)

const (
	DefaultSymbol   = "BTCBUSD"
	DefaultInterval = "4h"
	DefaultPeriod   = 1000
)

// Config holds all application configuration.
type Config struct {
	// Calculation Parameters
	Symbol   string
	Interval string
	Period   int
	Market   domain.Market

	// Validation
	StrictBounds bool // Fail when the RSI window is longer than the fetched prices
	StrictPrices bool // Fail on close prices that are not valid decimals

	// RSI zone thresholds
	RSIOverbought float64 // e.g., 70.0
	RSIOversold   float64 // e.g., 30.0

	// Binance endpoints, empty means production
	SpotBaseURL    string
	FuturesBaseURL string

	// Logging
	LogLevel logger.LogLevel
}

// LoadConfig builds the configuration from the environment (optionally a .env file)
// and the command line arguments, which take precedence.
func LoadConfig(args []string, output io.Writer) (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string // Collect validation errors

	// Environment supplies the flag defaults
	defaultPeriod, err := getEnvAsIntRequired("RSI_PERIOD", DefaultPeriod)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid RSI_PERIOD: %v", err))
		defaultPeriod = DefaultPeriod
	}

	fs := flag.NewFlagSet("cryptoRSI", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Symbol, "c", getEnv("RSI_SYMBOL", DefaultSymbol), "trading pair symbol")
	fs.StringVar(&cfg.Interval, "i", getEnv("RSI_INTERVAL", DefaultInterval), "candle interval")
	fs.IntVar(&cfg.Period, "p", defaultPeriod, "number of prices in the RSI window")
	market := fs.String("m", getEnv("RSI_MARKET", string(domain.MarketSpot)), "market: spot or futures")
	if err := fs.Parse(args); err != nil {
		return nil, err // flag.ErrHelp included
	}
	if fs.NArg() > 0 {
		errs = append(errs, fmt.Sprintf("unexpected arguments: %s", strings.Join(fs.Args(), " ")))
	}

	// An empty symbol or interval falls back to the default
	if cfg.Symbol == "" {
		cfg.Symbol = DefaultSymbol
	}
	if cfg.Interval == "" {
		cfg.Interval = DefaultInterval
	}

	cfg.Market, err = domain.ParseMarket(*market)
	if err != nil {
		errs = append(errs, err.Error())
	}

	// Validation
	cfg.StrictBounds, err = getEnvAsBoolRequired("RSI_STRICT_BOUNDS", true)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid RSI_STRICT_BOUNDS: %v", err))
	}
	cfg.StrictPrices, err = getEnvAsBoolRequired("RSI_STRICT_PRICES", true)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid RSI_STRICT_PRICES: %v", err))
	}

	// RSI zone thresholds
	cfg.RSIOverbought, err = getEnvAsFloatRequired("RSI_OVERBOUGHT", 70.0)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid RSI_OVERBOUGHT: %v", err))
	}
	cfg.RSIOversold, err = getEnvAsFloatRequired("RSI_OVERSOLD", 30.0)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid RSI_OVERSOLD: %v", err))
	}
	if cfg.RSIOverbought <= cfg.RSIOversold || cfg.RSIOverbought > 100 || cfg.RSIOversold < 0 {
		errs = append(errs, "invalid RSI thresholds (Overbought must be > Oversold, between 0-100)")
	}

	// Endpoints
	cfg.SpotBaseURL = getEnv("BINANCE_SPOT_BASE_URL", "")
	cfg.FuturesBaseURL = getEnv("BINANCE_FUTURES_BASE_URL", "")

	// Logging
	logLevelStr := getEnv("LOG_LEVEL", "WARN")
	var ok bool
	cfg.LogLevel, ok = logger.ParseLevel(logLevelStr)
	if !ok {
		errs = append(errs, fmt.Sprintf("invalid LOG_LEVEL %q", logLevelStr))
	}

	// Combine validation errors
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s: %w", strings.Join(errs, "; "), ports.ErrConfigurationError)
	}

	return cfg, nil
}

// BaseURL returns the endpoint override for the configured market.
func (c *Config) BaseURL() string {
	if c.Market == domain.MarketFutures {
		return c.FuturesBaseURL
	}
	return c.SpotBaseURL
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsIntRequired(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		// Use default if env var is not set at all
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		// Return error if env var is set but invalid
		return 0, fmt.Errorf("invalid integer value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}

func getEnvAsFloatRequired(key string, defaultValue float64) (float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}

func getEnvAsBoolRequired(key string, defaultValue bool) (bool, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("invalid boolean value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}
