package binanceclient

import (
	"fmt"
	"net/http"
	"strings"

	"cryptoRSI/internal/domain"
	"cryptoRSI/internal/ports"
)

const (
	// Base URLs
	baseURLSpot    = "https://api.binance.com"
	baseURLFutures = "https://fapi.binance.com"

	spotKlinesEndpoint = "/api/v3/klines"
)

// Config holds configuration specific to the Binance client adapter.
type Config struct {
	Market     domain.Market
	BaseURL    string       // Overrides the market's production URL when set
	HTTPClient *http.Client // Defaults to a client without a timeout
	Logger     ports.Logger
}

// New creates the candle fetcher for the configured market.
func New(cfg Config) (ports.CandleFetcher, error) {
	switch cfg.Market {
	case domain.MarketSpot, "":
		f, err := NewSpotFetcher(cfg)
		if err != nil {
			return nil, err
		}
		return f, nil
	case domain.MarketFutures:
		f, err := NewFuturesFetcher(cfg)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unsupported market %q: %w", cfg.Market, ports.ErrConfigurationError)
	}
}

func (cfg Config) validate() error {
	if cfg.Logger == nil {
		return fmt.Errorf("logger is required for Binance client: %w", ports.ErrConfigurationError)
	}
	return nil
}

func (cfg Config) baseURL(fallback string) string {
	if cfg.BaseURL == "" {
		return fallback
	}
	return strings.TrimRight(cfg.BaseURL, "/")
}

func (cfg Config) httpClient() *http.Client {
	if cfg.HTTPClient == nil {
		return &http.Client{}
	}
	return cfg.HTTPClient
}
