package binanceclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"cryptoRSI/internal/domain"
	"cryptoRSI/internal/ports"
)

// SpotFetcher reads klines from the Binance spot REST API.
type SpotFetcher struct {
	baseURL    string
	httpClient *http.Client
	logger     ports.Logger
}

// NewSpotFetcher creates a spot klines fetcher.
func NewSpotFetcher(cfg Config) (*SpotFetcher, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	f := &SpotFetcher{
		baseURL:    cfg.baseURL(baseURLSpot),
		httpClient: cfg.httpClient(),
		logger:     cfg.Logger,
	}
	cfg.Logger.Debug(context.Background(), "Binance spot fetcher configured", map[string]interface{}{"baseURL": f.baseURL})
	return f, nil
}

// FetchCandles issues a single GET /api/v3/klines request for the most recent candles.
func (f *SpotFetcher) FetchCandles(ctx context.Context, symbol, interval string) ([]domain.Candle, error) {
	op := "FetchCandles"
	fields := map[string]interface{}{"market": domain.MarketSpot, "symbol": symbol, "interval": interval}

	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("interval", interval)
	params.Set("limit", strconv.Itoa(ports.KlineLimit))
	reqURL := f.baseURL + spotKlinesEndpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, handleError(ctx, f.logger, fmt.Errorf("%w: %w", ports.ErrInvalidRequest, err), op, fields)
	}

	f.logger.Debug(ctx, "Requesting klines", map[string]interface{}{"url": reqURL})
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, handleError(ctx, f.logger, fmt.Errorf("%w: %w", ports.ErrConnectionFailed, err), op, fields)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, handleError(ctx, f.logger, fmt.Errorf("reading response body: %w: %w", ports.ErrConnectionFailed, err), op, fields)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, handleError(ctx, f.logger, newAPIError(resp, body), op, fields)
	}

	var candles []domain.Candle
	if err := json.Unmarshal(body, &candles); err != nil {
		return nil, handleError(ctx, f.logger, fmt.Errorf("%w: %w", ports.ErrDecodeFailed, err), op, fields)
	}
	if candles == nil {
		candles = []domain.Candle{}
	}

	f.logger.Info(ctx, "Fetched klines", map[string]interface{}{"symbol": symbol, "interval": interval, "count": len(candles)})
	return candles, nil
}
