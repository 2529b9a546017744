package ports

import (
	"context"

	"cryptoRSI/internal/domain"
)

// KlineLimit is the number of candles requested per fetch; the exchange caps klines at 1000.
const KlineLimit = 1000

// CandleFetcher retrieves recent candles from a market-data source.
type CandleFetcher interface {
	// FetchCandles returns up to KlineLimit candles for symbol and interval,
	// oldest first, exactly as ordered by the exchange.
	FetchCandles(ctx context.Context, symbol, interval string) ([]domain.Candle, error)
}
