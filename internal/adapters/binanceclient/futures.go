package binanceclient

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/adshao/go-binance/v2/futures"

	"cryptoRSI/internal/domain"
	"cryptoRSI/internal/ports"
)

// FuturesFetcher reads klines from the Binance USDⓈ-M futures API using the go-binance SDK.
type FuturesFetcher struct {
	futuresClient *futures.Client
	status        *statusRecorder
	logger        ports.Logger
}

// responseStatus is the HTTP status line of a response.
type responseStatus struct {
	code int
	text string
}

// statusRecorder remembers the status of the last response seen by the SDK,
// which drops it when building its error value.
type statusRecorder struct {
	next http.RoundTripper

	mu   sync.Mutex
	last responseStatus
}

func (r *statusRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := r.next.RoundTrip(req)

	var status responseStatus
	if err == nil {
		status = responseStatus{code: resp.StatusCode, text: statusText(resp)}
	}
	r.mu.Lock()
	r.last = status
	r.mu.Unlock()

	return resp, err
}

func (r *statusRecorder) lastStatus() responseStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// NewFuturesFetcher creates a futures klines fetcher. Klines are public, so no API keys are used.
func NewFuturesFetcher(cfg Config) (*FuturesFetcher, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	httpClient := *cfg.httpClient()
	recorder := &statusRecorder{next: httpClient.Transport}
	if recorder.next == nil {
		recorder.next = http.DefaultTransport
	}
	httpClient.Transport = recorder

	client := futures.NewClient("", "")
	client.BaseURL = cfg.baseURL(baseURLFutures)
	client.HTTPClient = &httpClient
	cfg.Logger.Debug(context.Background(), "Binance futures fetcher configured", map[string]interface{}{"baseURL": client.BaseURL})

	return &FuturesFetcher{
		futuresClient: client,
		status:        recorder,
		logger:        cfg.Logger,
	}, nil
}

// FetchCandles retrieves the most recent futures klines for the given symbol.
func (f *FuturesFetcher) FetchCandles(ctx context.Context, symbol, interval string) ([]domain.Candle, error) {
	op := "FetchCandles"
	fields := map[string]interface{}{"market": domain.MarketFutures, "symbol": symbol, "interval": interval}

	binanceKlines, err := f.futuresClient.NewKlinesService().
		Symbol(symbol).
		Interval(interval).
		Limit(ports.KlineLimit).
		Do(ctx)
	if err != nil {
		return nil, handleError(ctx, f.logger, translateSDKError(err, f.status.lastStatus()), op, fields)
	}

	candles := make([]domain.Candle, 0, len(binanceKlines))
	for _, bk := range binanceKlines {
		if bk == nil {
			return nil, handleError(ctx, f.logger, errors.Join(ports.ErrDecodeFailed, errors.New("received nil kline")), op, fields)
		}
		candles = append(candles, translateFuturesKline(bk))
	}

	f.logger.Info(ctx, "Fetched klines", map[string]interface{}{"symbol": symbol, "interval": interval, "count": len(candles)})
	return candles, nil
}

// translateFuturesKline converts an SDK kline. The SDK does not expose the ignore field.
func translateFuturesKline(bk *futures.Kline) domain.Candle {
	return domain.Candle{
		OpenTime:                 bk.OpenTime,
		Open:                     bk.Open,
		High:                     bk.High,
		Low:                      bk.Low,
		Close:                    bk.Close,
		Volume:                   bk.Volume,
		CloseTime:                bk.CloseTime,
		QuoteAssetVolume:         bk.QuoteAssetVolume,
		NumberOfTrades:           bk.TradeNum,
		TakerBuyBaseAssetVolume:  bk.TakerBuyBaseAssetVolume,
		TakerBuyQuoteAssetVolume: bk.TakerBuyQuoteAssetVolume,
	}
}
