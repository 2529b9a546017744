package app

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"

	"cryptoRSI/config"
	"cryptoRSI/internal/ports"
)

// RSIService runs the fetch, extract, compute and print pipeline once.
type RSIService struct {
	cfg        *config.Config
	logger     ports.Logger
	fetcher    ports.CandleFetcher
	oscillator ports.Oscillator
	out        io.Writer
}

// NewRSIService creates a new application service instance.
func NewRSIService(
	cfg *config.Config,
	logger ports.Logger,
	fetcher ports.CandleFetcher,
	oscillator ports.Oscillator,
	out io.Writer,
) (*RSIService, error) {
	if cfg == nil || logger == nil || fetcher == nil || oscillator == nil || out == nil {
		return nil, fmt.Errorf("missing required dependencies for RSIService: %w", ports.ErrConfigurationError)
	}

	return &RSIService{
		cfg:        cfg,
		logger:     logger,
		fetcher:    fetcher,
		oscillator: oscillator,
		out:        out,
	}, nil
}

// Run prints the resolved parameters followed by either the reading or the error.
// The error is also returned so callers can inspect it; it has already been reported.
func (s *RSIService) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "Crypto: %s\n", s.cfg.Symbol)
	fmt.Fprintf(s.out, "Interval: %s\n", s.cfg.Interval)
	fmt.Fprintf(s.out, "Period: %d\n", s.cfg.Period)

	value, err := s.calculate(ctx)
	if err != nil {
		s.logger.Error(ctx, err, "RSI calculation failed", map[string]interface{}{"symbol": s.cfg.Symbol, "interval": s.cfg.Interval})
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return err
	}

	fmt.Fprintf(s.out, "%s: %s\n", s.oscillator.Name(), FormatValue(value))
	if !math.IsNaN(value) {
		fmt.Fprintf(s.out, "Zone: %s\n", s.oscillator.Zone(value))
	}
	return nil
}

func (s *RSIService) calculate(ctx context.Context) (float64, error) {
	candles, err := s.fetcher.FetchCandles(ctx, s.cfg.Symbol, s.cfg.Interval)
	if err != nil {
		return 0, err
	}
	s.logger.Debug(ctx, "Candles received", map[string]interface{}{"count": len(candles), "required": s.oscillator.RequiredDataPoints()})

	if len(candles) < s.oscillator.RequiredDataPoints() {
		s.logger.Warn(ctx, "Fewer candles than the window needs", map[string]interface{}{"count": len(candles), "period": s.cfg.Period})
	}

	value, err := s.oscillator.Calculate(ctx, candles)
	if err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "RSI calculated", map[string]interface{}{"value": value})
	return value, nil
}

// FormatValue renders a reading with the shortest representation that round-trips.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
