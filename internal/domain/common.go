package domain

import (
	"fmt"
	"strings"
)

// Market identifies which Binance market candles are fetched from.
type Market string

const (
	MarketSpot    Market = "spot"
	MarketFutures Market = "futures" // USDⓈ-M perpetual futures
)

// ParseMarket converts a user supplied market name to a Market.
func ParseMarket(s string) (Market, error) {
	switch m := Market(strings.ToLower(strings.TrimSpace(s))); m {
	case MarketSpot, MarketFutures:
		return m, nil
	default:
		return "", fmt.Errorf("unknown market %q (want %q or %q)", s, MarketSpot, MarketFutures)
	}
}

// Zone classifies an oscillator reading against its thresholds.
type Zone string

const (
	ZoneOverbought Zone = "overbought"
	ZoneOversold   Zone = "oversold"
	ZoneNeutral    Zone = "neutral"
)
