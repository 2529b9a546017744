package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// CandleField is the position of a field inside the kline wire array.
type CandleField int

const (
	FieldOpenTime CandleField = iota
	FieldOpen
	FieldHigh
	FieldLow
	FieldClose
	FieldVolume
	FieldCloseTime
	FieldQuoteAssetVolume
	FieldNumberOfTrades
	FieldTakerBuyBaseAssetVolume
	FieldTakerBuyQuoteAssetVolume
	FieldIgnore
)

// CandleFieldCount is the exact arity of a kline array.
const CandleFieldCount = 12

var candleFieldNames = [CandleFieldCount]string{
	"openTime",
	"open",
	"high",
	"low",
	"close",
	"volume",
	"closeTime",
	"quoteAssetVolume",
	"numberOfTrades",
	"takerBuyBaseAssetVolume",
	"takerBuyQuoteAssetVolume",
	"ignore",
}

// String returns the field name as documented by the exchange.
func (f CandleField) String() string {
	if f < 0 || int(f) >= CandleFieldCount {
		return fmt.Sprintf("CandleField(%d)", int(f))
	}
	return candleFieldNames[f]
}

// Candle represents one kline interval as returned by the market-data API.
// Price and volume fields keep the exchange's decimal string form.
type Candle struct {
	OpenTime                 int64  // Start of the interval, epoch milliseconds
	Open                     string // Opening price
	High                     string // Highest price
	Low                      string // Lowest price
	Close                    string // Closing price
	Volume                   string // Base asset volume
	CloseTime                int64  // End of the interval, epoch milliseconds
	QuoteAssetVolume         string // Quote asset volume
	NumberOfTrades           int64  // Trade count within the interval
	TakerBuyBaseAssetVolume  string // Taker buy base asset volume
	TakerBuyQuoteAssetVolume string // Taker buy quote asset volume
	Ignore                   string // Unused by the exchange
}

// OpenTimeUTC returns the interval start as a time.Time.
func (c Candle) OpenTimeUTC() time.Time {
	return time.UnixMilli(c.OpenTime).UTC()
}

// CloseTimeUTC returns the interval end as a time.Time.
func (c Candle) CloseTimeUTC() time.Time {
	return time.UnixMilli(c.CloseTime).UTC()
}

// targets returns pointers to every field in wire order.
func (c *Candle) targets() [CandleFieldCount]interface{} {
	return [CandleFieldCount]interface{}{
		&c.OpenTime,
		&c.Open,
		&c.High,
		&c.Low,
		&c.Close,
		&c.Volume,
		&c.CloseTime,
		&c.QuoteAssetVolume,
		&c.NumberOfTrades,
		&c.TakerBuyBaseAssetVolume,
		&c.TakerBuyQuoteAssetVolume,
		&c.Ignore,
	}
}

// UnmarshalJSON decodes the positional array form
// [openTime, open, high, low, close, volume, closeTime, quoteAssetVolume,
// numberOfTrades, takerBuyBaseAssetVolume, takerBuyQuoteAssetVolume, ignore].
// Every element must be present and non-null with the right JSON type. Decimal
// strings are kept as sent; close prices are validated when they are extracted.
func (c *Candle) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding kline array: %w", err)
	}
	if len(raw) != CandleFieldCount {
		return fmt.Errorf("kline array has %d fields, want %d", len(raw), CandleFieldCount)
	}

	var decoded Candle
	for i, target := range decoded.targets() {
		if bytes.Equal(bytes.TrimSpace(raw[i]), []byte("null")) {
			return fmt.Errorf("decoding kline field %s: null value", CandleField(i))
		}
		if err := json.Unmarshal(raw[i], target); err != nil {
			return fmt.Errorf("decoding kline field %s: %w", CandleField(i), err)
		}
	}
	*c = decoded
	return nil
}

// MarshalJSON encodes the candle back into the exchange's positional array form.
func (c Candle) MarshalJSON() ([]byte, error) {
	t := c.targets()
	return json.Marshal(t[:])
}
