// Package entity defines the domain models for the candles feature.
package entity

import "time"

// IntervalDaily is the only candle interval this service deals in.
const IntervalDaily = "1d"

// Day count bounds. Out-of-range requests are clamped, never rejected.
const (
	MinDays = 1
	MaxDays = 365
)

// Candle represents one time-bucketed OHLCV (Open, High, Low, Close, Volume)
// price record. OpenTime is always strictly before CloseTime.
type Candle struct {
	OpenTime  time.Time `json:"openTime"`  // Start of the bucket
	CloseTime time.Time `json:"closeTime"` // End of the bucket
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"` // Base-asset volume
}

// Series is one whole fetched candle series for a (symbol, days) key.
// Candles are in ascending OpenTime order with no duplicate OpenTime.
// A series is created fresh on every successful fetch and superseded
// wholesale, never merged, by the next successful fetch for the same key.
type Series struct {
	Provider  string    `json:"provider"` // Identifier of the upstream that produced the data
	Symbol    string    `json:"symbol"`   // Normalized symbol (e.g. "BTCUSDT")
	Interval  string    `json:"interval"` // Always IntervalDaily
	Days      int       `json:"days"`     // Requested day count after clamping
	FetchedAt time.Time `json:"fetchedAt"`
	Candles   []Candle  `json:"candles"`
}

// Fresh reports whether the series is still within the staleness window.
// The boundary is inclusive: age == maxAge still counts as fresh.
func (s Series) Fresh(now time.Time, maxAge time.Duration) bool {
	if s.FetchedAt.IsZero() {
		return false
	}
	return now.Sub(s.FetchedAt) <= maxAge
}

// ClampDays brings a requested day count into [MinDays, MaxDays].
func ClampDays(days int) int {
	if days < MinDays {
		return MinDays
	}
	if days > MaxDays {
		return MaxDays
	}
	return days
}
