// Package dto defines Coinbase API response shapes.
package dto

// CandleRow is one positional row of /products/{id}/candles:
// [time(sec), low, high, open, close, volume]. Unlike Binance and Kraken,
// every field is numeric, so a fixed-size float array decodes it directly.
type CandleRow [6]float64

func (r CandleRow) Time() int64 { return int64(r[0]) }

func (r CandleRow) Low() float64 { return r[1] }

func (r CandleRow) High() float64 { return r[2] }

func (r CandleRow) Open() float64 { return r[3] }

func (r CandleRow) Close() float64 { return r[4] }

func (r CandleRow) Volume() float64 { return r[5] }

// ErrorResponse is Coinbase's JSON error payload.
type ErrorResponse struct {
	Message string `json:"message"`
}
