// Package dto defines Binance API response shapes.
package dto

import (
	"encoding/json"
	"fmt"
)

// Kline is one row of the /api/v3/klines response. Binance encodes rows as
// positional JSON arrays mixing millisecond epochs and string decimals:
// [openTime, open, high, low, close, volume, closeTime, ...].
type Kline struct {
	OpenTime  int64
	Open      string
	High      string
	Low       string
	Close     string
	Volume    string
	CloseTime int64
}

// UnmarshalJSON は位置ベースの混合型配列を構造体に展開します。
func (k *Kline) UnmarshalJSON(b []byte) error {
	var row []json.RawMessage
	if err := json.Unmarshal(b, &row); err != nil {
		return err
	}
	if len(row) < 7 {
		return fmt.Errorf("kline row has %d fields, want at least 7", len(row))
	}
	if err := json.Unmarshal(row[0], &k.OpenTime); err != nil {
		return fmt.Errorf("parse openTime: %w", err)
	}
	for i, dst := range []*string{&k.Open, &k.High, &k.Low, &k.Close, &k.Volume} {
		if err := json.Unmarshal(row[i+1], dst); err != nil {
			return fmt.Errorf("parse field %d: %w", i+1, err)
		}
	}
	if err := json.Unmarshal(row[6], &k.CloseTime); err != nil {
		return fmt.Errorf("parse closeTime: %w", err)
	}
	return nil
}

// ErrorResponse is Binance's JSON error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
}
