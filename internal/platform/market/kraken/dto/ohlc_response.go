// Package dto defines Kraken API response shapes.
package dto

import (
	"encoding/json"
	"errors"
	"fmt"
)

// OHLCResponse is the envelope of /0/public/OHLC. The result object is keyed
// by Kraken's own spelling of the pair, which may differ from the requested
// one, plus a "last" pagination cursor. Rows are therefore located by
// skipping "last" rather than by key.
type OHLCResponse struct {
	Error  []string                   `json:"error"`
	Result map[string]json.RawMessage `json:"result"`
}

// Rows extracts the OHLC row list from the result object.
func (r OHLCResponse) Rows() ([]OHLCRow, error) {
	for key, raw := range r.Result {
		if key == "last" {
			continue
		}
		var rows []OHLCRow
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, fmt.Errorf("parse ohlc rows for %q: %w", key, err)
		}
		return rows, nil
	}
	return nil, errors.New("no pair data in response")
}

// OHLCRow is one positional row: [time(sec), open, high, low, close, vwap,
// volume, count]. Prices and volume are string decimals.
type OHLCRow struct {
	Time   int64
	Open   string
	High   string
	Low    string
	Close  string
	Volume string
}

// UnmarshalJSON は位置ベースの混合型配列を構造体に展開します。
func (r *OHLCRow) UnmarshalJSON(b []byte) error {
	var row []json.RawMessage
	if err := json.Unmarshal(b, &row); err != nil {
		return err
	}
	if len(row) < 8 {
		return fmt.Errorf("ohlc row has %d fields, want 8", len(row))
	}
	if err := json.Unmarshal(row[0], &r.Time); err != nil {
		return fmt.Errorf("parse time: %w", err)
	}
	for i, dst := range []*string{&r.Open, &r.High, &r.Low, &r.Close} {
		if err := json.Unmarshal(row[i+1], dst); err != nil {
			return fmt.Errorf("parse field %d: %w", i+1, err)
		}
	}
	if err := json.Unmarshal(row[6], &r.Volume); err != nil {
		return fmt.Errorf("parse volume: %w", err)
	}
	return nil
}
