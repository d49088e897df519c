// Package dto はcandlesフィーチャーのHTTPリクエスト/レスポンスDTOを定義します。
package dto

import (
	"time"

	"marketdata_backend/internal/feature/candles/domain/entity"
)

// CandleResponse は1本のローソク足のレスポンスDTOです。
type CandleResponse struct {
	OpenTime  string  `json:"openTime"`  // 開始時刻（RFC3339）
	CloseTime string  `json:"closeTime"` // 終了時刻（RFC3339）
	Open      float64 `json:"open"`      // 始値
	High      float64 `json:"high"`      // 高値
	Low       float64 `json:"low"`       // 安値
	Close     float64 `json:"close"`     // 終値
	Volume    float64 `json:"volume"`    // 出来高
}

// SeriesResponse は日足シリーズのレスポンスDTOです。
type SeriesResponse struct {
	Provider  string           `json:"provider"`
	Symbol    string           `json:"symbol"`
	Interval  string           `json:"interval"`
	Days      int              `json:"days"`
	FetchedAt string           `json:"fetchedAt"`
	Source    string           `json:"source"` // "cache" または "upstream"
	Candles   []CandleResponse `json:"candles"`
	// StoreError is set when the series was fetched but could not be saved.
	StoreError string `json:"storeError,omitempty"`
}

// RefreshRequest は強制リフレッシュのリクエストボディです。
type RefreshRequest struct {
	Symbol string `json:"symbol"`
	Days   int    `json:"days"`
}

// RefreshResponse は強制リフレッシュのレスポンスDTOです。
type RefreshResponse struct {
	SeriesResponse
	Key string `json:"key"` // 保存先のストアキー
}

// NewSeriesResponse はドメインのシリーズをレスポンスDTOに変換します。
func NewSeriesResponse(s entity.Series, source string) SeriesResponse {
	candles := make([]CandleResponse, 0, len(s.Candles))
	for _, c := range s.Candles {
		candles = append(candles, CandleResponse{
			OpenTime:  c.OpenTime.UTC().Format(time.RFC3339),
			CloseTime: c.CloseTime.UTC().Format(time.RFC3339),
			Open:      c.Open,
			High:      c.High,
			Low:       c.Low,
			Close:     c.Close,
			Volume:    c.Volume,
		})
	}
	return SeriesResponse{
		Provider:  s.Provider,
		Symbol:    s.Symbol,
		Interval:  s.Interval,
		Days:      s.Days,
		FetchedAt: s.FetchedAt.UTC().Format(time.RFC3339),
		Source:    source,
		Candles:   candles,
	}
}

// ErrorResponse はエラーレスポンスの共通DTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}
