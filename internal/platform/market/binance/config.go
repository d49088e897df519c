// Package binance provides a daily-klines client for the Binance REST API.
package binance

import (
	"os"
	"time"
)

// Config はBinance APIクライアントの設定を保持します。
type Config struct {
	// BaseURL is the primary host.
	BaseURL string
	// MirrorURL is the regional mirror, tried only when the primary answers
	// with a restricted-location status.
	MirrorURL string
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration
}

// LoadConfig は環境変数からBinanceの設定を読み込みます。
// 未設定の場合はデフォルト値を使用します。
func LoadConfig() Config {
	cfg := Config{
		BaseURL:   "https://api.binance.com",
		MirrorURL: "https://api.binance.us",
		Timeout:   10 * time.Second,
	}
	if v := os.Getenv("BINANCE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("BINANCE_MIRROR_URL"); v != "" {
		cfg.MirrorURL = v
	}
	return cfg
}
