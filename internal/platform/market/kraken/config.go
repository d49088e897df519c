// Package kraken provides a daily-OHLC client for the Kraken public API.
package kraken

import (
	"os"
	"time"
)

// Config はKraken APIクライアントの設定を保持します。
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig は環境変数からKrakenの設定を読み込みます。
func LoadConfig() Config {
	cfg := Config{
		BaseURL: "https://api.kraken.com",
		Timeout: 10 * time.Second,
	}
	if v := os.Getenv("KRAKEN_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	return cfg
}
