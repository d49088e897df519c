// Package coinbase provides a daily-candles client for the Coinbase
// Exchange public API.
package coinbase

import (
	"os"
	"time"
)

// Config はCoinbase APIクライアントの設定を保持します。
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig は環境変数からCoinbaseの設定を読み込みます。
func LoadConfig() Config {
	cfg := Config{
		BaseURL: "https://api.exchange.coinbase.com",
		Timeout: 10 * time.Second,
	}
	if v := os.Getenv("COINBASE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	return cfg
}
