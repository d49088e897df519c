package binance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestLoadConfig はデフォルト値と環境変数による上書きを検証します。
func TestLoadConfig(t *testing.T) {
	t.Setenv("BINANCE_BASE_URL", "")
	t.Setenv("BINANCE_MIRROR_URL", "")

	cfg := LoadConfig()
	assert.Equal(t, "https://api.binance.com", cfg.BaseURL)
	assert.Equal(t, "https://api.binance.us", cfg.MirrorURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)

	t.Setenv("BINANCE_BASE_URL", "http://localhost:9001")
	t.Setenv("BINANCE_MIRROR_URL", "http://localhost:9002")

	cfg = LoadConfig()
	assert.Equal(t, "http://localhost:9001", cfg.BaseURL)
	assert.Equal(t, "http://localhost:9002", cfg.MirrorURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}
