package ratelimiter

import (
	"log/slog"
	"time"
)

// RateLimiterInterface は、上流API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter は固定ウィンドウ方式で呼び出し頻度を制限します。
type RateLimiter struct {
	limit     int           // ウィンドウあたりの呼び出し上限
	interval  time.Duration // カウントをリセットする単位
	count     int
	lastReset time.Time
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded は上限に達している場合、次のウィンドウまでブロックします。
func (rl *RateLimiter) WaitIfNeeded() {
	now := time.Now()
	// ウィンドウを過ぎていたらカウントをリセット
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			slog.Info("rate limit reached, waiting", "limit", rl.limit, "sleep", sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
