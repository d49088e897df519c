package usecase_test

import (
	"context"
	"errors"
	"testing"

	"marketdata_backend/internal/feature/candles/domain/entity"
	"marketdata_backend/internal/feature/candles/usecase"
)

// mockSeriesRefresher はSeriesRefresherインターフェースのモック実装です。
type mockSeriesRefresher struct {
	RefreshFunc func(ctx context.Context, symbol string, days int) (entity.Series, string, error)
	Symbols     []string
}

func (m *mockSeriesRefresher) RefreshDailySeries(ctx context.Context, symbol string, days int) (entity.Series, string, error) {
	m.Symbols = append(m.Symbols, symbol)
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, symbol, days)
	}
	return entity.Series{Symbol: symbol}, "key", nil
}

// mockRateLimiter は待機回数だけを記録するレートリミッターです。
type mockRateLimiter struct {
	Waits int
}

func (m *mockRateLimiter) WaitIfNeeded() { m.Waits++ }

// TestRefreshUsecase_RefreshAll は全銘柄が順番に更新され、リクエストごとに
// レートリミッターが挟まることを検証します。
func TestRefreshUsecase_RefreshAll(t *testing.T) {
	t.Parallel()

	refresher := &mockSeriesRefresher{}
	rl := &mockRateLimiter{}
	ru := usecase.NewRefreshUsecase(refresher, rl)

	symbols := []string{"BTCUSDT", "ETHUSDT", "SOLUSDT"}
	if err := ru.RefreshAll(context.Background(), symbols, usecase.RefreshDays); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(refresher.Symbols) != len(symbols) {
		t.Fatalf("expected %d refresh calls, got %d", len(symbols), len(refresher.Symbols))
	}
	for i, s := range symbols {
		if refresher.Symbols[i] != s {
			t.Errorf("expected symbol %q at position %d, got %q", s, i, refresher.Symbols[i])
		}
	}
	if rl.Waits != len(symbols) {
		t.Errorf("expected %d rate limiter waits, got %d", len(symbols), rl.Waits)
	}
}

// TestRefreshUsecase_RefreshAll_ContinuesOnFailure は1銘柄の失敗で
// バッチが止まらないことを検証します。
func TestRefreshUsecase_RefreshAll_ContinuesOnFailure(t *testing.T) {
	t.Parallel()

	refresher := &mockSeriesRefresher{
		RefreshFunc: func(ctx context.Context, symbol string, days int) (entity.Series, string, error) {
			if symbol == "ETHUSDT" {
				return entity.Series{}, "", errors.New("all providers failed")
			}
			return entity.Series{Symbol: symbol}, "key", nil
		},
	}
	ru := usecase.NewRefreshUsecase(refresher, &mockRateLimiter{})

	symbols := []string{"BTCUSDT", "ETHUSDT", "SOLUSDT"}
	if err := ru.RefreshAll(context.Background(), symbols, usecase.RefreshDays); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(refresher.Symbols) != 3 {
		t.Errorf("expected all 3 symbols to be attempted, got %d", len(refresher.Symbols))
	}
}
