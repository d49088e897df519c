package store

import (
	"context"
	"testing"
	"time"
)

// TestMemorySeriesStore_PutGet は保存と読み戻し、キーの大文字小文字非依存を検証します。
func TestMemorySeriesStore_PutGet(t *testing.T) {
	t.Parallel()

	s := NewMemorySeriesStore("")
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "BTCUSDT", 90); err != nil || ok {
		t.Fatalf("expected clean miss on empty store, got ok=%v err=%v", ok, err)
	}

	series := testSeries()
	if err := s.Put(ctx, series); err != nil {
		t.Fatalf("unexpected Put error: %v", err)
	}

	// 読み取り側の大文字小文字に関わらず同じキーに解決される
	got, ok, err := s.Get(ctx, "btcusdt", 90)
	if err != nil || !ok {
		t.Fatalf("expected a hit, got ok=%v err=%v", ok, err)
	}
	if got.Provider != "binance" {
		t.Errorf("expected provider binance, got %q", got.Provider)
	}
}

// TestMemorySeriesStore_Overwrite は同一キーへのPutが全体上書きになることを検証します。
func TestMemorySeriesStore_Overwrite(t *testing.T) {
	t.Parallel()

	s := NewMemorySeriesStore("")
	ctx := context.Background()

	first := testSeries()
	if err := s.Put(ctx, first); err != nil {
		t.Fatalf("unexpected Put error: %v", err)
	}

	second := testSeries()
	second.Provider = "kraken"
	second.FetchedAt = first.FetchedAt.Add(10 * time.Minute)
	second.Candles = nil
	if err := s.Put(ctx, second); err != nil {
		t.Fatalf("unexpected Put error: %v", err)
	}

	got, ok, _ := s.Get(ctx, "BTCUSDT", 90)
	if !ok {
		t.Fatal("expected a hit after overwrite")
	}
	if got.Provider != "kraken" || len(got.Candles) != 0 {
		t.Errorf("expected wholesale overwrite, got %+v", got)
	}
	if !got.FetchedAt.After(first.FetchedAt) {
		t.Error("overwrite must advance fetchedAt")
	}
}
