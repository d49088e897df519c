package main

import (
	"testing"

	"marketdata_backend/internal/platform/scheduler"
)

// TestStartDaemon_RunsImmediately は常駐モードが次のcron刻みを待たずに
// 起動直後に1回実行することを検証します。
func TestStartDaemon_RunsImmediately(t *testing.T) {
	runs := 0
	s := scheduler.New()

	if err := startDaemon(s, "0 3 * * *", "refresh-watchlist", func() { runs++ }); err != nil {
		t.Fatalf("unexpected startDaemon error: %v", err)
	}
	defer s.Stop()

	if runs != 1 {
		t.Fatalf("expected one immediate run at startup, got %d", runs)
	}
}

// TestStartDaemon_InvalidSpec は不正なcron式では登録に失敗し、ジョブが
// 一度も実行されないことを検証します。
func TestStartDaemon_InvalidSpec(t *testing.T) {
	runs := 0
	s := scheduler.New()

	if err := startDaemon(s, "not a cron spec", "refresh-watchlist", func() { runs++ }); err == nil {
		t.Fatal("expected an error for an invalid cron spec")
	}
	if runs != 0 {
		t.Fatalf("job must not run when registration fails, got %d runs", runs)
	}
}
