// ウォッチリスト上の全銘柄の日足シリーズを強制更新するバッチランナーです。
// 引数なしで1回実行し、REFRESH_CRONが設定されている場合は常駐して
// スケジュール実行します。
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	candlesusecase "marketdata_backend/internal/feature/candles/usecase"
	symbollistadapters "marketdata_backend/internal/feature/symbollist/adapters"
	symbollistusecase "marketdata_backend/internal/feature/symbollist/usecase"
	platformdb "marketdata_backend/internal/platform/db"
	platformhttp "marketdata_backend/internal/platform/http"
	"marketdata_backend/internal/platform/market"
	"marketdata_backend/internal/platform/market/binance"
	"marketdata_backend/internal/platform/market/coinbase"
	"marketdata_backend/internal/platform/market/kraken"
	platformredis "marketdata_backend/internal/platform/redis"
	"marketdata_backend/internal/platform/scheduler"
	"marketdata_backend/internal/platform/store"
	"marketdata_backend/internal/shared/ratelimiter"
)

func main() {
	db, err := platformdb.OpenDB()
	if err != nil {
		log.Fatalf("failed to open watchlist db: %v", err)
	}

	var seriesStore candlesusecase.SeriesStore
	if rdb, err := platformredis.NewRedisClient(); err == nil && rdb != nil {
		seriesStore = store.NewRedisSeriesStore(rdb, 0, store.DefaultNamespace)
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	} else {
		// ストアなしのバッチ実行に意味はないので終了する
		log.Fatal("refresh runner requires Redis; set REDIS_HOST")
	}

	binanceCfg := binance.LoadConfig()
	krakenCfg := kraken.LoadConfig()
	coinbaseCfg := coinbase.LoadConfig()
	binanceClient := platformhttp.NewHTTPClient(binanceCfg.Timeout)
	chain := market.NewChain(
		binance.NewClient(binanceCfg, binanceClient),
		binance.NewMirrorClient(binanceCfg, binanceClient),
		kraken.NewClient(krakenCfg, platformhttp.NewHTTPClient(krakenCfg.Timeout)),
		coinbase.NewClient(coinbaseCfg, platformhttp.NewHTTPClient(coinbaseCfg.Timeout)),
	)

	seriesUC := candlesusecase.NewSeriesUsecase(chain, seriesStore)
	symbolUC := symbollistusecase.NewSymbolUsecase(symbollistadapters.NewSymbolRepository(db))

	// 公開APIのレート制限に収まるよう1分あたりの更新数を抑える
	rl := ratelimiter.NewRateLimiter(30, time.Minute)
	refreshUC := candlesusecase.NewRefreshUsecase(seriesUC, rl)

	runOnce := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		codes, err := symbolUC.ListActiveCodes(ctx)
		if err != nil {
			slog.Error("failed to load watchlist", "error", err)
			return
		}
		if err := refreshUC.RefreshAll(ctx, codes, candlesusecase.RefreshDays); err != nil {
			slog.Error("refresh batch failed", "error", err)
		}
	}

	spec := os.Getenv("REFRESH_CRON")
	if spec == "" {
		runOnce()
		return
	}

	// 常駐モード: シグナルを受けるまでスケジュール実行
	s := scheduler.New()
	if err := startDaemon(s, spec, "refresh-watchlist", runOnce); err != nil {
		log.Fatalf("invalid REFRESH_CRON %q: %v", spec, err)
	}
	slog.Info("refresh daemon started", "cron", spec)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	s.Stop()
	slog.Info("refresh daemon stopped")
}

// startDaemon はジョブを登録し、起動直後に1回実行してから定期実行を開始します。
// 次のcron刻みを待たずに初回の更新が走るようにします。
func startDaemon(s *scheduler.Scheduler, spec, name string, job func()) error {
	if err := s.Add(spec, name, job); err != nil {
		return err
	}
	job()
	s.Start()
	return nil
}
