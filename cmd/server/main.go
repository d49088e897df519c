package main

import (
	"log"
	"log/slog"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"marketdata_backend/internal/app/router"
	candleshandler "marketdata_backend/internal/feature/candles/transport/handler"
	candlesusecase "marketdata_backend/internal/feature/candles/usecase"
	symbollistadapters "marketdata_backend/internal/feature/symbollist/adapters"
	symbollisthandler "marketdata_backend/internal/feature/symbollist/transport/handler"
	symbollistusecase "marketdata_backend/internal/feature/symbollist/usecase"
	platformdb "marketdata_backend/internal/platform/db"
	platformhttp "marketdata_backend/internal/platform/http"
	"marketdata_backend/internal/platform/market"
	"marketdata_backend/internal/platform/market/binance"
	"marketdata_backend/internal/platform/market/coinbase"
	"marketdata_backend/internal/platform/market/kraken"
	platformredis "marketdata_backend/internal/platform/redis"
	"marketdata_backend/internal/platform/store"
)

func main() {
	// db（ウォッチリスト）
	db, err := platformdb.OpenDB()
	if err != nil {
		log.Fatalf("failed to open watchlist db: %v", err)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil || tmp == nil {
		slog.Warn("Redis unavailable, falling back to in-memory series store")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// シリーズストア
	var seriesStore candlesusecase.SeriesStore
	if rdb != nil {
		seriesStore = store.NewRedisSeriesStore(rdb, 0, store.DefaultNamespace)
	} else {
		seriesStore = store.NewMemorySeriesStore(store.DefaultNamespace)
	}

	// プロバイダーチェーン: Binance → (制限時のみ)ミラー → Kraken → Coinbase
	// タイムアウトは各プロバイダーの設定に従う（ミラーは本体と共有）
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

	// Repository
	symbolRepo := symbollistadapters.NewSymbolRepository(db)

	// Usecase
	seriesUC := candlesusecase.NewSeriesUsecase(chain, seriesStore)
	symbolUC := symbollistusecase.NewSymbolUsecase(symbolRepo)

	// Handler
	candlesH := candleshandler.NewCandleHandler(seriesUC)
	symbolH := symbollisthandler.NewSymbolHandler(symbolUC)

	// ルータ生成
	r := router.NewRouter(candlesH, symbolH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
