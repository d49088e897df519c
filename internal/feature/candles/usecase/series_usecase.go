// Package usecase はローソク足シリーズ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketdata_backend/internal/feature/candles/domain"
	"marketdata_backend/internal/feature/candles/domain/entity"
)

const (
	// DefaultSymbol は読み取りリクエストのデフォルト銘柄です。
	DefaultSymbol = "BTCUSDT"
	// DefaultDays はデフォルトの取得日数です。
	DefaultDays = 90
	// DefaultMaxAge はキャッシュ鮮度ウィンドウのデフォルト値です。
	DefaultMaxAge = 300 * time.Second
	// MaxMaxAge は鮮度ウィンドウの上限（24時間）です。
	MaxMaxAge = 86400 * time.Second
)

// レスポンスに付与されるデータソースタグ。
const (
	SourceCache    = "cache"
	SourceUpstream = "upstream"
)

// MarketRepository は上流プロバイダーからシリーズを取得するフェッチャーを抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider.
type MarketRepository interface {
	FetchDaily(ctx context.Context, symbol string, days int) (entity.Series, error)
}

// SeriesStore はシリーズ全体をキー単位で保存するキーバリューストアを抽象化します。
// 実装はメモリ、ファイル、オブジェクトストアのいずれでもよく、上書きのみでマージは行いません。
type SeriesStore interface {
	// Get は保存済みシリーズを返します。存在しない場合は ok=false（エラーではない）。
	Get(ctx context.Context, symbol string, days int) (entity.Series, bool, error)
	// Put はシリーズをキーに対して全体上書きで保存します。
	Put(ctx context.Context, s entity.Series) error
	// Key は(symbol, days)に対応する保存先キーを返します。
	Key(symbol string, days int) string
}

// SeriesUsecase は鮮度ゲート付きキャッシュとプロバイダーチェーンを組み合わせた
// シリーズ取得のユースケースです。
type SeriesUsecase struct {
	market MarketRepository
	store  SeriesStore
}

// NewSeriesUsecase はSeriesUsecaseの新しいインスタンスを生成します。
func NewSeriesUsecase(market MarketRepository, store SeriesStore) *SeriesUsecase {
	return &SeriesUsecase{market: market, store: store}
}

// ClampMaxAge は鮮度ウィンドウを[0, MaxMaxAge]にクランプします。
func ClampMaxAge(maxAge time.Duration) time.Duration {
	if maxAge < 0 {
		return 0
	}
	if maxAge > MaxMaxAge {
		return MaxMaxAge
	}
	return maxAge
}

// GetDailySeries は指定銘柄の日足シリーズを返します。
// キャッシュが存在して鮮度ウィンドウ内であればそれを "cache" タグ付きで返し、
// そうでなければプロバイダーチェーンで取得して保存し "upstream" タグ付きで返します。
// ストアの読み取り失敗は致命的エラーではなくキャッシュミスとして扱います。
func (su *SeriesUsecase) GetDailySeries(ctx context.Context, symbol string, days int, maxAge time.Duration) (entity.Series, string, error) {
	sym, err := entity.NormalizeSymbol(symbol)
	if err != nil {
		return entity.Series{}, "", err
	}
	days = entity.ClampDays(days)
	maxAge = ClampMaxAge(maxAge)

	cached, ok, err := su.store.Get(ctx, sym, days)
	if err != nil {
		slog.Warn("series store read failed, treating as cache miss",
			"symbol", sym, "days", days, "error", err)
	} else if ok && cached.Fresh(time.Now(), maxAge) {
		return cached, SourceCache, nil
	}

	fetched, err := su.market.FetchDaily(ctx, sym, days)
	if err != nil {
		return entity.Series{}, "", err
	}

	if err := su.store.Put(ctx, fetched); err != nil {
		// 取得済みのシリーズは呼び出し元に返しつつ、書き込み失敗を通知する
		return fetched, SourceUpstream, fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}
	return fetched, SourceUpstream, nil
}

// RefreshDailySeries は鮮度チェックを行わず、必ず上流から取得して保存済みシリーズを
// 上書きします。シリーズと保存先キーを返します。
func (su *SeriesUsecase) RefreshDailySeries(ctx context.Context, symbol string, days int) (entity.Series, string, error) {
	sym, err := entity.NormalizeSymbol(symbol)
	if err != nil {
		return entity.Series{}, "", err
	}
	days = entity.ClampDays(days)

	fetched, err := su.market.FetchDaily(ctx, sym, days)
	if err != nil {
		return entity.Series{}, "", err
	}

	key := su.store.Key(sym, days)
	if err := su.store.Put(ctx, fetched); err != nil {
		return fetched, key, fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}
	return fetched, key, nil
}
