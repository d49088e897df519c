package usecase

import (
	"context"
	"log/slog"

	"marketdata_backend/internal/feature/candles/domain/entity"
	"marketdata_backend/internal/shared/ratelimiter"
)

// RefreshDays はバッチ更新で取得する日数です。鮮度ウィンドウ上限いっぱいの
// シリーズを保存しておくことで、読み取り側のどの日数指定でも再利用できます。
const RefreshDays = entity.MaxDays

// SeriesRefresher は1銘柄の強制更新を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider.
type SeriesRefresher interface {
	RefreshDailySeries(ctx context.Context, symbol string, days int) (entity.Series, string, error)
}

// RefreshUsecase はウォッチリスト上の全銘柄のシリーズを順番に強制更新する
// ユースケースです。プロバイダーのレートリミットを考慮してリクエスト間に待機を挟みます。
type RefreshUsecase struct {
	series      SeriesRefresher
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewRefreshUsecase は新しい RefreshUsecase を作成します。
func NewRefreshUsecase(series SeriesRefresher, rl ratelimiter.RateLimiterInterface) *RefreshUsecase {
	return &RefreshUsecase{series: series, rateLimiter: rl}
}

// RefreshAll は指定された全銘柄を順番に強制更新します。
// 1銘柄の失敗ではバッチ全体を止めず、ログに出力して次の銘柄へ進みます。
func (ru *RefreshUsecase) RefreshAll(ctx context.Context, symbols []string, days int) error {
	for _, s := range symbols {
		ru.rateLimiter.WaitIfNeeded()

		series, key, err := ru.series.RefreshDailySeries(ctx, s, days)
		if err != nil {
			slog.Error("failed to refresh series", "symbol", s, "days", days, "error", err)
			continue
		}
		slog.Info("series refreshed",
			"symbol", s, "provider", series.Provider, "candles", len(series.Candles), "key", key)
	}
	return nil
}
