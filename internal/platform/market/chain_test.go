package market_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketdata_backend/internal/feature/candles/domain"
	"marketdata_backend/internal/feature/candles/domain/entity"
	"marketdata_backend/internal/platform/market"
)

// stubSource は固定の結果を返すテスト用ソースです。
type stubSource struct {
	name  string
	res   entity.Series
	err   error
	calls int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) FetchDaily(_ context.Context, _ string, _ int) (entity.Series, error) {
	s.calls++
	return s.res, s.err
}

func okSeries(provider string) entity.Series {
	return entity.Series{
		Provider:  provider,
		Symbol:    "BTCUSDT",
		Interval:  entity.IntervalDaily,
		Days:      90,
		FetchedAt: time.Now().UTC(),
	}
}

// TestChain_PrimarySucceeds は一次ソース成功時に後続が呼ばれないことを
// 検証します。
func TestChain_PrimarySucceeds(t *testing.T) {
	t.Parallel()

	primary := &stubSource{name: "binance", res: okSeries("binance")}
	mirror := &stubSource{name: "binance"}
	fallback := &stubSource{name: "kraken"}

	chain := market.NewChain(primary, mirror, fallback)
	series, err := chain.FetchDaily(context.Background(), "BTCUSDT", 90)

	require.NoError(t, err)
	assert.Equal(t, "binance", series.Provider)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, mirror.calls)
	assert.Equal(t, 0, fallback.calls)
}

// TestChain_MirrorOnRestriction は地域制限エラーの場合にのみミラーが
// 試行されることを検証します。
func TestChain_MirrorOnRestriction(t *testing.T) {
	t.Parallel()

	primary := &stubSource{name: "binance", err: domain.ErrRestrictedLocation}
	mirror := &stubSource{name: "binance", res: okSeries("binance")}
	fallback := &stubSource{name: "kraken"}

	chain := market.NewChain(primary, mirror, fallback)
	series, err := chain.FetchDaily(context.Background(), "BTCUSDT", 90)

	require.NoError(t, err)
	assert.Equal(t, "binance", series.Provider)
	assert.Equal(t, 1, mirror.calls)
	assert.Equal(t, 0, fallback.calls)
}

// TestChain_MirrorSkippedOnOtherError は制限以外の失敗ではミラーを飛ばして
// フォールバックへ進むことを検証します。
func TestChain_MirrorSkippedOnOtherError(t *testing.T) {
	t.Parallel()

	primary := &stubSource{name: "binance", err: errors.New("http 500")}
	mirror := &stubSource{name: "binance"}
	fallback := &stubSource{name: "kraken", res: okSeries("kraken")}

	chain := market.NewChain(primary, mirror, fallback)
	series, err := chain.FetchDaily(context.Background(), "BTCUSDT", 90)

	require.NoError(t, err)
	assert.Equal(t, "kraken", series.Provider)
	assert.Equal(t, 0, mirror.calls)
	assert.Equal(t, 1, fallback.calls)
}

// TestChain_FallbackOrder はフォールバックが宣言順に試行され、最初の成功で
// 打ち切られることを検証します。
func TestChain_FallbackOrder(t *testing.T) {
	t.Parallel()

	primary := &stubSource{name: "binance", err: errors.New("down")}
	first := &stubSource{name: "kraken", err: errors.New("down")}
	second := &stubSource{name: "coinbase", res: okSeries("coinbase")}
	third := &stubSource{name: "extra"}

	chain := market.NewChain(primary, nil, first, second, third)
	series, err := chain.FetchDaily(context.Background(), "BTCUSDT", 90)

	require.NoError(t, err)
	assert.Equal(t, "coinbase", series.Provider)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 0, third.calls)
}

// TestChain_AllFail は全滅時に各試行の失敗を包んだ集約エラーが返ることを
// 検証します。
func TestChain_AllFail(t *testing.T) {
	t.Parallel()

	primary := &stubSource{name: "binance", err: domain.ErrRestrictedLocation}
	mirror := &stubSource{name: "binance", err: errors.New("mirror down")}
	fallback := &stubSource{name: "kraken", err: errors.New("kraken down")}

	chain := market.NewChain(primary, mirror, fallback)
	_, err := chain.FetchDaily(context.Background(), "BTCUSDT", 90)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAllProvidersFailed)
	assert.ErrorIs(t, err, domain.ErrRestrictedLocation)
	assert.Contains(t, err.Error(), "mirror down")
	assert.Contains(t, err.Error(), "kraken down")
}

// TestChain_InvalidSymbol は不正シンボルがどのソースにも到達しないことを
// 検証します。
func TestChain_InvalidSymbol(t *testing.T) {
	t.Parallel()

	primary := &stubSource{name: "binance"}
	chain := market.NewChain(primary, nil)

	_, err := chain.FetchDaily(context.Background(), "BTC-USDT", 90)

	assert.ErrorIs(t, err, domain.ErrInvalidSymbol)
	assert.Equal(t, 0, primary.calls)
}
