// Package market implements the provider chain fetcher: a priority-ordered
// list of capability-equivalent upstream sources, tried sequentially with
// early exit on the first success.
package market

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"marketdata_backend/internal/feature/candles/domain"
	"marketdata_backend/internal/feature/candles/domain/entity"
	"marketdata_backend/internal/feature/candles/usecase"
)

// Source is one upstream market-data API in the fallback chain.
type Source interface {
	Name() string
	FetchDaily(ctx context.Context, symbol string, days int) (entity.Series, error)
}

// Chain tries the primary source first. When the primary fails with a
// restricted-location error the regional mirror of the same provider is
// tried next; any other failure skips straight to the fallback sources.
// Attempts are sequential, never parallel, so the worst-case latency is
// bounded by the sum of the per-source HTTP timeouts and every failure can
// be attributed to one source.
type Chain struct {
	primary   Source
	mirror    Source
	fallbacks []Source
}

// ChainがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*Chain)(nil)

// NewChain builds a provider chain. mirror may be nil when the primary has
// no regional mirror.
func NewChain(primary, mirror Source, fallbacks ...Source) *Chain {
	return &Chain{primary: primary, mirror: mirror, fallbacks: fallbacks}
}

// FetchDaily returns the daily series from the first source that succeeds.
// It fails only when every source has failed, with an aggregate error that
// wraps each attempt.
func (c *Chain) FetchDaily(ctx context.Context, symbol string, days int) (entity.Series, error) {
	sym, err := entity.NormalizeSymbol(symbol)
	if err != nil {
		return entity.Series{}, err
	}
	days = entity.ClampDays(days)

	var attempts []error

	series, err := c.primary.FetchDaily(ctx, sym, days)
	if err == nil {
		return series, nil
	}
	attempts = append(attempts, fmt.Errorf("%s: %w", c.primary.Name(), err))
	slog.Warn("primary provider failed", "provider", c.primary.Name(), "symbol", sym, "error", err)

	if c.mirror != nil && errors.Is(err, domain.ErrRestrictedLocation) {
		series, merr := c.mirror.FetchDaily(ctx, sym, days)
		if merr == nil {
			return series, nil
		}
		attempts = append(attempts, fmt.Errorf("%s mirror: %w", c.mirror.Name(), merr))
		slog.Warn("mirror provider failed", "provider", c.mirror.Name(), "symbol", sym, "error", merr)
	}

	for _, src := range c.fallbacks {
		series, ferr := src.FetchDaily(ctx, sym, days)
		if ferr == nil {
			return series, nil
		}
		attempts = append(attempts, fmt.Errorf("%s: %w", src.Name(), ferr))
		slog.Warn("fallback provider failed", "provider", src.Name(), "symbol", sym, "error", ferr)
	}

	return entity.Series{}, fmt.Errorf("%w: %w", domain.ErrAllProvidersFailed, errors.Join(attempts...))
}
