// Package store provides keyed series store implementations for the
// usecase SeriesStore interface. One JSON blob per (symbol, days) key,
// overwritten wholesale, never merged.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"marketdata_backend/internal/feature/candles/domain/entity"
	"marketdata_backend/internal/feature/candles/usecase"
)

// DefaultNamespace is the key prefix used when none is configured.
const DefaultNamespace = "candles"

// RedisSeriesStore keeps whole candle series as JSON blobs in Redis.
type RedisSeriesStore struct {
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// RedisSeriesStoreがSeriesStoreを実装していることをコンパイル時に検証します。
var _ usecase.SeriesStore = (*RedisSeriesStore)(nil)

// NewRedisSeriesStore creates a Redis-backed series store.
// If ttl is 0 it defaults to 24 hours, the maximum staleness window a read
// may request, so an expired entry could never have been served anyway.
// If namespace is empty it uses DefaultNamespace.
func NewRedisSeriesStore(rdb *redis.Client, ttl time.Duration, namespace string) *RedisSeriesStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &RedisSeriesStore{rdb: rdb, ttl: ttl, namespace: namespace}
}

// Key returns the namespaced storage key for a (symbol, days) pair.
// The symbol is lower-cased so the key is stable regardless of request casing.
func (r *RedisSeriesStore) Key(symbol string, days int) string {
	return fmt.Sprintf("%s:%s:%d", r.namespace, strings.ToLower(symbol), days)
}

// Get returns the stored series for the key. Absence is reported as
// ok=false, not as an error. A blob that no longer unmarshals is deleted
// and reported as a miss.
func (r *RedisSeriesStore) Get(ctx context.Context, symbol string, days int) (entity.Series, bool, error) {
	key := r.Key(symbol, days)

	b, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.Series{}, false, nil
		}
		return entity.Series{}, false, err
	}

	var s entity.Series
	if err := json.Unmarshal(b, &s); err != nil {
		// Corrupted entry: drop it and fall through to a refetch.
		_ = r.rdb.Del(ctx, key).Err()
		return entity.Series{}, false, nil
	}
	return s, true, nil
}

// Put overwrites the blob stored under the series key.
func (r *RedisSeriesStore) Put(ctx context.Context, s entity.Series) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, r.Key(s.Symbol, s.Days), b, r.ttl).Err()
}
