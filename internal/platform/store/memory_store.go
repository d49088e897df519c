package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"marketdata_backend/internal/feature/candles/domain/entity"
	"marketdata_backend/internal/feature/candles/usecase"
)

// MemorySeriesStore is the in-process twin of RedisSeriesStore, used when no
// Redis is configured and in tests. Same contract: whole-series overwrite per
// key, no merging. Entries never expire; freshness is the reader's concern.
type MemorySeriesStore struct {
	namespace string

	mu    sync.RWMutex
	items map[string]entity.Series
}

var _ usecase.SeriesStore = (*MemorySeriesStore)(nil)

// NewMemorySeriesStore creates an empty in-memory series store.
func NewMemorySeriesStore(namespace string) *MemorySeriesStore {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &MemorySeriesStore{
		namespace: namespace,
		items:     make(map[string]entity.Series),
	}
}

// Key returns the namespaced storage key for a (symbol, days) pair.
func (m *MemorySeriesStore) Key(symbol string, days int) string {
	return fmt.Sprintf("%s:%s:%d", m.namespace, strings.ToLower(symbol), days)
}

// Get returns the stored series for the key, reporting absence as ok=false.
func (m *MemorySeriesStore) Get(_ context.Context, symbol string, days int) (entity.Series, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.items[m.Key(symbol, days)]
	return s, ok, nil
}

// Put overwrites the entry stored under the series key.
func (m *MemorySeriesStore) Put(_ context.Context, s entity.Series) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[m.Key(s.Symbol, s.Days)] = s
	return nil
}
