package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketdata_backend/internal/feature/symbollist/domain/entity"
	"marketdata_backend/internal/feature/symbollist/usecase"
)

// mockSymbolRepository はSymbolRepositoryインターフェースのモック実装です。
type mockSymbolRepository struct {
	ListActiveFunc      func(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodesFunc func(ctx context.Context) ([]string, error)
}

func (m *mockSymbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockSymbolRepository) ListActiveCodes(ctx context.Context) ([]string, error) {
	if m.ListActiveCodesFunc != nil {
		return m.ListActiveCodesFunc(ctx)
	}
	return nil, nil
}

// TestSymbolUsecase_ListActiveSymbols はリポジトリの結果とエラーがそのまま
// 透過されることを検証します。
func TestSymbolUsecase_ListActiveSymbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		mockListActive func(ctx context.Context) ([]entity.Symbol, error)
		expected       []entity.Symbol
		wantErr        bool
	}{
		{
			name: "success: returns active symbols",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{
					{ID: 1, Code: "BTCUSDT", Name: "Bitcoin / Tether", IsActive: true, SortKey: 1},
					{ID: 2, Code: "ETHUSDT", Name: "Ethereum / Tether", IsActive: true, SortKey: 2},
				}, nil
			},
			expected: []entity.Symbol{
				{ID: 1, Code: "BTCUSDT", Name: "Bitcoin / Tether", IsActive: true, SortKey: 1},
				{ID: 2, Code: "ETHUSDT", Name: "Ethereum / Tether", IsActive: true, SortKey: 2},
			},
		},
		{
			name: "success: empty list",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{}, nil
			},
			expected: []entity.Symbol{},
		},
		{
			name: "error: repository failure propagates",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, errors.New("database is locked")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewSymbolUsecase(&mockSymbolRepository{ListActiveFunc: tt.mockListActive})
			got, err := uc.ListActiveSymbols(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestSymbolUsecase_ListActiveCodes はコード一覧の透過を検証します。
func TestSymbolUsecase_ListActiveCodes(t *testing.T) {
	t.Parallel()

	uc := usecase.NewSymbolUsecase(&mockSymbolRepository{
		ListActiveCodesFunc: func(ctx context.Context) ([]string, error) {
			return []string{"BTCUSDT", "ETHUSDT"}, nil
		},
	})

	codes, err := uc.ListActiveCodes(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"BTCUSDT", "ETHUSDT"}, codes)
}
