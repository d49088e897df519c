package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"marketdata_backend/internal/feature/symbollist/domain/entity"
	"marketdata_backend/internal/feature/symbollist/transport/handler"
)

// mockSymbolUsecase はSymbolUsecaseインターフェースのモック実装です。
type mockSymbolUsecase struct {
	ListActiveSymbolsFunc func(ctx context.Context) ([]entity.Symbol, error)
}

func (m *mockSymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return m.ListActiveSymbolsFunc(ctx)
}

// TestSymbolHandler_List はListハンドラーのレスポンス形式を検証します。
func TestSymbolHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockList       func(ctx context.Context) ([]entity.Symbol, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns code and name only",
			mockList: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{
					{ID: 1, Code: "BTCUSDT", Name: "Bitcoin / Tether", IsActive: true, SortKey: 1},
					{ID: 2, Code: "ETHUSDT", Name: "Ethereum / Tether", IsActive: true, SortKey: 2},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"code":"BTCUSDT","name":"Bitcoin / Tether"},{"code":"ETHUSDT","name":"Ethereum / Tether"}]`,
		},
		{
			name: "success: empty watchlist",
			mockList: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "error: repository failure",
			mockList: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, errors.New("database is locked")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"database is locked"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewSymbolHandler(&mockSymbolUsecase{ListActiveSymbolsFunc: tt.mockList})

			router := gin.New()
			router.GET("/api/v1/symbols", h.List)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/api/v1/symbols", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
