// Package handler はcandlesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"marketdata_backend/internal/feature/candles/domain"
	"marketdata_backend/internal/feature/candles/domain/entity"
	"marketdata_backend/internal/feature/candles/transport/http/dto"
	"marketdata_backend/internal/feature/candles/usecase"
)

// SeriesUsecase は日足シリーズ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SeriesUsecase interface {
	GetDailySeries(ctx context.Context, symbol string, days int, maxAge time.Duration) (entity.Series, string, error)
	RefreshDailySeries(ctx context.Context, symbol string, days int) (entity.Series, string, error)
}

// CandleHandler は日足シリーズのHTTPリクエストを処理します。
type CandleHandler struct {
	uc SeriesUsecase
}

// NewCandleHandler は指定されたusecaseでCandleHandlerの新しいインスタンスを生成します。
func NewCandleHandler(uc SeriesUsecase) *CandleHandler {
	return &CandleHandler{uc: uc}
}

// GetDailyHandler は日足シリーズをJSONで返します。キャッシュが鮮度ウィンドウ内で
// あればそれを、なければ上流から取得した結果を返します。
//
// エンドポイント例:
// GET /api/v1/candles/daily?symbol=BTCUSDT&days=90&maxAgeSeconds=300
func (h *CandleHandler) GetDailyHandler(c *gin.Context) {
	symbol := c.DefaultQuery("symbol", usecase.DefaultSymbol)
	// 数値変換の失敗は0のままusecaseに渡し、クランプはusecase側で行う
	days, _ := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(usecase.DefaultDays)))
	maxAgeSec, err := strconv.Atoi(c.Query("maxAgeSeconds"))
	maxAge := time.Duration(maxAgeSec) * time.Second
	if err != nil {
		maxAge = usecase.DefaultMaxAge
	}

	series, source, err := h.uc.GetDailySeries(c.Request.Context(), symbol, days, maxAge)
	if err != nil && !errors.Is(err, domain.ErrStoreWrite) {
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrInvalidSymbol) {
			status = http.StatusBadRequest
		}
		c.JSON(status, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out := dto.NewSeriesResponse(series, source)
	if err != nil {
		// 取得自体は成功しているので、保存失敗は本文で通知する
		out.StoreError = err.Error()
	}
	c.JSON(http.StatusOK, out)
}

// RefreshHandler は鮮度チェックを飛ばして上流から再取得し、保存済みシリーズを
// 上書きします。
//
// エンドポイント例:
// POST /api/v1/candles/refresh {"symbol":"BTCUSDT","days":90}
func (h *CandleHandler) RefreshHandler(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if req.Symbol == "" {
		req.Symbol = usecase.DefaultSymbol
	}
	if req.Days == 0 {
		req.Days = usecase.DefaultDays
	}

	series, key, err := h.uc.RefreshDailySeries(c.Request.Context(), req.Symbol, req.Days)
	if err != nil && !errors.Is(err, domain.ErrStoreWrite) {
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrInvalidSymbol) {
			status = http.StatusBadRequest
		}
		c.JSON(status, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out := dto.RefreshResponse{
		SeriesResponse: dto.NewSeriesResponse(series, usecase.SourceUpstream),
		Key:            key,
	}
	if err != nil {
		out.StoreError = err.Error()
	}
	c.JSON(http.StatusOK, out)
}
