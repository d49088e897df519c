// Package router はHTTPルーティングを構成します。
package router

import (
	"github.com/gin-gonic/gin"

	candleshandler "marketdata_backend/internal/feature/candles/transport/handler"
	symbollisthandler "marketdata_backend/internal/feature/symbollist/transport/handler"
	"marketdata_backend/internal/platform/http/handler"
)

// NewRouter はすべてのエンドポイントを登録したginエンジンを返します。
func NewRouter(candles *candleshandler.CandleHandler, symbols *symbollisthandler.SymbolHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	v1 := r.Group("/api/v1")
	{
		// 鮮度ゲート付き読み取り
		v1.GET("/candles/daily", candles.GetDailyHandler)
		// 強制リフレッシュ
		v1.POST("/candles/refresh", candles.RefreshHandler)
		// ウォッチリスト一覧
		v1.GET("/symbols", symbols.List)
	}

	return r
}
