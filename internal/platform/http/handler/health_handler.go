// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health は /healthz を処理します。ロードバランサーと死活監視の両方から
// 叩かれるため、GET以外のメソッドにも応答し、結果はキャッシュさせません。
// 上流プロバイダーやストアへの疎通確認は行わない軽量チェックです。
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "marketdata"})
	}
}
