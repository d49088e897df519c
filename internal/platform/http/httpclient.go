package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient は上流マーケットデータAPI呼び出し用のHTTPクライアントを作成します。
//
// プロバイダーチェーンは直列にフォールバックするため、リクエスト全体のタイムアウトが
// 最悪ケースのレイテンシ上限（各プロバイダーのタイムアウトの合計）を決めます。
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため、常にこのクライアントを使用すること
//   - Transportは接続の安定性とリソース管理のために明示的に設定
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
