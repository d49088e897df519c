package coinbase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"marketdata_backend/internal/feature/candles/domain/entity"
	"marketdata_backend/internal/platform/market/coinbase/dto"
)

// ProviderName is the provenance tag carried by series fetched from Coinbase.
const ProviderName = "coinbase"

// quoteAliases はCoinbaseの商品表記に合わせたクオート資産の変換表です。
// CoinbaseのスポットはUSDT建てではなくUSD建てで提供されます。
var quoteAliases = map[string]string{
	"USDT": "USD",
}

// Client fetches daily candles from Coinbase Exchange.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Coinbase client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{baseURL: cfg.BaseURL, client: client}
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return ProviderName
}

// FetchDaily は日足ローソク足を取得します。Coinbaseは新しい順で最大300本
// 返すため、先頭days本を取って昇順に並べ替えます。
func (c *Client) FetchDaily(ctx context.Context, symbol string, days int) (entity.Series, error) {
	sym, err := entity.NormalizeSymbol(symbol)
	if err != nil {
		return entity.Series{}, err
	}
	days = entity.ClampDays(days)

	reqURL := fmt.Sprintf("%s/products/%s/candles?granularity=86400", c.baseURL, productID(entity.SplitPair(sym)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.Series{}, fmt.Errorf("build request: %w", err)
	}
	// Coinbase rejects requests without a User-Agent.
	req.Header.Set("User-Agent", "marketdata-backend/1.0")

	res, err := c.client.Do(req)
	if err != nil {
		return entity.Series{}, fmt.Errorf("request candles: %w", err)
	}
	defer func() {
		if cerr := res.Body.Close(); cerr != nil {
			slog.Warn("failed to close response body", "provider", ProviderName, "error", cerr)
		}
	}()

	if res.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return entity.Series{}, fmt.Errorf("http %d: %s", res.StatusCode, apiErr.Message)
		}
		return entity.Series{}, fmt.Errorf("http %d", res.StatusCode)
	}

	var rows []dto.CandleRow
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		return entity.Series{}, fmt.Errorf("decode candles: %w", err)
	}
	if len(rows) > days {
		rows = rows[:days]
	}

	candles := make([]entity.Candle, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		open := time.Unix(r.Time(), 0).UTC()
		candles = append(candles, entity.Candle{
			OpenTime:  open,
			CloseTime: open.Add(24 * time.Hour),
			Open:      r.Open(),
			High:      r.High(),
			Low:       r.Low(),
			Close:     r.Close(),
			Volume:    r.Volume(),
		})
	}

	return entity.Series{
		Provider:  ProviderName,
		Symbol:    sym,
		Interval:  entity.IntervalDaily,
		Days:      days,
		FetchedAt: time.Now().UTC(),
		Candles:   candles,
	}, nil
}

// productID はCoinbaseの商品ID（BASE-QUOTE形式）を組み立てます。
func productID(p entity.Pair) string {
	quote := p.Quote
	if a, ok := quoteAliases[quote]; ok {
		quote = a
	}
	return p.Base + "-" + quote
}
