package kraken

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"marketdata_backend/internal/feature/candles/domain/entity"
	"marketdata_backend/internal/platform/market/kraken/dto"
)

// ProviderName is the provenance tag carried by series fetched from Kraken.
const ProviderName = "kraken"

// assetAliases は一般的な資産コードからKraken独自の表記への変換表です。
var assetAliases = map[string]string{
	"BTC":  "XBT",
	"DOGE": "XDG",
}

// Client fetches daily OHLC data from Kraken.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Kraken client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{baseURL: cfg.BaseURL, client: client}
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return ProviderName
}

// FetchDaily は日足OHLCを取得し、末尾days本に切り詰めて返します。
// Krakenはinterval=1440で古い順に最大720本を返します。
func (c *Client) FetchDaily(ctx context.Context, symbol string, days int) (entity.Series, error) {
	sym, err := entity.NormalizeSymbol(symbol)
	if err != nil {
		return entity.Series{}, err
	}
	days = entity.ClampDays(days)

	q := url.Values{}
	q.Set("pair", pairName(entity.SplitPair(sym)))
	q.Set("interval", "1440")
	reqURL := fmt.Sprintf("%s/0/public/OHLC?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.Series{}, fmt.Errorf("build request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return entity.Series{}, fmt.Errorf("request ohlc: %w", err)
	}
	defer func() {
		if cerr := res.Body.Close(); cerr != nil {
			slog.Warn("failed to close response body", "provider", ProviderName, "error", cerr)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return entity.Series{}, fmt.Errorf("http %d", res.StatusCode)
	}

	var body dto.OHLCResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.Series{}, fmt.Errorf("decode ohlc: %w", err)
	}
	// KrakenはHTTP 200のままerror配列でエラーを返す
	if len(body.Error) > 0 {
		return entity.Series{}, fmt.Errorf("api error: %s", strings.Join(body.Error, ", "))
	}

	rows, err := body.Rows()
	if err != nil {
		return entity.Series{}, err
	}
	if len(rows) > days {
		rows = rows[len(rows)-days:]
	}

	candles := make([]entity.Candle, 0, len(rows))
	for _, r := range rows {
		c, err := toCandle(r)
		if err != nil {
			return entity.Series{}, err
		}
		candles = append(candles, c)
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

// pairName はKrakenに渡すペア表記を組み立てます。
func pairName(p entity.Pair) string {
	base, quote := p.Base, p.Quote
	if a, ok := assetAliases[base]; ok {
		base = a
	}
	if a, ok := assetAliases[quote]; ok {
		quote = a
	}
	return base + quote
}

func toCandle(r dto.OHLCRow) (entity.Candle, error) {
	var c entity.Candle
	for _, f := range []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"open", r.Open, &c.Open},
		{"high", r.High, &c.High},
		{"low", r.Low, &c.Low},
		{"close", r.Close, &c.Close},
		{"volume", r.Volume, &c.Volume},
	} {
		v, err := strconv.ParseFloat(f.raw, 64)
		if err != nil {
			return entity.Candle{}, fmt.Errorf("parse %s %q: %w", f.name, f.raw, err)
		}
		*f.dst = v
	}
	c.OpenTime = time.Unix(r.Time, 0).UTC()
	c.CloseTime = c.OpenTime.Add(24 * time.Hour)
	return c, nil
}
