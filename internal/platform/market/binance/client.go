package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"marketdata_backend/internal/feature/candles/domain"
	"marketdata_backend/internal/feature/candles/domain/entity"
	"marketdata_backend/internal/platform/market/binance/dto"
)

// ProviderName is the provenance tag carried by series fetched from Binance.
// The mirror is the same provider on another host, so it carries the same tag.
const ProviderName = "binance"

// Client fetches daily klines from one Binance-compatible host.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient targets the primary Binance host.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{baseURL: cfg.BaseURL, client: client}
}

// NewMirrorClient targets the regional mirror host.
func NewMirrorClient(cfg Config, client *http.Client) *Client {
	return &Client{baseURL: cfg.MirrorURL, client: client}
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return ProviderName
}

// FetchDaily は日足ローソク足をdays本取得します。
// Binanceは古い順で返すため並べ替えは不要です。
func (c *Client) FetchDaily(ctx context.Context, symbol string, days int) (entity.Series, error) {
	sym, err := entity.NormalizeSymbol(symbol)
	if err != nil {
		return entity.Series{}, err
	}
	days = entity.ClampDays(days)

	q := url.Values{}
	q.Set("symbol", sym)
	q.Set("interval", entity.IntervalDaily)
	q.Set("limit", strconv.Itoa(days))
	reqURL := fmt.Sprintf("%s/api/v3/klines?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.Series{}, fmt.Errorf("build request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return entity.Series{}, fmt.Errorf("request klines: %w", err)
	}
	defer func() {
		if cerr := res.Body.Close(); cerr != nil {
			slog.Warn("failed to close response body", "provider", ProviderName, "error", cerr)
		}
	}()

	// 地域制限下ではBinanceは451（環境によっては403）を返す
	if res.StatusCode == http.StatusUnavailableForLegalReasons || res.StatusCode == http.StatusForbidden {
		return entity.Series{}, fmt.Errorf("http %d: %w", res.StatusCode, domain.ErrRestrictedLocation)
	}
	if res.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return entity.Series{}, fmt.Errorf("http %d: %s", res.StatusCode, apiErr.Message)
		}
		return entity.Series{}, fmt.Errorf("http %d", res.StatusCode)
	}

	var rows []dto.Kline
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		return entity.Series{}, fmt.Errorf("decode klines: %w", err)
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

func toCandle(r dto.Kline) (entity.Candle, error) {
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
	c.OpenTime = time.UnixMilli(r.OpenTime).UTC()
	c.CloseTime = time.UnixMilli(r.CloseTime).UTC()
	return c, nil
}
