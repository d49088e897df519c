package entity

import (
	"fmt"
	"regexp"
	"strings"

	"marketdata_backend/internal/feature/candles/domain"
)

// symbolPattern はシンボルの許可リストパターンです。大文字英数字3〜20文字のみ受け付けます。
var symbolPattern = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// NormalizeSymbol trims and uppercases a raw symbol and validates it against
// the allowlist pattern. Anything else fails with ErrInvalidSymbol before a
// single provider is attempted.
func NormalizeSymbol(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if !symbolPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSymbol, raw)
	}
	return s, nil
}

// Pair is the base/quote split of a symbol (BTCUSDT -> BTC/USDT).
// Providers that address markets by base and quote separately (Kraken,
// Coinbase) build their pair identifier from this, applying their own
// asset aliases on top.
type Pair struct {
	Base  string
	Quote string
}

// knownQuotes is checked in order when splitting a symbol, so longer
// variants must come before their prefixes (USDT before USD).
var knownQuotes = []string{
	"USDT", "USDC", "TUSD", "BUSD", "USD", "EUR", "GBP", "JPY", "BTC", "ETH",
}

// SplitPair splits a normalized symbol into base and quote using the known
// quote-asset suffix list. A symbol without a recognized quote keeps the
// whole string as base and defaults the quote to USD.
func SplitPair(symbol string) Pair {
	for _, q := range knownQuotes {
		if strings.HasSuffix(symbol, q) && len(symbol) > len(q) {
			return Pair{Base: strings.TrimSuffix(symbol, q), Quote: q}
		}
	}
	return Pair{Base: symbol, Quote: "USD"}
}
