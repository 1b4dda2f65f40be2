package models

import "strings"

// NasdaqSymbols is the fixed allow-list of supported tickers
// (top 20 NASDAQ stocks by market cap).
var NasdaqSymbols = []string{
	"AAPL", "MSFT", "AMZN", "NVDA", "GOOGL",
	"META", "TSLA", "AVGO", "PEP", "COST",
	"CSCO", "ADBE", "INTC", "CMCSA", "AMD",
	"TXN", "QCOM", "AMGN", "HON", "INTU",
}

var symbolSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(NasdaqSymbols))
	for _, s := range NasdaqSymbols {
		m[s] = struct{}{}
	}
	return m
}()

// IsAllowedSymbol reports whether s (case-insensitive) is a supported ticker.
func IsAllowedSymbol(s string) bool {
	_, ok := symbolSet[strings.ToUpper(s)]
	return ok
}
