package service

import (
	"context"

	"MarketMood/internal/domain/models"
)

// SeriesProvider resolves a daily RSI series for a symbol, newest date first,
// length <= days. Implementations never fail: an unreachable upstream yields
// a neutral synthesized series, so callers always get a usable result.
type SeriesProvider interface {
	GetSeries(ctx context.Context, symbol string, days int) []models.RSIPoint
}

// SentimentProvider resolves the aggregate news sentiment for one
// (symbol, date). Upstream failures map to the zero result, never an error.
type SentimentProvider interface {
	GetSentiment(ctx context.Context, symbol, date string) models.SentimentResult
}
