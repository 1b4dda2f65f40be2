package repository

import (
	"context"
	"errors"

	"MarketMood/internal/domain/models"
)

// ErrNotFound is returned by MoodStore.Get when no record exists for the key.
var ErrNotFound = errors.New("mood not found")

// MoodStore is the durable tier of the cache: one row per (symbol, date),
// insert-or-replace semantics, atomic per key.
type MoodStore interface {
	Get(ctx context.Context, symbol, date string) (*models.DailyMood, error)
	Upsert(ctx context.Context, m *models.DailyMood) error
	Recent(ctx context.Context, symbol string, limit int) ([]models.DailyMood, error)
	Health(ctx context.Context) error
	Close() error
}

// Publisher emits freshly computed moods to a message backend.
type Publisher interface {
	Publish(ctx context.Context, m *models.DailyMood) error
	PublishBatch(ctx context.Context, moods []*models.DailyMood) error
	Close() error
}

// RSIFetcher pulls a full daily RSI series for a symbol from the
// technical-indicator upstream.
type RSIFetcher interface {
	FetchSeries(ctx context.Context, symbol string) ([]models.RSIPoint, error)
}

// ArticleSearcher queries the news-search upstream for articles mentioning
// symbol published on or after from (ISO date), sorted by publish time.
type ArticleSearcher interface {
	Search(ctx context.Context, symbol, from string) ([]models.NewsArticle, error)
}

// HeadlineSource is the external scraper collaborator: an opaque subprocess
// that emits headline records for a symbol.
type HeadlineSource interface {
	Fetch(ctx context.Context, symbol string) ([]models.Headline, error)
}

type Metrics interface {
	RecordCacheHit(tier, kind string)
	RecordCacheMiss(tier, kind string)
	RecordFetch(source, result string)
	RecordFallback(source string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
	RecordMoodStored(backend, symbol string)
}
