package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"MarketMood/internal/domain/models"
	domrepo "MarketMood/internal/domain/repository"
	dservice "MarketMood/internal/domain/service"
	applogger "MarketMood/pkg/logger"
)

// ErrInvalidSymbol is returned before any network or store call when the
// requested symbol is not on the allow-list.
var ErrInvalidSymbol = errors.New("symbol not in allowed set")

// MoodBroadcaster pushes freshly computed moods to live subscribers.
type MoodBroadcaster interface {
	BroadcastMoods(moods []*models.DailyMood)
}

// MoodAggregator fuses per-day RSI and news sentiment into DailyMood records.
// Days are processed in fixed-size batches: concurrent within a batch,
// sequential across batches. A durable-store hit short-circuits the sentiment
// fetch for that day, but RSI always comes from the current series.
type MoodAggregator struct {
	series    dservice.SeriesProvider
	sentiment dservice.SentimentProvider
	store     domrepo.MoodStore
	publisher domrepo.Publisher
	backend   string
	batchSize int
	metrics   domrepo.Metrics
	l         *applogger.Logger

	broadcaster MoodBroadcaster
}

func NewMoodAggregator(
	series dservice.SeriesProvider,
	sentiment dservice.SentimentProvider,
	store domrepo.MoodStore,
	publisher domrepo.Publisher,
	backend string,
	batchSize int,
	metrics domrepo.Metrics,
	l *applogger.Logger,
) *MoodAggregator {
	if batchSize <= 0 {
		batchSize = 5
	}
	return &MoodAggregator{
		series:    series,
		sentiment: sentiment,
		store:     store,
		publisher: publisher,
		backend:   backend,
		batchSize: batchSize,
		metrics:   metrics,
		l:         l,
	}
}

// SetBroadcaster attaches a live-update sink. Optional.
func (a *MoodAggregator) SetBroadcaster(b MoodBroadcaster) { a.broadcaster = b }

// Aggregate returns one DailyMood per series point, in series order.
// Freshly computed records are persisted before the result is returned.
func (a *MoodAggregator) Aggregate(ctx context.Context, symbol string, days int) ([]models.DailyMood, error) {
	if !models.IsAllowedSymbol(symbol) {
		a.metrics.RecordError("invalid_symbol")
		return nil, ErrInvalidSymbol
	}

	start := time.Now()
	series := a.series.GetSeries(ctx, symbol, days)

	out := make([]models.DailyMood, len(series))
	var mu sync.Mutex
	fresh := make([]*models.DailyMood, 0, len(series))

	for base := 0; base < len(series); base += a.batchSize {
		end := base + a.batchSize
		if end > len(series) {
			end = len(series)
		}

		var wg sync.WaitGroup
		for i := base; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				point := series[i]
				mood := models.DailyMood{
					Symbol:   symbol,
					Date:     point.Date,
					RSIScore: point.RSI,
				}

				if stored, err := a.store.Get(ctx, symbol, point.Date); err == nil {
					a.metrics.RecordCacheHit("tier2", "mood")
					mood.SentimentScore = stored.SentimentScore
					mood.ArticleCount = stored.ArticleCount
					out[i] = mood
					return
				}
				a.metrics.RecordCacheMiss("tier2", "mood")

				res := a.sentiment.GetSentiment(ctx, symbol, point.Date)
				mood.SentimentScore = res.Score
				mood.ArticleCount = res.ArticleCount
				out[i] = mood

				mu.Lock()
				fresh = append(fresh, &out[i])
				mu.Unlock()
			}(i)
		}
		wg.Wait()
	}

	if err := a.persist(ctx, fresh); err != nil && a.l != nil {
		a.l.Error("mood persist failed",
			applogger.String("symbol", symbol),
			applogger.Int("count", len(fresh)),
			applogger.Error(err),
		)
	}

	if a.broadcaster != nil && len(fresh) > 0 {
		a.broadcaster.BroadcastMoods(fresh)
	}

	a.metrics.RecordLatency("aggregate", time.Since(start).Seconds())
	if a.l != nil {
		a.l.Info("aggregate complete",
			applogger.String("symbol", symbol),
			applogger.Int("days", days),
			applogger.Int("fresh", len(fresh)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}

	return out, nil
}

// persist writes fresh records through the configured backend and waits for
// every write before returning.
func (a *MoodAggregator) persist(ctx context.Context, fresh []*models.DailyMood) error {
	if len(fresh) == 0 {
		return nil
	}

	if a.backend == "kafka" && a.publisher != nil {
		if err := a.publisher.PublishBatch(ctx, fresh); err != nil {
			a.metrics.RecordError("publish")
			return err
		}
		for _, m := range fresh {
			a.metrics.RecordMoodStored("kafka", m.Symbol)
		}
		return nil
	}

	var wg sync.WaitGroup
	errCh := make(chan error, len(fresh))
	for _, m := range fresh {
		wg.Add(1)
		go func(m *models.DailyMood) {
			defer wg.Done()
			if err := a.store.Upsert(ctx, m); err != nil {
				a.metrics.RecordError("upsert")
				errCh <- err
				return
			}
			a.metrics.RecordMoodStored("clickhouse", m.Symbol)
		}(m)
	}
	wg.Wait()
	close(errCh)

	return <-errCh
}
