package usecase

import (
	"context"
	"encoding/json"
	"time"

	"MarketMood/internal/domain/models"
	domrepo "MarketMood/internal/domain/repository"
	"MarketMood/internal/service/cache"
	"MarketMood/internal/service/sentiment"
	applogger "MarketMood/pkg/logger"
	"MarketMood/pkg/util"
)

// SentimentUseCase resolves per-(symbol, date) news sentiment cache-first.
// Failures and empty result sets both reduce to the zero result, and the
// zero result is cached too, so the upstream sees at most one fetch per key.
type SentimentUseCase struct {
	searcher domrepo.ArticleSearcher
	scorer   *sentiment.Scorer
	cache    cache.BytesCache
	ttl      time.Duration
	metrics  domrepo.Metrics
	l        *applogger.Logger
}

func NewSentimentUseCase(searcher domrepo.ArticleSearcher, scorer *sentiment.Scorer, c cache.BytesCache, ttl time.Duration, metrics domrepo.Metrics, l *applogger.Logger) *SentimentUseCase {
	return &SentimentUseCase{
		searcher: searcher,
		scorer:   scorer,
		cache:    c,
		ttl:      ttl,
		metrics:  metrics,
		l:        l,
	}
}

// GetSentiment returns the mean base-analyzer score over the day's articles,
// rounded to two decimals, with the article count.
func (uc *SentimentUseCase) GetSentiment(ctx context.Context, symbol, date string) models.SentimentResult {
	key := "sentiment:" + symbol + ":" + date

	if b, ok, err := uc.cache.GetBytes(key); err == nil && ok {
		var res models.SentimentResult
		if err := json.Unmarshal(b, &res); err == nil {
			uc.metrics.RecordCacheHit("tier1", "sentiment")
			return res
		}
	}
	uc.metrics.RecordCacheMiss("tier1", "sentiment")

	res := uc.fetchAndScore(ctx, symbol, date)

	if b, err := json.Marshal(res); err == nil {
		_ = uc.cache.SetBytes(key, b, uc.ttl)
	}
	return res
}

func (uc *SentimentUseCase) fetchAndScore(ctx context.Context, symbol, date string) models.SentimentResult {
	start := time.Now()
	articles, err := uc.searcher.Search(ctx, symbol, date)
	uc.metrics.RecordLatency("news_fetch", time.Since(start).Seconds())
	if err != nil {
		uc.metrics.RecordFetch("newsapi", "error")
		if uc.l != nil {
			uc.l.Warn("news fetch failed, serving zero sentiment",
				applogger.String("symbol", symbol),
				applogger.String("date", date),
				applogger.Error(err),
			)
		}
		return models.SentimentResult{}
	}
	uc.metrics.RecordFetch("newsapi", "ok")

	if len(articles) == 0 {
		return models.SentimentResult{}
	}

	// Daily aggregation uses the base analyzer only; the financial lexicon
	// applies to the live headline path.
	total := 0
	for _, a := range articles {
		total += uc.scorer.BaseScore(a.Title + " " + a.Description)
	}
	mean := float64(total) / float64(len(articles))

	return models.SentimentResult{
		Score:        util.Round2(mean),
		ArticleCount: len(articles),
	}
}
