package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"MarketMood/internal/domain/models"
	domrepo "MarketMood/internal/domain/repository"
	"MarketMood/internal/service/cache"
	applogger "MarketMood/pkg/logger"
	"MarketMood/pkg/util"
)

const neutralRSI = 50

// marketTZ anchors "today" for synthesized fallback series.
var marketTZ = mustLoadLocation("America/New_York")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("load location %s: %v", name, err))
	}
	return loc
}

// SeriesUseCase resolves daily RSI series cache-first. A fetch failure never
// surfaces: callers get a neutral synthesized series instead.
type SeriesUseCase struct {
	fetcher domrepo.RSIFetcher
	cache   cache.BytesCache
	ttl     time.Duration
	metrics domrepo.Metrics
	l       *applogger.Logger

	now func() time.Time
}

func NewSeriesUseCase(fetcher domrepo.RSIFetcher, c cache.BytesCache, ttl time.Duration, metrics domrepo.Metrics, l *applogger.Logger) *SeriesUseCase {
	return &SeriesUseCase{
		fetcher: fetcher,
		cache:   c,
		ttl:     ttl,
		metrics: metrics,
		l:       l,
		now:     time.Now,
	}
}

// GetSeries returns up to days points, newest first. The full upstream series
// is cached per symbol; requests slice off the head.
func (uc *SeriesUseCase) GetSeries(ctx context.Context, symbol string, days int) []models.RSIPoint {
	key := "rsi:" + symbol

	if b, ok, err := uc.cache.GetBytes(key); err == nil && ok {
		var series []models.RSIPoint
		if err := json.Unmarshal(b, &series); err == nil {
			uc.metrics.RecordCacheHit("tier1", "rsi")
			return head(series, days)
		}
	}
	uc.metrics.RecordCacheMiss("tier1", "rsi")

	start := time.Now()
	series, err := uc.fetcher.FetchSeries(ctx, symbol)
	uc.metrics.RecordLatency("rsi_fetch", time.Since(start).Seconds())
	if err != nil {
		uc.metrics.RecordFetch("alphavantage", "error")
		uc.metrics.RecordFallback("alphavantage")
		if uc.l != nil {
			uc.l.Warn("rsi fetch failed, serving neutral series",
				applogger.String("symbol", symbol),
				applogger.Error(err),
			)
		}
		return uc.neutralSeries(days)
	}
	uc.metrics.RecordFetch("alphavantage", "ok")

	if b, err := json.Marshal(series); err == nil {
		_ = uc.cache.SetBytes(key, b, uc.ttl)
	}

	return head(series, days)
}

// neutralSeries synthesizes days points at RSI 50, walking back one calendar
// day at a time from today.
func (uc *SeriesUseCase) neutralSeries(days int) []models.RSIPoint {
	dates := util.DaysBack(uc.now().In(marketTZ), days)
	out := make([]models.RSIPoint, 0, days)
	for _, d := range dates {
		out = append(out, models.RSIPoint{Date: d, RSI: neutralRSI})
	}
	return out
}

func head(series []models.RSIPoint, days int) []models.RSIPoint {
	if len(series) > days {
		return series[:days]
	}
	return series
}
