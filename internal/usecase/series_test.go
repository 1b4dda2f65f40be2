package usecase

import (
	"context"
	"testing"
	"time"

	"MarketMood/internal/domain/models"
	"MarketMood/internal/service/cache"
)

func TestGetSeriesNeutralFallback(t *testing.T) {
	fetcher := &failingFetcher{}
	uc := NewSeriesUseCase(fetcher, cache.NewTTLCache(), time.Hour, nopMetrics{}, nil)
	uc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 30, 0, 0, marketTZ)
	}

	series := uc.GetSeries(context.Background(), "AAPL", 5)

	if len(series) != 5 {
		t.Fatalf("got %d points, want 5", len(series))
	}
	want := []string{"2026-03-02", "2026-03-01", "2026-02-28", "2026-02-27", "2026-02-26"}
	for i, p := range series {
		if p.RSI != 50 {
			t.Errorf("series[%d].RSI = %v, want 50", i, p.RSI)
		}
		if p.Date != want[i] {
			t.Errorf("series[%d].Date = %s, want %s", i, p.Date, want[i])
		}
	}
}

func TestGetSeriesFallbackNotCached(t *testing.T) {
	fetcher := &failingFetcher{}
	uc := NewSeriesUseCase(fetcher, cache.NewTTLCache(), time.Hour, nopMetrics{}, nil)

	uc.GetSeries(context.Background(), "AAPL", 3)
	uc.GetSeries(context.Background(), "AAPL", 3)

	// Synthesized series must not mask a recovered upstream.
	if fetcher.calls != 2 {
		t.Errorf("fetch calls = %d, want 2", fetcher.calls)
	}
}

func TestGetSeriesCachesFullSeries(t *testing.T) {
	fetcher := &stubFetcher{series: []models.RSIPoint{
		{Date: "2026-08-28", RSI: 61.2},
		{Date: "2026-08-27", RSI: 58.9},
		{Date: "2026-08-26", RSI: 55.1},
	}}
	uc := NewSeriesUseCase(fetcher, cache.NewTTLCache(), time.Hour, nopMetrics{}, nil)

	first := uc.GetSeries(context.Background(), "MSFT", 2)
	second := uc.GetSeries(context.Background(), "MSFT", 3)

	if fetcher.calls != 1 {
		t.Errorf("fetch calls = %d, want 1 (second request served from cache)", fetcher.calls)
	}
	if len(first) != 2 {
		t.Errorf("first request got %d points, want 2", len(first))
	}
	if len(second) != 3 {
		t.Errorf("second request got %d points, want 3", len(second))
	}
	if second[0].Date != "2026-08-28" || second[0].RSI != 61.2 {
		t.Errorf("unexpected head point %+v", second[0])
	}
}

func TestGetSeriesShorterUpstream(t *testing.T) {
	fetcher := &stubFetcher{series: []models.RSIPoint{{Date: "2026-08-28", RSI: 44}}}
	uc := NewSeriesUseCase(fetcher, cache.NewTTLCache(), time.Hour, nopMetrics{}, nil)

	series := uc.GetSeries(context.Background(), "MSFT", 30)
	if len(series) != 1 {
		t.Errorf("got %d points, want the 1 the upstream had", len(series))
	}
}
