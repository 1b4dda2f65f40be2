package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"MarketMood/internal/domain/models"
	domrepo "MarketMood/internal/domain/repository"
)

type nopMetrics struct{}

func (nopMetrics) RecordCacheHit(tier, kind string)         {}
func (nopMetrics) RecordCacheMiss(tier, kind string)        {}
func (nopMetrics) RecordFetch(source, result string)        {}
func (nopMetrics) RecordFallback(source string)             {}
func (nopMetrics) RecordError(kind string)                  {}
func (nopMetrics) RecordLatency(op string, seconds float64) {}
func (nopMetrics) RecordMoodStored(backend, symbol string)  {}

// memStore is an in-memory MoodStore recording call counts.
type memStore struct {
	mu      sync.Mutex
	moods   map[string]*models.DailyMood
	gets    int
	upserts int
}

func newMemStore() *memStore {
	return &memStore{moods: make(map[string]*models.DailyMood)}
}

func (s *memStore) Get(ctx context.Context, symbol, date string) (*models.DailyMood, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if m, ok := s.moods[symbol+":"+date]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, domrepo.ErrNotFound
}

func (s *memStore) Upsert(ctx context.Context, m *models.DailyMood) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserts++
	cp := *m
	s.moods[m.Symbol+":"+m.Date] = &cp
	return nil
}

func (s *memStore) Recent(ctx context.Context, symbol string, limit int) ([]models.DailyMood, error) {
	return nil, nil
}

func (s *memStore) Health(ctx context.Context) error { return nil }
func (s *memStore) Close() error                     { return nil }

func (s *memStore) counts() (gets, upserts int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets, s.upserts
}

// stubSeries returns a fixed series and counts calls.
type stubSeries struct {
	mu     sync.Mutex
	series []models.RSIPoint
	calls  int
}

func (s *stubSeries) GetSeries(ctx context.Context, symbol string, days int) []models.RSIPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if len(s.series) > days {
		return s.series[:days]
	}
	return s.series
}

// stubSentiment returns a fixed result, records per-call timing windows,
// and optionally sleeps to make batch boundaries observable.
type stubSentiment struct {
	mu     sync.Mutex
	result models.SentimentResult
	delay  time.Duration
	calls  int
	starts []time.Time
	ends   []time.Time
}

func (s *stubSentiment) GetSentiment(ctx context.Context, symbol, date string) models.SentimentResult {
	start := time.Now()
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.starts = append(s.starts, start)
	s.ends = append(s.ends, time.Now())
	return s.result
}

func (s *stubSentiment) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// failingFetcher always errors.
type failingFetcher struct{ calls int }

func (f *failingFetcher) FetchSeries(ctx context.Context, symbol string) ([]models.RSIPoint, error) {
	f.calls++
	return nil, errors.New("upstream unavailable")
}

// stubFetcher returns a fixed series.
type stubFetcher struct {
	series []models.RSIPoint
	calls  int
}

func (f *stubFetcher) FetchSeries(ctx context.Context, symbol string) ([]models.RSIPoint, error) {
	f.calls++
	return f.series, nil
}

// stubSearcher returns fixed articles or an error.
type stubSearcher struct {
	mu       sync.Mutex
	articles []models.NewsArticle
	err      error
	calls    int
}

func (s *stubSearcher) Search(ctx context.Context, symbol, from string) ([]models.NewsArticle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.articles, s.err
}

func (s *stubSearcher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
