package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"MarketMood/internal/domain/models"
)

func descendingSeries(days int) []models.RSIPoint {
	base := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	out := make([]models.RSIPoint, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, models.RSIPoint{
			Date: base.AddDate(0, 0, -i).Format("2006-01-02"),
			RSI:  50 + float64(i),
		})
	}
	return out
}

func newAggregator(series *stubSeries, snt *stubSentiment, store *memStore, batchSize int) *MoodAggregator {
	return NewMoodAggregator(series, snt, store, nil, "clickhouse", batchSize, nopMetrics{}, nil)
}

func TestAggregateInvalidSymbol(t *testing.T) {
	series := &stubSeries{series: descendingSeries(3)}
	snt := &stubSentiment{}
	store := newMemStore()
	agg := newAggregator(series, snt, store, 5)

	_, err := agg.Aggregate(context.Background(), "ZZZZ", 3)
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("err = %v, want ErrInvalidSymbol", err)
	}

	// Rejected before any I/O.
	if series.calls != 0 {
		t.Errorf("series calls = %d, want 0", series.calls)
	}
	if snt.callCount() != 0 {
		t.Errorf("sentiment calls = %d, want 0", snt.callCount())
	}
	if gets, upserts := store.counts(); gets != 0 || upserts != 0 {
		t.Errorf("store calls = %d gets / %d upserts, want none", gets, upserts)
	}
}

func TestAggregateReturnsSeriesOrder(t *testing.T) {
	series := &stubSeries{series: descendingSeries(7)}
	snt := &stubSentiment{result: models.SentimentResult{Score: 1.5, ArticleCount: 4}}
	store := newMemStore()
	agg := newAggregator(series, snt, store, 5)

	out, err := agg.Aggregate(context.Background(), "AAPL", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 7 {
		t.Fatalf("got %d records, want 7", len(out))
	}
	for i, m := range out {
		if m.Symbol != "AAPL" {
			t.Errorf("out[%d].Symbol = %s", i, m.Symbol)
		}
		if m.RSIScore != 50+float64(i) {
			t.Errorf("out[%d].RSIScore = %v, want %v", i, m.RSIScore, 50+float64(i))
		}
		if m.SentimentScore != 1.5 || m.ArticleCount != 4 {
			t.Errorf("out[%d] sentiment = %v/%d", i, m.SentimentScore, m.ArticleCount)
		}
		if i > 0 && !(out[i].Date < out[i-1].Date) {
			t.Errorf("dates not strictly descending at %d: %s vs %s", i, out[i].Date, out[i-1].Date)
		}
	}

	if _, upserts := store.counts(); upserts != 7 {
		t.Errorf("upserts = %d, want 7", upserts)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	series := &stubSeries{series: descendingSeries(6)}
	snt := &stubSentiment{result: models.SentimentResult{Score: -0.5, ArticleCount: 2}}
	store := newMemStore()
	agg := newAggregator(series, snt, store, 5)

	first, err := agg.Aggregate(context.Background(), "NVDA", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	callsAfterFirst := snt.callCount()

	second, err := agg.Aggregate(context.Background(), "NVDA", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snt.callCount() != callsAfterFirst {
		t.Errorf("second run made %d fresh sentiment fetches, want 0", snt.callCount()-callsAfterFirst)
	}
	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("record %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestAggregateDurableHitKeepsFreshRSI(t *testing.T) {
	series := &stubSeries{series: []models.RSIPoint{{Date: "2026-08-27", RSI: 72.5}}}
	snt := &stubSentiment{}
	store := newMemStore()
	_ = store.Upsert(context.Background(), &models.DailyMood{
		Symbol: "AAPL", Date: "2026-08-27", RSIScore: 40, SentimentScore: 2.25, ArticleCount: 3,
	})
	agg := newAggregator(series, snt, store, 5)

	out, err := agg.Aggregate(context.Background(), "AAPL", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sentiment is short-circuited by the durable hit, RSI is not.
	if snt.callCount() != 0 {
		t.Errorf("sentiment calls = %d, want 0", snt.callCount())
	}
	if out[0].RSIScore != 72.5 {
		t.Errorf("RSIScore = %v, want fresh 72.5", out[0].RSIScore)
	}
	if out[0].SentimentScore != 2.25 || out[0].ArticleCount != 3 {
		t.Errorf("sentiment = %v/%d, want stored 2.25/3", out[0].SentimentScore, out[0].ArticleCount)
	}
}

func TestAggregateBatchGrouping(t *testing.T) {
	const days = 12
	const batchSize = 5
	const delay = 30 * time.Millisecond

	series := &stubSeries{series: descendingSeries(days)}
	snt := &stubSentiment{delay: delay}
	store := newMemStore()
	agg := newAggregator(series, snt, store, batchSize)

	if _, err := agg.Aggregate(context.Background(), "TSLA", days); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snt.callCount() != days {
		t.Fatalf("sentiment calls = %d, want %d", snt.callCount(), days)
	}

	// Sort call windows by start time and check batch boundaries: no call of
	// batch n+1 may start before every call of batch n has ended.
	type window struct{ start, end time.Time }
	windows := make([]window, days)
	for i := range snt.starts {
		windows[i] = window{snt.starts[i], snt.ends[i]}
	}
	for i := 0; i < days; i++ {
		for j := i + 1; j < days; j++ {
			if windows[j].start.Before(windows[i].start) {
				windows[i], windows[j] = windows[j], windows[i]
			}
		}
	}

	batches := []int{5, 5, 2}
	idx := 0
	for b := 0; b < len(batches)-1; b++ {
		batchEnd := windows[idx]
		for k := idx; k < idx+batches[b]; k++ {
			if windows[k].end.After(batchEnd.end) {
				batchEnd = windows[k]
			}
		}
		nextStart := windows[idx+batches[b]].start
		if nextStart.Before(batchEnd.end) {
			t.Errorf("batch %d: call started at %v before previous batch finished at %v",
				b+2, nextStart, batchEnd.end)
		}
		idx += batches[b]
	}

	// Within a batch, calls overlap: the whole run takes roughly 3 delays,
	// not 12.
	total := windows[days-1].end.Sub(windows[0].start)
	if total > time.Duration(len(batches)+2)*delay {
		t.Errorf("total elapsed %v suggests sequential execution (%s)", total,
			fmt.Sprintf("expected about %v", time.Duration(len(batches))*delay))
	}
}
