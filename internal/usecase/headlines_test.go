package usecase

import (
	"context"
	"errors"
	"testing"

	"MarketMood/internal/domain/models"
	"MarketMood/internal/service/sentiment"
)

type stubHeadlines struct {
	headlines []models.Headline
	err       error
	calls     int
}

func (s *stubHeadlines) Fetch(ctx context.Context, symbol string) ([]models.Headline, error) {
	s.calls++
	return s.headlines, s.err
}

func newHeadlineAnalyzer(source *stubHeadlines) *HeadlineAnalyzer {
	scorer := sentiment.NewScorer(sentiment.NewAnalyzer(), sentiment.NewLexicon())
	return NewHeadlineAnalyzer(source, scorer, nopMetrics{}, nil)
}

func TestAnalyzeScoresHeadlines(t *testing.T) {
	source := &stubHeadlines{headlines: []models.Headline{
		{Title: "Stock rally continues, strong buy rating", URL: "https://example.com/1"},
		{Title: "Analysts warn of bankruptcy risk", URL: "https://example.com/2"},
	}}
	h := newHeadlineAnalyzer(source)

	news, err := h.Analyze(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(news.News) != 2 {
		t.Fatalf("got %d headlines, want 2", len(news.News))
	}
	if news.News[0].Sentiment.Score <= 0 {
		t.Errorf("bullish headline scored %v, want positive", news.News[0].Sentiment.Score)
	}
	if news.News[1].Sentiment.Score >= 0 {
		t.Errorf("bearish headline scored %v, want negative", news.News[1].Sentiment.Score)
	}
}

func TestAnalyzeInvalidSymbol(t *testing.T) {
	source := &stubHeadlines{}
	h := newHeadlineAnalyzer(source)

	_, err := h.Analyze(context.Background(), "NOPE")
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("err = %v, want ErrInvalidSymbol", err)
	}
	if source.calls != 0 {
		t.Errorf("scraper called %d times for invalid symbol", source.calls)
	}
}

func TestAnalyzeNoHeadlines(t *testing.T) {
	source := &stubHeadlines{headlines: []models.Headline{}}
	h := newHeadlineAnalyzer(source)

	_, err := h.Analyze(context.Background(), "AAPL")
	if !errors.Is(err, ErrNoHeadlines) {
		t.Fatalf("err = %v, want ErrNoHeadlines", err)
	}
}

func TestOverallMeanAndBreakdown(t *testing.T) {
	source := &stubHeadlines{headlines: []models.Headline{
		{Title: "Earnings beat expectations"},
		{Title: "Shares fall on weak guidance"},
	}}
	h := newHeadlineAnalyzer(source)

	overall, err := h.Overall(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overall.NewsCount != 2 {
		t.Errorf("newsCount = %d, want 2", overall.NewsCount)
	}
	if len(overall.Breakdown) != 2 {
		t.Fatalf("breakdown has %d rows, want 2", len(overall.Breakdown))
	}

	want := (overall.Breakdown[0].Score + overall.Breakdown[1].Score) / 2
	// Mean is rounded to two decimals.
	if diff := overall.SentimentScore - want; diff > 0.005 || diff < -0.005 {
		t.Errorf("sentimentScore = %v, want about %v", overall.SentimentScore, want)
	}
}
