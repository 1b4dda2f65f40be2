package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"MarketMood/internal/domain/models"
	"MarketMood/internal/service/cache"
	"MarketMood/internal/service/sentiment"
)

func newSentimentUC(searcher *stubSearcher) *SentimentUseCase {
	scorer := sentiment.NewScorer(sentiment.NewAnalyzer(), sentiment.NewLexicon())
	return NewSentimentUseCase(searcher, scorer, cache.NewTTLCache(), time.Hour, nopMetrics{}, nil)
}

func TestGetSentimentZeroArticles(t *testing.T) {
	searcher := &stubSearcher{articles: []models.NewsArticle{}}
	uc := newSentimentUC(searcher)

	res := uc.GetSentiment(context.Background(), "AAPL", "2026-08-27")

	if res.Score != 0 || res.ArticleCount != 0 {
		t.Errorf("got %+v, want zero result", res)
	}
}

func TestGetSentimentSearchFailure(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("upstream down")}
	uc := newSentimentUC(searcher)

	res := uc.GetSentiment(context.Background(), "AAPL", "2026-08-27")

	if res.Score != 0 || res.ArticleCount != 0 {
		t.Errorf("got %+v, want zero result", res)
	}
}

func TestGetSentimentMeanRounded(t *testing.T) {
	searcher := &stubSearcher{articles: []models.NewsArticle{
		{Title: "A win for the company"},    // base +4
		{Title: "A win and a good quarter"}, // base +7
		// base +2 comes from the description
		{Title: "Nothing notable happened", Description: "analysts expect a strong year"},
	}}
	uc := newSentimentUC(searcher)

	res := uc.GetSentiment(context.Background(), "AAPL", "2026-08-27")

	// (4 + 7 + 2) / 3 = 4.333... -> 4.33
	if res.Score != 4.33 {
		t.Errorf("score = %v, want 4.33", res.Score)
	}
	if res.ArticleCount != 3 {
		t.Errorf("articleCount = %d, want 3", res.ArticleCount)
	}
}

func TestGetSentimentCachedPerKey(t *testing.T) {
	searcher := &stubSearcher{articles: []models.NewsArticle{{Title: "good news"}}}
	uc := newSentimentUC(searcher)

	uc.GetSentiment(context.Background(), "AAPL", "2026-08-27")
	uc.GetSentiment(context.Background(), "AAPL", "2026-08-27")
	uc.GetSentiment(context.Background(), "AAPL", "2026-08-26")

	if got := searcher.callCount(); got != 2 {
		t.Errorf("search calls = %d, want 2 (one per distinct key)", got)
	}
}

func TestGetSentimentFailureCachedToo(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("upstream down")}
	uc := newSentimentUC(searcher)

	uc.GetSentiment(context.Background(), "AAPL", "2026-08-27")
	uc.GetSentiment(context.Background(), "AAPL", "2026-08-27")

	// The zero result is cached, so the upstream sees one fetch per key.
	if got := searcher.callCount(); got != 1 {
		t.Errorf("search calls = %d, want 1", got)
	}
}
