package usecase

import (
	"context"
	"errors"
	"time"

	"MarketMood/internal/domain/models"
	domrepo "MarketMood/internal/domain/repository"
	"MarketMood/internal/service/sentiment"
	applogger "MarketMood/pkg/logger"
	"MarketMood/pkg/util"
)

// ErrNoHeadlines is returned when the scraper finds nothing for a symbol.
var ErrNoHeadlines = errors.New("no headlines found")

// HeadlineAnalyzer scores live scraped headlines with the full lexicon scorer.
type HeadlineAnalyzer struct {
	source  domrepo.HeadlineSource
	scorer  *sentiment.Scorer
	metrics domrepo.Metrics
	l       *applogger.Logger
}

func NewHeadlineAnalyzer(source domrepo.HeadlineSource, scorer *sentiment.Scorer, metrics domrepo.Metrics, l *applogger.Logger) *HeadlineAnalyzer {
	return &HeadlineAnalyzer{source: source, scorer: scorer, metrics: metrics, l: l}
}

// Analyze scrapes headlines for a symbol and attaches a per-headline
// sentiment breakdown.
func (h *HeadlineAnalyzer) Analyze(ctx context.Context, symbol string) (*models.SymbolNews, error) {
	if !models.IsAllowedSymbol(symbol) {
		h.metrics.RecordError("invalid_symbol")
		return nil, ErrInvalidSymbol
	}

	start := time.Now()
	headlines, err := h.source.Fetch(ctx, symbol)
	h.metrics.RecordLatency("scrape", time.Since(start).Seconds())
	if err != nil {
		h.metrics.RecordFetch("scraper", "error")
		if h.l != nil {
			h.l.Warn("headline scrape failed",
				applogger.String("symbol", symbol),
				applogger.Error(err),
			)
		}
		return nil, err
	}
	h.metrics.RecordFetch("scraper", "ok")

	if len(headlines) == 0 {
		return nil, ErrNoHeadlines
	}

	scored := make([]models.ScoredHeadline, 0, len(headlines))
	for _, hl := range headlines {
		res := h.scorer.Score(hl.Title)
		scored = append(scored, models.ScoredHeadline{
			Headline: hl,
			Sentiment: models.HeadlineSentiment{
				Score:    float64(res.Score),
				Base:     float64(res.Base),
				Custom:   float64(res.Custom),
				Keywords: res.Keywords,
			},
		})
	}

	return &models.SymbolNews{Symbol: symbol, News: scored}, nil
}

// Overall computes the mean headline score with a per-headline breakdown.
func (h *HeadlineAnalyzer) Overall(ctx context.Context, symbol string) (*models.SymbolSentiment, error) {
	news, err := h.Analyze(ctx, symbol)
	if err != nil {
		return nil, err
	}

	total := 0.0
	breakdown := make([]models.SentimentBreakdown, 0, len(news.News))
	for _, item := range news.News {
		total += item.Sentiment.Score
		breakdown = append(breakdown, models.SentimentBreakdown{
			Title: item.Title,
			Score: item.Sentiment.Score,
		})
	}

	return &models.SymbolSentiment{
		Symbol:         symbol,
		SentimentScore: util.Round2(total / float64(len(news.News))),
		NewsCount:      len(news.News),
		Breakdown:      breakdown,
	}, nil
}
