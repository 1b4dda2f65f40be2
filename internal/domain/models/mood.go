package models

import "time"

// DailyMood is the fused per-(symbol, date) record combining one technical
// momentum value with one news-sentiment value for the same trading day.
// The pair (Symbol, Date) is the primary key in durable storage.
type DailyMood struct {
	Symbol         string    `json:"symbol"`
	Date           string    `json:"date"` // ISO 8601 calendar date, no time component
	RSIScore       float64   `json:"rsiScore"`
	SentimentScore float64   `json:"sentimentScore"`
	ArticleCount   int       `json:"articleCount"`
	UpdatedAt      time.Time `json:"-"`
}

// SentimentResult is the reduced news signal for one (symbol, date).
// Ephemeral: lives in the sentiment cache until folded into a DailyMood.
type SentimentResult struct {
	Score        float64 `json:"score"`
	ArticleCount int     `json:"articleCount"`
}

// RSIPoint is one entry of a daily RSI series, RSI in [0,100].
type RSIPoint struct {
	Date string  `json:"date"`
	RSI  float64 `json:"rsi"`
}

// NewsArticle is what the news-search upstream returns per hit.
type NewsArticle struct {
	Title       string
	Description string
	PublishedAt string
}

// Headline is one record emitted by the scraper collaborator.
type Headline struct {
	Title  string `json:"title"`
	Source string `json:"source,omitempty"`
	URL    string `json:"url,omitempty"`
	Date   string `json:"date,omitempty"`
}

// HeadlineSentiment carries the full lexicon-scorer breakdown for a headline.
type HeadlineSentiment struct {
	Score    float64  `json:"score"`
	Base     float64  `json:"base"`
	Custom   float64  `json:"custom"`
	Keywords []string `json:"keywords"`
}

// ScoredHeadline is a scraped headline with its sentiment attached.
type ScoredHeadline struct {
	Headline
	Sentiment HeadlineSentiment `json:"sentiment"`
}

// SymbolNews is the response of the headline-scraping path.
type SymbolNews struct {
	Symbol string           `json:"symbol"`
	News   []ScoredHeadline `json:"news"`
}

// SentimentBreakdown is one row of the per-headline breakdown.
type SentimentBreakdown struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// SymbolSentiment is the overall scraped-news sentiment for a symbol.
type SymbolSentiment struct {
	Symbol         string               `json:"symbol"`
	SentimentScore float64              `json:"sentimentScore"`
	NewsCount      int                  `json:"newsCount"`
	Breakdown      []SentimentBreakdown `json:"breakdown"`
}
