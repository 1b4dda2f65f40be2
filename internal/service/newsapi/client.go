package newsapi

import (
	"context"
	"fmt"
	"time"

	"MarketMood/internal/domain/models"
	"MarketMood/internal/service/ratelimit"
	xhttp "MarketMood/pkg/http"
)

// Client searches news articles for a symbol on a given day.
type Client struct {
	http    *xhttp.Client
	baseURL string
	apiKey  string
	limiter *ratelimit.Limiter
	budget  float64
}

// Option configures Client.
type Option func(*Client)

// WithLimiter sets a request budget in calls per minute.
func WithLimiter(l *ratelimit.Limiter, perMin float64) Option {
	return func(c *Client) {
		c.limiter = l
		c.budget = perMin
	}
}

// NewClient creates a news search client.
func NewClient(baseURL, apiKey string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Search returns articles mentioning symbol published on or after from
// (ISO date). An empty result set is not an error.
func (c *Client) Search(ctx context.Context, symbol, from string) ([]models.NewsArticle, error) {
	if c.limiter != nil && !c.limiter.Allow("newsapi", c.budget, c.budget/60) {
		return nil, fmt.Errorf("newsapi: request budget exceeded")
	}

	var resp searchResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/v2/everything",
		QueryParams: map[string][]string{
			"q":      {symbol},
			"from":   {from},
			"to":     {from},
			"sortBy": {"publishedAt"},
			"apiKey": {c.apiKey},
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("newsapi: %w", err)
	}

	articles := make([]models.NewsArticle, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		articles = append(articles, models.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			PublishedAt: a.PublishedAt,
		})
	}

	return articles, nil
}
