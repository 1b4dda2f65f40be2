package alphavantage

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"MarketMood/internal/domain/models"
	"MarketMood/internal/service/ratelimit"
	xhttp "MarketMood/pkg/http"
)

const rsiKey = "Technical Analysis: RSI"

// Client fetches daily RSI series from Alpha Vantage.
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

// NewClient creates an Alpha Vantage client.
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

type rsiResponse struct {
	Series map[string]struct {
		RSI string `json:"RSI"`
	} `json:"Technical Analysis: RSI"`
}

// FetchSeries fetches the daily 14-period RSI series for a symbol,
// newest date first.
func (c *Client) FetchSeries(ctx context.Context, symbol string) ([]models.RSIPoint, error) {
	if c.limiter != nil && !c.limiter.Allow("alphavantage", c.budget, c.budget/60) {
		return nil, fmt.Errorf("alphavantage: request budget exceeded")
	}

	var resp rsiResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/query",
		QueryParams: map[string][]string{
			"function":    {"RSI"},
			"symbol":      {symbol},
			"interval":    {"daily"},
			"time_period": {"14"},
			"series_type": {"close"},
			"apikey":      {c.apiKey},
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("alphavantage: %w", err)
	}

	// Error payloads (rate limit notes, bad symbol) come back 200 without
	// the series key.
	if len(resp.Series) == 0 {
		return nil, fmt.Errorf("alphavantage: response has no %q data for %s", rsiKey, symbol)
	}

	points := make([]models.RSIPoint, 0, len(resp.Series))
	for date, v := range resp.Series {
		rsi, err := strconv.ParseFloat(v.RSI, 64)
		if err != nil {
			return nil, fmt.Errorf("alphavantage: bad RSI value %q for %s: %w", v.RSI, date, err)
		}
		points = append(points, models.RSIPoint{Date: date, RSI: rsi})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date > points[j].Date
	})

	return points, nil
}
