package scraper

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func newStubClient(output []byte, runErr error) *Client {
	c := NewClient("python3", "scraper.py", time.Second)
	c.run = func(ctx context.Context, command, script, symbol string) ([]byte, error) {
		return output, runErr
	}
	return c
}

func TestFetchParsesHeadlines(t *testing.T) {
	out := []byte(`[
		{"title": "AAPL beats estimates", "source": "Wire", "url": "https://example.com/1", "date": "2026-08-27T10:00:00"},
		{"title": "iPhone demand strong", "source": "Wire", "url": "https://example.com/2", "date": "2026-08-27T11:00:00"}
	]`)
	c := newStubClient(out, nil)

	headlines, err := c.Fetch(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(headlines) != 2 {
		t.Fatalf("got %d headlines, want 2", len(headlines))
	}
	if headlines[0].Title != "AAPL beats estimates" {
		t.Errorf("title = %q", headlines[0].Title)
	}
}

func TestFetchErrorPayload(t *testing.T) {
	c := newStubClient([]byte(`{"error": "No news found in API response"}`), nil)

	_, err := c.Fetch(context.Background(), "AAPL")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "No news found") {
		t.Errorf("error = %v, want script error message", err)
	}
}

func TestFetchRunFailure(t *testing.T) {
	runErr := errors.New("exit status 1")
	c := newStubClient(nil, runErr)

	_, err := c.Fetch(context.Background(), "AAPL")
	if !errors.Is(err, runErr) {
		t.Errorf("error = %v, want wrapped run error", err)
	}
}

func TestFetchEmptyOutput(t *testing.T) {
	c := newStubClient([]byte("  \n"), nil)

	_, err := c.Fetch(context.Background(), "AAPL")
	if err == nil {
		t.Fatal("expected error for empty output")
	}
}
