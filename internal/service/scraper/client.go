package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"MarketMood/internal/domain/models"
)

// runFunc executes the scraper command and returns its stdout.
type runFunc func(ctx context.Context, command, script, symbol string) ([]byte, error)

// Client fetches live headlines by shelling out to the news scraper script.
// The script prints either a JSON array of headlines or {"error": "..."}.
type Client struct {
	command string
	script  string
	timeout time.Duration
	run     runFunc
}

// NewClient creates a scraper client.
func NewClient(command, script string, timeout time.Duration) *Client {
	return &Client{
		command: command,
		script:  script,
		timeout: timeout,
		run:     runScript,
	}
}

func runScript(ctx context.Context, command, script, symbol string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, command, script, symbol)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("run scraper: %w (stderr: %s)", err, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}

type scriptError struct {
	Error string `json:"error"`
}

// Fetch runs the scraper for a symbol and parses its output.
func (c *Client) Fetch(ctx context.Context, symbol string) ([]models.Headline, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.run(ctx, c.command, c.script, symbol)
	if err != nil {
		return nil, err
	}

	out = bytes.TrimSpace(out)
	if len(out) == 0 {
		return nil, fmt.Errorf("scraper: empty output for %s", symbol)
	}

	// An object payload carries an error, an array payload carries headlines.
	if out[0] == '{' {
		var se scriptError
		if err := json.Unmarshal(out, &se); err != nil {
			return nil, fmt.Errorf("scraper: parse error payload: %w", err)
		}
		return nil, fmt.Errorf("scraper: %s", se.Error)
	}

	var headlines []models.Headline
	if err := json.Unmarshal(out, &headlines); err != nil {
		return nil, fmt.Errorf("scraper: parse headlines: %w", err)
	}

	return headlines, nil
}
