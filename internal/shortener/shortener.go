// Package shortener wraps the TinyURL create endpoint. Shortening is strictly
// best-effort: an alert must never be blocked by a third-party outage, so any
// failure degrades to the original URL instead of an error.
package shortener

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxResponseBytes = 2048

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func New(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Shorten returns a shortened form of longURL, or longURL itself if the
// external service errors, times out, or replies with anything that is not a
// URL. It never returns an error.
func (c *Client) Shorten(ctx context.Context, longURL string) string {
	reqURL := c.endpoint + "?url=" + url.QueryEscape(longURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		slog.Warn("url shortener request build failed, using original url", "error", err)
		return longURL
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("url shortener unreachable, using original url", "error", err)
		return longURL
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("url shortener returned non-200, using original url", "status", resp.StatusCode)
		return longURL
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		slog.Warn("url shortener response read failed, using original url", "error", err)
		return longURL
	}

	short := strings.TrimSpace(string(body))
	if !strings.HasPrefix(short, "http://") && !strings.HasPrefix(short, "https://") {
		slog.Warn("url shortener returned unusable body, using original url")
		return longURL
	}
	return short
}
