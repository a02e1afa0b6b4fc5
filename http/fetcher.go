// Package http provides an HTTP-based implementation of skillcorpus.Fetcher.
// The registry's pages are server-rendered, so a plain GET is enough; no
// JavaScript execution is needed.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"skillcorpus"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 25 * time.Second

// Ensure Fetcher implements skillcorpus.Fetcher at compile time.
var _ skillcorpus.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP GET requests.
// Each call is a single attempt; retries are the caller's concern.
type Fetcher struct {
	client *http.Client
}

// Option configures a Fetcher.
type Option func(*http.Client)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (25s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *http.Client) {
		c.Timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	client := &http.Client{
		Timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(client)
	}
	return &Fetcher{client: client}
}

// Fetch retrieves the HTML content from the given URL.
// Any status other than 200 is an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
