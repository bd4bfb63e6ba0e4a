// Package fetcher retrieves raw HTML for a URL over HTTP(S).
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultUserAgent is a conventional browser-like user agent, sent to
// reduce trivial blocking by servers that reject unknown clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// DefaultMaxBodySize caps response bodies at 10 MiB.
const DefaultMaxBodySize int64 = 10 << 20

// Result holds the outcome of a successful fetch.
type Result struct {
	// URL is the canonical final URL, after any redirects.
	URL string
	// StatusCode is the HTTP status of the final response.
	StatusCode int
	// HTML is the response body as text.
	HTML string
	// Header holds the final response headers.
	Header http.Header
}

// Fetcher performs single-attempt HTTP GET requests. No retries.
type Fetcher struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
}

// New creates a Fetcher.
//
// Parameters:
//   - userAgent: User-Agent header value, or "" for DefaultUserAgent
//   - timeout: total request timeout
//   - maxBodySize: response body cap in bytes, or 0 for DefaultMaxBodySize
func New(userAgent string, timeout time.Duration, maxBodySize int64) *Fetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}
	return &Fetcher{
		client:      &http.Client{Timeout: timeout},
		userAgent:   userAgent,
		maxBodySize: maxBodySize,
	}
}

// Fetch performs one GET request and returns the response body as text.
// It fails when the connection cannot be established, the request times
// out, the server returns a non-2xx status, or the body exceeds the
// configured size cap.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, fmt.Errorf("response body exceeds %d bytes", f.maxBodySize)
	}

	return &Result{
		URL:        resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		HTML:       string(body),
		Header:     resp.Header,
	}, nil
}
