// Package http provides an HTTP-based implementation of docgrab.Fetcher
// for downloading documentation pages.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/docgrab"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with mslearn.DefaultTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements docgrab.Fetcher at compile time.
var _ docgrab.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript, which is sufficient for documentation
// sites that serve article content statically.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Any transport
// failure or non-success status is reported as ENETWORK; each page is
// attempted exactly once.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", docgrab.Errorf(docgrab.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", docgrab.Errorf(docgrab.ENETWORK, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", docgrab.Errorf(docgrab.ENETWORK, "fetch %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", docgrab.Errorf(docgrab.ENETWORK, "fetch %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
