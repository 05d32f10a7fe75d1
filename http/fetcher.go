// Package http provides HTTP-based implementations of postcap.Fetcher and
// postcap.Reporter for pre-rendered pages and the capture reporting
// endpoint.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/postcap"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements postcap.Fetcher at compile time.
var _ postcap.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// Unlike rod.Fetcher it does not execute JavaScript, so it only works for
// pre-rendered post pages (saved snapshots, mirrors, test servers).
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

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", postcap.Errorf(postcap.EINVALID, "invalid fetch URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", postcap.Errorf(postcap.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", postcap.Errorf(postcap.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", postcap.Errorf(postcap.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases fetcher resources. The HTTP fetcher holds none.
func (f *Fetcher) Close() error {
	return nil
}
