// Package rod provides a browser-automation implementation of
// postcap.Fetcher for post pages that require JavaScript rendering.
package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/fwojciec/postcap"
)

// postContainerSelector is the element whose presence marks a fully
// rendered post. Kept aligned with the root selectors of the goquery
// extractor.
const postContainerSelector = `article[data-testid="tweet"]`

// Ensure Fetcher implements postcap.Fetcher at compile time.
var _ postcap.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered post HTML using Chrome browser automation.
// Post pages build their DOM client-side, so the fetch waits for the post
// container to appear before snapshotting. Fetcher is safe for concurrent
// use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	// Launch browser using rod's launcher (finds or downloads Chrome)
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the URL, waits for the post container to render, and
// returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// The post container appears only after client-side rendering;
	// Element blocks until it exists or the context expires.
	if _, err := page.Element(postContainerSelector); err != nil {
		return "", postcap.Errorf(postcap.ENOTFOUND, "post container did not render for %s: %v", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
