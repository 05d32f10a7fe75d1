package postcap

import "context"

// Fetcher retrieves rendered post HTML from URLs.
// Implementations may use browser automation to wait for the post container
// to render before snapshotting.
type Fetcher interface {
	// Fetch navigates to the URL, waits for the post to render, and
	// returns the rendered HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
