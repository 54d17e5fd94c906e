package docgrab

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch downloads the page at the URL and returns its HTML.
	// The context controls timeout and cancellation.
	// Returns ENETWORK when the page cannot be retrieved.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any connections held by the Fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
