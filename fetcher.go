package docsearch

import "context"

// Fetcher retrieves the raw content of a documentation page.
type Fetcher interface {
	// Fetch issues a single request for url and returns the response body
	// unmodified. The context controls cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
