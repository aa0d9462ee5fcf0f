package docsearch

import "context"

// SearchResult is one organic hit returned by the search provider.
// Only Link is used by the retrieval pipeline.
type SearchResult struct {
	Link     string `json:"link"`
	Title    string `json:"title,omitempty"`
	Snippet  string `json:"snippet,omitempty"`
	Position int    `json:"position,omitempty"`
}

// SearchClient queries an external web search provider.
type SearchClient interface {
	// Search sends the composed query and returns the organic results in the
	// provider's ranking order, unfiltered. An empty slice is not an error.
	Search(ctx context.Context, query string) ([]*SearchResult, error)
}
