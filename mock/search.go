package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.SearchClient = (*SearchClient)(nil)

// SearchClient is a mock implementation of docsearch.SearchClient.
type SearchClient struct {
	SearchFn func(ctx context.Context, query string) ([]*docsearch.SearchResult, error)
}

func (s *SearchClient) Search(ctx context.Context, query string) ([]*docsearch.SearchResult, error) {
	return s.SearchFn(ctx, query)
}
