package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
)

// Ensure LoggingSearchClient implements docsearch.SearchClient.
var _ docsearch.SearchClient = (*LoggingSearchClient)(nil)

// LoggingSearchClient wraps a SearchClient with logging.
type LoggingSearchClient struct {
	next   docsearch.SearchClient
	logger *slog.Logger
}

// NewLoggingSearchClient creates a new LoggingSearchClient.
func NewLoggingSearchClient(next docsearch.SearchClient, logger *slog.Logger) *LoggingSearchClient {
	return &LoggingSearchClient{next: next, logger: logger}
}

// Search delegates to the wrapped client and logs the query and result count.
func (c *LoggingSearchClient) Search(ctx context.Context, query string) (results []*docsearch.SearchResult, err error) {
	defer func(begin time.Time) {
		loggerFor(ctx, c.logger).Info("search",
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Search(ctx, query)
}
