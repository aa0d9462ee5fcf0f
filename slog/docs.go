package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
	"github.com/google/uuid"
)

// Ensure LoggingDocsService implements docsearch.DocsService.
var _ docsearch.DocsService = (*LoggingDocsService)(nil)

// LoggingDocsService wraps a DocsService with logging. Each invocation is
// assigned a request id that decorators further down the pipeline pick up
// from the context.
type LoggingDocsService struct {
	next   docsearch.DocsService
	logger *slog.Logger
}

// NewLoggingDocsService creates a new LoggingDocsService.
func NewLoggingDocsService(next docsearch.DocsService, logger *slog.Logger) *LoggingDocsService {
	return &LoggingDocsService{next: next, logger: logger}
}

// GetDocs delegates to the wrapped service and logs the invocation.
func (s *LoggingDocsService) GetDocs(ctx context.Context, query, library string) (doc string, err error) {
	id := uuid.New().String()
	ctx = WithRequestID(ctx, id)

	defer func(begin time.Time) {
		attrs := []any{
			"request_id", id,
			"library", library,
			"query", query,
			"bytes", len(doc),
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "code", docsearch.ErrorCode(err), "err", err)
			s.logger.Error("get_docs", attrs...)
			return
		}
		s.logger.Info("get_docs", attrs...)
	}(time.Now())
	return s.next.GetDocs(ctx, query, library)
}
