package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
)

// Ensure LoggingSummarizer implements docsearch.Summarizer.
var _ docsearch.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with debug logging.
type LoggingSummarizer struct {
	next    docsearch.Summarizer
	counter docsearch.TokenCounter
	logger  *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer. When counter is not
// nil, the token count of each chunk is logged as well.
func NewLoggingSummarizer(next docsearch.Summarizer, counter docsearch.TokenCounter, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, counter: counter, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs input and output sizes.
func (s *LoggingSummarizer) Summarize(ctx context.Context, instruction, text string) (summary string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"input_chars", len([]rune(text)),
			"output_chars", len([]rune(summary)),
			"duration", time.Since(begin),
			"err", err,
		}
		if s.counter != nil {
			if tokens, cerr := s.counter.CountTokens(ctx, text); cerr == nil {
				attrs = append(attrs, "tokens", tokens)
			}
		}
		loggerFor(ctx, s.logger).Debug("summarize", attrs...)
	}(time.Now())
	return s.next.Summarize(ctx, instruction, text)
}
