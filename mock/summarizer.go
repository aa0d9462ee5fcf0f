package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of docsearch.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, instruction, text string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, instruction, text string) (string, error) {
	return s.SummarizeFn(ctx, instruction, text)
}
