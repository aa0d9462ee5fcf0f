package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.DocsService = (*DocsService)(nil)

// DocsService is a mock implementation of docsearch.DocsService.
type DocsService struct {
	GetDocsFn func(ctx context.Context, query, library string) (string, error)
}

func (s *DocsService) GetDocs(ctx context.Context, query, library string) (string, error) {
	return s.GetDocsFn(ctx, query, library)
}
