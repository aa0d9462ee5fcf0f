// Package readability extracts the main content of documentation pages
// using go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/docsearch"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docsearch.Extractor at compile time.
var _ docsearch.Extractor = (*Extractor)(nil)

// Extractor implements docsearch.Extractor.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content of rawHTML with relative links resolved
// against pageURL.
func (e *Extractor) Extract(rawHTML, pageURL string) (*docsearch.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docsearch.Errorf(docsearch.EINVALID, "empty HTML input")
	}

	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil && u.IsAbs() {
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, docsearch.WrapError(docsearch.EINTERNAL, err, "extract %s", pageURL)
	}

	return &docsearch.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
