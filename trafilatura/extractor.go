// Package trafilatura extracts the main content of documentation pages
// using go-trafilatura.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/docsearch"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docsearch.Extractor at compile time.
var _ docsearch.Extractor = (*Extractor)(nil)

// Extractor implements docsearch.Extractor.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content of rawHTML. Links are kept so the
// summarizer still sees cross references.
func (e *Extractor) Extract(rawHTML, pageURL string) (*docsearch.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docsearch.Errorf(docsearch.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		IncludeLinks:    true,
		ExcludeComments: true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.IsAbs() {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, docsearch.WrapError(docsearch.EINTERNAL, err, "extract %s", pageURL)
	}

	var contentHTML string
	if result.ContentNode != nil {
		if contentHTML, err = renderNode(result.ContentNode); err != nil {
			return nil, err
		}
	}

	return &docsearch.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
