// Package retrieve provides the documentation retrieval pipeline.
// It coordinates query scoping, search, page fetching, chunked
// summarization, and aggregation of the cleaned pages.
package retrieve

import (
	"context"
	"strings"

	"github.com/fwojciec/docsearch"
)

// Ensure Retriever implements docsearch.DocsService at compile time.
var _ docsearch.DocsService = (*Retriever)(nil)

// Retriever implements docsearch.DocsService.
type Retriever struct {
	Registry *docsearch.Registry
	Search   docsearch.SearchClient
	Fetcher  docsearch.Fetcher
	Pages    *ChunkSummarizer

	// Extractor and Converter, when both set, reduce fetched HTML to its main
	// content as Markdown before summarization. Pages that cannot be reduced
	// are summarized from the raw body.
	Extractor docsearch.Extractor
	Converter docsearch.Converter

	// Results controls how search results are scheduled. Defaults to
	// Sequential: page N+1 is fetched after page N has been summarized.
	Results Processor
}

// GetDocs runs the pipeline for one invocation. The first fetch or
// summarization failure aborts the whole invocation.
func (r *Retriever) GetDocs(ctx context.Context, query, library string) (string, error) {
	q, err := docsearch.BuildQuery(r.Registry, query, library)
	if err != nil {
		return "", err
	}

	results, err := r.Search.Search(ctx, q.String())
	if err != nil {
		return "", stageError(docsearch.ESEARCH, err, "search %q", q.String())
	}
	if len(results) == 0 {
		return docsearch.NoResults, nil
	}

	contents, err := r.processor().Process(ctx, len(results), func(ctx context.Context, i int) (string, error) {
		return r.processResult(ctx, results[i])
	})
	if err != nil {
		return "", err
	}

	entries := make([]docsearch.Entry, len(results))
	for i, result := range results {
		entries[i] = docsearch.Entry{Source: result.Link, Content: contents[i]}
	}
	return docsearch.Aggregate(entries), nil
}

// processResult fetches and cleans a single search result.
func (r *Retriever) processResult(ctx context.Context, result *docsearch.SearchResult) (string, error) {
	body, err := r.Fetcher.Fetch(ctx, result.Link)
	if err != nil {
		return "", stageError(docsearch.EFETCH, err, "fetch %s", result.Link)
	}
	if body == "" {
		return "", nil
	}

	return r.Pages.SummarizePage(ctx, r.preclean(body, result.Link))
}

// preclean returns the main content of body as Markdown when pre-cleaning is
// configured, or body itself otherwise.
func (r *Retriever) preclean(body, link string) string {
	if r.Extractor == nil || r.Converter == nil {
		return body
	}

	extracted, err := r.Extractor.Extract(body, link)
	if err != nil || strings.TrimSpace(extracted.ContentHTML) == "" {
		return body
	}

	markdown, err := r.Converter.Convert(extracted.ContentHTML, link)
	if err != nil || strings.TrimSpace(markdown) == "" {
		return body
	}
	return markdown
}

func (r *Retriever) processor() Processor {
	if r.Results == nil {
		return Sequential{}
	}
	return r.Results
}
