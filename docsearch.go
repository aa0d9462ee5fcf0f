// Package docsearch provides a documentation retrieval tool for AI agents.
// Given a natural language query and a supported library, it searches the
// library's official documentation site, fetches the matching pages, cleans
// each page with a text-generation service, and returns one source-labeled
// document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., serper/, gemini/, http/).
package docsearch

import "context"

// DocsService answers documentation lookups for a calling agent.
type DocsService interface {
	// GetDocs searches the documentation of library for query and returns
	// the aggregated, source-labeled text of the matching pages.
	// Returns EUNSUPPORTED if the library is not registered, and NoResults
	// if the search produced no hits.
	GetDocs(ctx context.Context, query, library string) (string, error)
}
