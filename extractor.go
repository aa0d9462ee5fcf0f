package docsearch

// ExtractResult holds the main content of a documentation page.
type ExtractResult struct {
	Title string

	// ContentHTML is the main content with navigation, footers and sidebars
	// removed.
	ContentHTML string
}

// Extractor reduces a fetched page to its main content. pageURL is the
// address the page was fetched from and is used to resolve relative links.
// Used only when pre-cleaning is enabled.
type Extractor interface {
	Extract(html, pageURL string) (*ExtractResult, error)
}
