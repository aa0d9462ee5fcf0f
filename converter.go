package docsearch

// Converter renders extracted HTML as Markdown before it is chunked.
type Converter interface {
	// Convert transforms HTML into Markdown. Relative links are made
	// absolute against pageURL when it is not empty.
	Convert(html, pageURL string) (string, error)
}
