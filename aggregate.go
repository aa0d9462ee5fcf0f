package docsearch

import "strings"

// NoResults is returned instead of a document when the search provider
// returned no hits at all.
const NoResults = "No results found"

// Entry is the cleaned content of one search result.
type Entry struct {
	Source  string
	Content string
}

// Aggregate renders entries as "SOURCE: {link}\n{content}" blocks in order,
// separated by a blank line. Entries without content are skipped, so a set of
// empty pages aggregates to "".
func Aggregate(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Content == "" {
			continue
		}
		parts = append(parts, "SOURCE: "+e.Source+"\n"+e.Content)
	}
	return strings.Join(parts, "\n\n")
}
