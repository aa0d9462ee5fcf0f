package docsearch

import (
	"strings"
)

// SearchQuery is a domain-scoped search query built for one invocation.
type SearchQuery struct {
	Raw     string
	Library string
	Prefix  string
}

// String returns the composed query sent to the search provider.
func (q *SearchQuery) String() string {
	return "site:" + q.Prefix + " " + q.Raw
}

// BuildQuery scopes a raw query to the documentation site of library.
// Returns EUNSUPPORTED if library is not registered and EINVALID if the
// query is blank. The raw query is used verbatim.
func BuildQuery(reg *Registry, query, library string) (*SearchQuery, error) {
	prefix, ok := reg.Resolve(library)
	if !ok {
		return nil, Errorf(EUNSUPPORTED, "library %s not supported by this tool", library)
	}
	if strings.TrimSpace(query) == "" {
		return nil, Errorf(EINVALID, "query required")
	}
	return &SearchQuery{
		Raw:     query,
		Library: library,
		Prefix:  prefix,
	}, nil
}
