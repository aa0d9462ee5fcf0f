package docsearch

import "sort"

// Registry maps library identifiers to the documentation domain/path prefix
// used to scope searches. A Registry is immutable once created and safe for
// concurrent use.
type Registry struct {
	prefixes map[string]string
}

// NewRegistry creates a Registry from a library -> prefix table.
// The table is copied; later changes to it are not observed.
func NewRegistry(libraries map[string]string) *Registry {
	prefixes := make(map[string]string, len(libraries))
	for library, prefix := range libraries {
		prefixes[library] = prefix
	}
	return &Registry{prefixes: prefixes}
}

// DefaultLibraries returns the built-in documentation table.
func DefaultLibraries() map[string]string {
	return map[string]string{
		"langchain":   "python.langchain.com/docs",
		"llama-index": "docs.llamaindex.ai/en/stable",
		"openai":      "platform.openai.com/docs",
		"uv":          "docs.astral.sh/uv",
	}
}

// Resolve returns the documentation prefix registered for library.
func (r *Registry) Resolve(library string) (string, bool) {
	prefix, ok := r.prefixes[library]
	return prefix, ok
}

// Libraries returns the registered library identifiers in sorted order.
func (r *Registry) Libraries() []string {
	libraries := make([]string, 0, len(r.prefixes))
	for library := range r.prefixes {
		libraries = append(libraries, library)
	}
	sort.Strings(libraries)
	return libraries
}
