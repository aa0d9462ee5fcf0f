package retrieve_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/mock"
	"github.com/fwojciec/docsearch/retrieve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoSummarizer returns each chunk unchanged.
func echoSummarizer() *mock.Summarizer {
	return &mock.Summarizer{
		SummarizeFn: func(_ context.Context, _, text string) (string, error) {
			return text, nil
		},
	}
}

// pages returns a fetcher serving fixed bodies by URL.
func pages(bodies map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return bodies[url], nil
		},
	}
}

func results(links ...string) []*docsearch.SearchResult {
	out := make([]*docsearch.SearchResult, len(links))
	for i, link := range links {
		out[i] = &docsearch.SearchResult{Link: link, Position: i + 1}
	}
	return out
}

func newRetriever(search docsearch.SearchClient, fetcher docsearch.Fetcher, summarizer docsearch.Summarizer) *retrieve.Retriever {
	return &retrieve.Retriever{
		Registry: docsearch.NewRegistry(docsearch.DefaultLibraries()),
		Search:   search,
		Fetcher:  fetcher,
		Pages:    &retrieve.ChunkSummarizer{Summarizer: summarizer},
	}
}

func TestRetriever_GetDocs(t *testing.T) {
	t.Parallel()

	t.Run("aggregates pages in search order", func(t *testing.T) {
		t.Parallel()

		var query string
		search := &mock.SearchClient{
			SearchFn: func(_ context.Context, q string) ([]*docsearch.SearchResult, error) {
				query = q
				return results("https://docs.astral.sh/uv/guides/publish/", "https://docs.astral.sh/uv/reference/cli/"), nil
			},
		}
		fetcher := pages(map[string]string{
			"https://docs.astral.sh/uv/guides/publish/": "publish page",
			"https://docs.astral.sh/uv/reference/cli/":  "cli page",
		})
		summarizer := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, _, text string) (string, error) {
				return "clean " + text, nil
			},
		}

		r := newRetriever(search, fetcher, summarizer)
		doc, err := r.GetDocs(context.Background(), "Publish a package with UV", "uv")

		require.NoError(t, err)
		assert.Equal(t, "site:docs.astral.sh/uv Publish a package with UV", query)
		assert.Equal(t,
			"SOURCE: https://docs.astral.sh/uv/guides/publish/\nclean publish page\n\n"+
				"SOURCE: https://docs.astral.sh/uv/reference/cli/\nclean cli page",
			doc)
	})

	t.Run("returns sentinel when search has no results", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchClient{
			SearchFn: func(context.Context, string) ([]*docsearch.SearchResult, error) {
				return []*docsearch.SearchResult{}, nil
			},
		}
		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				t.Fatal("fetcher should not be called")
				return "", nil
			},
		}
		summarizer := &mock.Summarizer{
			SummarizeFn: func(context.Context, string, string) (string, error) {
				t.Fatal("summarizer should not be called")
				return "", nil
			},
		}

		r := newRetriever(search, fetcher, summarizer)
		doc, err := r.GetDocs(context.Background(), "anything", "uv")

		require.NoError(t, err)
		assert.Equal(t, "No results found", doc)
	})

	t.Run("rejects unsupported library without network calls", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchClient{
			SearchFn: func(context.Context, string) ([]*docsearch.SearchResult, error) {
				t.Fatal("search should not be called")
				return nil, nil
			},
		}

		r := newRetriever(search, &mock.Fetcher{}, &mock.Summarizer{})
		_, err := r.GetDocs(context.Background(), "x", "flask")

		require.Error(t, err)
		assert.Equal(t, docsearch.EUNSUPPORTED, docsearch.ErrorCode(err))
	})

	t.Run("skips pages with empty bodies", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchClient{
			SearchFn: func(context.Context, string) ([]*docsearch.SearchResult, error) {
				return results("https://a.example", "https://b.example"), nil
			},
		}
		fetcher := pages(map[string]string{"https://b.example": "b"})

		r := newRetriever(search, fetcher, echoSummarizer())
		doc, err := r.GetDocs(context.Background(), "q", "uv")

		require.NoError(t, err)
		assert.Equal(t, "SOURCE: https://b.example\nb", doc)
	})

	t.Run("returns empty document when no page has content", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchClient{
			SearchFn: func(context.Context, string) ([]*docsearch.SearchResult, error) {
				return results("https://a.example", "https://b.example"), nil
			},
		}

		r := newRetriever(search, pages(nil), echoSummarizer())
		doc, err := r.GetDocs(context.Background(), "q", "uv")

		require.NoError(t, err)
		assert.Empty(t, doc)
	})

	t.Run("tags search failures", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchClient{
			SearchFn: func(context.Context, string) ([]*docsearch.SearchResult, error) {
				return nil, errors.New("dial tcp: timeout")
			},
		}

		r := newRetriever(search, &mock.Fetcher{}, &mock.Summarizer{})
		_, err := r.GetDocs(context.Background(), "q", "uv")

		require.Error(t, err)
		assert.Equal(t, docsearch.ESEARCH, docsearch.ErrorCode(err))
	})

	t.Run("keeps status carried by search error", func(t *testing.T) {
		t.Parallel()

		upstream := &docsearch.Error{Code: docsearch.ESEARCH, Message: "search provider returned 403", Status: 403}
		search := &mock.SearchClient{
			SearchFn: func(context.Context, string) ([]*docsearch.SearchResult, error) {
				return nil, upstream
			},
		}

		r := newRetriever(search, &mock.Fetcher{}, &mock.Summarizer{})
		_, err := r.GetDocs(context.Background(), "q", "uv")

		assert.Equal(t, 403, docsearch.ErrorStatus(err))
		assert.Same(t, upstream, err)
	})

	t.Run("fetch failure aborts remaining pages", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchClient{
			SearchFn: func(context.Context, string) ([]*docsearch.SearchResult, error) {
				return results("https://a.example", "https://b.example", "https://c.example"), nil
			},
		}
		var fetched []string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched = append(fetched, url)
				if url == "https://b.example" {
					return "", errors.New("connection refused")
				}
				return "body", nil
			},
		}

		r := newRetriever(search, fetcher, echoSummarizer())
		doc, err := r.GetDocs(context.Background(), "q", "uv")

		require.Error(t, err)
		assert.Empty(t, doc)
		assert.Equal(t, docsearch.EFETCH, docsearch.ErrorCode(err))
		assert.Contains(t, docsearch.ErrorMessage(err), "https://b.example")
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, fetched)
	})

	t.Run("summarization failure aborts remaining pages", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchClient{
			SearchFn: func(context.Context, string) ([]*docsearch.SearchResult, error) {
				return results("https://a.example", "https://b.example"), nil
			},
		}
		var fetched []string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched = append(fetched, url)
				return "body of " + url, nil
			},
		}
		summarizer := &mock.Summarizer{
			SummarizeFn: func(context.Context, string, string) (string, error) {
				return "", errors.New("rate limited")
			},
		}

		r := newRetriever(search, fetcher, summarizer)
		_, err := r.GetDocs(context.Background(), "q", "uv")

		require.Error(t, err)
		assert.Equal(t, docsearch.ESUMMARIZE, docsearch.ErrorCode(err))
		assert.Equal(t, []string{"https://a.example"}, fetched)
	})

	t.Run("processes pages sequentially by default", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchClient{
			SearchFn: func(context.Context, string) ([]*docsearch.SearchResult, error) {
				return results("https://a.example", "https://b.example"), nil
			},
		}
		var events []string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				events = append(events, "fetch "+url)
				return url, nil
			},
		}
		summarizer := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, _, text string) (string, error) {
				events = append(events, "summarize "+text)
				return text, nil
			},
		}

		r := newRetriever(search, fetcher, summarizer)
		_, err := r.GetDocs(context.Background(), "q", "uv")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"fetch https://a.example",
			"summarize https://a.example",
			"fetch https://b.example",
			"summarize https://b.example",
		}, events)
	})

	t.Run("parallel pages keep search order", func(t *testing.T) {
		t.Parallel()

		links := []string{"https://a.example", "https://b.example", "https://c.example"}
		search := &mock.SearchClient{
			SearchFn: func(context.Context, string) ([]*docsearch.SearchResult, error) {
				return results(links...), nil
			},
		}
		var mu sync.Mutex
		var fetched []string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				mu.Lock()
				fetched = append(fetched, url)
				mu.Unlock()
				return strings.TrimPrefix(url, "https://"), nil
			},
		}

		r := newRetriever(search, fetcher, echoSummarizer())
		r.Results = retrieve.Parallel{Limit: 3}
		doc, err := r.GetDocs(context.Background(), "q", "uv")

		require.NoError(t, err)
		assert.ElementsMatch(t, links, fetched)
		assert.Equal(t,
			"SOURCE: https://a.example\na.example\n\n"+
				"SOURCE: https://b.example\nb.example\n\n"+
				"SOURCE: https://c.example\nc.example",
			doc)
	})
}

func TestRetriever_GetDocs_Preclean(t *testing.T) {
	t.Parallel()

	search := &mock.SearchClient{
		SearchFn: func(context.Context, string) ([]*docsearch.SearchResult, error) {
			return results("https://a.example", "https://b.example"), nil
		},
	}
	fetcher := pages(map[string]string{
		"https://a.example": "<html><nav>menu</nav><main>Install uv</main></html>",
		"https://b.example": "<html>unextractable</html>",
	})

	t.Run("summarizes converted main content", func(t *testing.T) {
		t.Parallel()

		var summarized, converted []string
		summarizer := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, _, text string) (string, error) {
				summarized = append(summarized, text)
				return text, nil
			},
		}

		r := newRetriever(search, fetcher, summarizer)
		r.Extractor = &mock.Extractor{
			ExtractFn: func(html, pageURL string) (*docsearch.ExtractResult, error) {
				if strings.Contains(html, "<main>") {
					return &docsearch.ExtractResult{ContentHTML: "<main>Install uv</main>"}, nil
				}
				return nil, errors.New("no content")
			},
		}
		r.Converter = &mock.Converter{
			ConvertFn: func(html, pageURL string) (string, error) {
				converted = append(converted, pageURL)
				return "# Install uv", nil
			},
		}

		doc, err := r.GetDocs(context.Background(), "q", "uv")

		require.NoError(t, err)
		assert.Equal(t, []string{"# Install uv", "<html>unextractable</html>"}, summarized)
		assert.Equal(t, []string{"https://a.example"}, converted)
		assert.Contains(t, doc, "SOURCE: https://a.example\n# Install uv")
		assert.Contains(t, doc, "SOURCE: https://b.example\n<html>unextractable</html>")
	})
}
