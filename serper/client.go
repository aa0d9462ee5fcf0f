// Package serper provides a docsearch.SearchClient backed by the Serper
// Google Search API.
package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/docsearch"
)

// Default client settings.
const (
	DefaultEndpoint = "https://google.serper.dev/search"
	DefaultResults  = 2
	DefaultTimeout  = 30 * time.Second
)

// Ensure Client implements docsearch.SearchClient at compile time.
var _ docsearch.SearchClient = (*Client)(nil)

// Client sends search queries to Serper.
type Client struct {
	client   *http.Client
	apiKey   string
	endpoint string
	results  int
	timeout  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the search endpoint URL.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		c.endpoint = url
	}
}

// WithResults sets how many results are requested per query.
// Defaults to DefaultResults (2).
func WithResults(n int) Option {
	return func(c *Client) {
		c.results = n
	}
}

// WithTimeout sets the request timeout. Defaults to DefaultTimeout (30s).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a new Client authenticating with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		endpoint: DefaultEndpoint,
		results:  DefaultResults,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

type searchRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

type searchResponse struct {
	Organic []*docsearch.SearchResult `json:"organic"`
}

// Search sends query to Serper and returns the organic results as ranked by
// the provider.
func (c *Client) Search(ctx context.Context, query string) ([]*docsearch.SearchResult, error) {
	payload, err := json.Marshal(searchRequest{Q: query, Num: c.results})
	if err != nil {
		return nil, docsearch.WrapError(docsearch.ESEARCH, err, "encode search request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, docsearch.WrapError(docsearch.ESEARCH, err, "create search request")
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, docsearch.WrapError(docsearch.ESEARCH, err, "search request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, docsearch.WrapError(docsearch.ESEARCH, err, "read search response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &docsearch.Error{
			Code:    docsearch.ESEARCH,
			Message: fmt.Sprintf("search provider returned HTTP %d: %s", resp.StatusCode, truncate(string(body), 200)),
			Status:  resp.StatusCode,
		}
	}

	var out searchResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, docsearch.WrapError(docsearch.ESEARCH, err, "decode search response")
	}
	if out.Organic == nil {
		return []*docsearch.SearchResult{}, nil
	}
	return out.Organic, nil
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
