package gemini

import (
	"context"

	"github.com/fwojciec/docsearch"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ docsearch.TokenCounter = (*TokenCounter)(nil)

// TokenCounter reports how many tokens a chunk costs the summarization model.
// Counting is local; the tokenizer model is downloaded once on creation.
type TokenCounter struct {
	tok   *tokenizer.LocalTokenizer
	model string
}

// NewTokenCounter creates a TokenCounter for model. Models without a local
// tokenizer return EINVALID.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, docsearch.WrapError(docsearch.EINVALID, err, "no local tokenizer for %s", model)
	}
	return &TokenCounter{tok: tok, model: model}, nil
}

// CountTokens counts the tokens of text sent as a single user turn.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, "user")}, nil)
	if err != nil {
		return 0, docsearch.WrapError(docsearch.EINTERNAL, err, "count tokens for %s", tc.model)
	}
	return int(result.TotalTokens), nil
}
