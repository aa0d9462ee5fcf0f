// Package openai implements docsearch.Summarizer against any
// OpenAI-compatible chat completions endpoint.
package openai

import (
	"context"

	"github.com/fwojciec/docsearch"
	"github.com/sashabaranov/go-openai"
)

// Ensure Summarizer implements docsearch.Summarizer at compile time.
var _ docsearch.Summarizer = (*Summarizer)(nil)

// Summarizer implements docsearch.Summarizer using a chat completions API.
type Summarizer struct {
	client *openai.Client
	model  string
}

// NewSummarizer creates a new Summarizer that generates with model.
func NewSummarizer(client *openai.Client, model string) *Summarizer {
	return &Summarizer{client: client, model: model}
}

// NewClient returns a chat completions client for apiKey. An empty baseURL
// targets the public OpenAI API.
func NewClient(apiKey, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}

// Summarize cleans text following instruction. The instruction is sent as the
// system message and text as the single user message.
func (s *Summarizer) Summarize(ctx context.Context, instruction, text string) (string, error) {
	if text == "" {
		return "", docsearch.Errorf(docsearch.EINVALID, "text required")
	}

	resp, err := s.client.CreateChatCompletion(ctx, BuildRequest(s.model, instruction, text))
	if err != nil {
		return "", docsearch.WrapError(docsearch.ESUMMARIZE, err, "chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", docsearch.Errorf(docsearch.ESUMMARIZE, "chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// BuildRequest returns the chat completion request for one chunk.
func BuildRequest(model, instruction, text string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	}
}
