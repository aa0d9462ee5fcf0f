package gemini

import (
	"context"

	"github.com/fwojciec/docsearch"
	"google.golang.org/genai"
)

// Ensure Summarizer implements docsearch.Summarizer at compile time.
var _ docsearch.Summarizer = (*Summarizer)(nil)

// Summarizer implements docsearch.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer that generates with model.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	return &Summarizer{client: client, model: model}
}

// Summarize cleans text following instruction.
func (s *Summarizer) Summarize(ctx context.Context, instruction, text string) (string, error) {
	if text == "" {
		return "", docsearch.Errorf(docsearch.EINVALID, "text required")
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{genai.NewContentFromText(text, "user")},
		BuildConfig(instruction),
	)
	if err != nil {
		return "", docsearch.WrapError(docsearch.ESUMMARIZE, err, "gemini generate content")
	}
	if result == nil {
		return "", docsearch.Errorf(docsearch.ESUMMARIZE, "gemini returned nil result")
	}
	if fb := result.PromptFeedback; fb != nil && fb.BlockReason != "" {
		return "", docsearch.Errorf(docsearch.ESUMMARIZE, "gemini blocked prompt: %s", fb.BlockReason)
	}
	if len(result.Candidates) == 0 {
		return "", docsearch.Errorf(docsearch.ESUMMARIZE, "gemini returned no candidates")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(instruction string) *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instruction}},
		},
		Temperature: &temp,
	}
}
