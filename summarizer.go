package docsearch

import "context"

// DefaultInstruction is the system instruction used to clean page chunks.
const DefaultInstruction = "You are a documentation scraper. Return only the readable text of the page. " +
	"Remove HTML markup, scripts, styles, navigation and any other component that is not part of the content."

// Summarizer cleans a piece of text with a text-generation service.
type Summarizer interface {
	// Summarize sends instruction as the system prompt and text as the user
	// input, and returns the generated text.
	Summarize(ctx context.Context, instruction, text string) (string, error)
}
