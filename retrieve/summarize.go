package retrieve

import (
	"context"
	"strings"

	"github.com/fwojciec/docsearch"
)

// ChunkSummarizer cleans a page by splitting it into fixed-size chunks and
// sending each chunk to the summarization service.
type ChunkSummarizer struct {
	Summarizer docsearch.Summarizer

	// ChunkSize is the maximum chunk length in characters.
	// Defaults to docsearch.DefaultChunkSize.
	ChunkSize int

	// Instruction is the system instruction sent with every chunk.
	// Defaults to docsearch.DefaultInstruction.
	Instruction string

	// Chunks controls how chunks are scheduled. Defaults to Sequential.
	Chunks Processor
}

// SummarizePage returns the cleaned text of raw: the summaries of its chunks
// concatenated in chunk order with no separator. Empty input yields "" without
// calling the service. A failure on any chunk aborts the page with ESUMMARIZE.
func (c *ChunkSummarizer) SummarizePage(ctx context.Context, raw string) (string, error) {
	chunks := docsearch.SplitChunks(raw, c.chunkSize())
	if len(chunks) == 0 {
		return "", nil
	}

	instruction := c.Instruction
	if instruction == "" {
		instruction = docsearch.DefaultInstruction
	}

	parts, err := c.processor().Process(ctx, len(chunks), func(ctx context.Context, i int) (string, error) {
		summary, err := c.Summarizer.Summarize(ctx, instruction, chunks[i])
		if err != nil {
			return "", stageError(docsearch.ESUMMARIZE, err, "summarize chunk %d of %d", i+1, len(chunks))
		}
		return summary, nil
	})
	if err != nil {
		return "", err
	}

	return strings.Join(parts, ""), nil
}

func (c *ChunkSummarizer) chunkSize() int {
	if c.ChunkSize <= 0 {
		return docsearch.DefaultChunkSize
	}
	return c.ChunkSize
}

func (c *ChunkSummarizer) processor() Processor {
	if c.Chunks == nil {
		return Sequential{}
	}
	return c.Chunks
}

// stageError tags err with code unless it already carries an application
// code of its own.
func stageError(code string, err error, format string, args ...any) error {
	if docsearch.ErrorCode(err) != docsearch.EINTERNAL {
		return err
	}
	return docsearch.WrapError(code, err, format, args...)
}
