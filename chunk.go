package docsearch

import "unicode/utf8"

// DefaultChunkSize is the maximum number of characters sent to the
// summarization service in a single request.
const DefaultChunkSize = 4000

// SplitChunks partitions text into consecutive, non-overlapping chunks of
// size characters. Every chunk but the last has exactly size characters;
// joining the chunks in order reproduces text. Characters are counted as
// Unicode code points so multi-byte sequences are never split.
// Returns nil for empty text.
func SplitChunks(text string, size int) []string {
	if text == "" {
		return nil
	}
	if size <= 0 {
		size = DefaultChunkSize
	}

	chunks := make([]string, 0, utf8.RuneCountInString(text)/size+1)
	start, count := 0, 0
	for i := range text {
		if count == size {
			chunks = append(chunks, text[start:i])
			start, count = i, 0
		}
		count++
	}
	return append(chunks, text[start:])
}
