package docsearch

import "time"

// Summarization providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Content extractors available for pre-cleaning.
const (
	ExtractorTrafilatura = "trafilatura"
	ExtractorReadability = "readability"
)

// Config holds resolved settings for the retrieval pipeline and its upstream
// services. It is built once at process start and passed to constructors;
// nothing in the pipeline reads the environment directly.
type Config struct {
	// Libraries maps library identifiers to documentation prefixes.
	Libraries map[string]string `yaml:"libraries"`

	Search      SearchConfig      `yaml:"search"`
	Fetch       FetchConfig       `yaml:"fetch"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
}

// SearchConfig configures the search provider.
type SearchConfig struct {
	Endpoint string        `yaml:"endpoint"`
	APIKey   string        `yaml:"api_key"`
	Results  int           `yaml:"results"`
	Timeout  time.Duration `yaml:"timeout"`
}

// FetchConfig configures page retrieval.
type FetchConfig struct {
	Timeout time.Duration `yaml:"timeout"`

	// Preclean reduces fetched HTML to its main content as Markdown before
	// chunking. Off by default: pages are summarized from the raw body.
	Preclean  bool   `yaml:"preclean"`
	Extractor string `yaml:"extractor"`
}

// SummarizerConfig configures the text-generation service.
type SummarizerConfig struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	APIKey      string `yaml:"api_key"`
	BaseURL     string `yaml:"base_url"`
	ChunkSize   int    `yaml:"chunk_size"`
	Instruction string `yaml:"instruction"`
}

// ConcurrencyConfig bounds how many pages and chunks are processed at once.
// A value of 1 processes strictly in order, one at a time.
type ConcurrencyConfig struct {
	Pages  int `yaml:"pages"`
	Chunks int `yaml:"chunks"`
}

// Default configuration values.
const (
	DefaultSearchEndpoint = "https://google.serper.dev/search"
	DefaultSearchResults  = 2
	DefaultSearchTimeout  = 30 * time.Second
	DefaultFetchTimeout   = 30 * time.Second
	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultOpenAIModel    = "gpt-4o-mini"
)

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields with default values.
func (c *Config) ApplyDefaults() {
	if len(c.Libraries) == 0 {
		c.Libraries = DefaultLibraries()
	}
	if c.Search.Endpoint == "" {
		c.Search.Endpoint = DefaultSearchEndpoint
	}
	if c.Search.Results == 0 {
		c.Search.Results = DefaultSearchResults
	}
	if c.Search.Timeout == 0 {
		c.Search.Timeout = DefaultSearchTimeout
	}
	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = DefaultFetchTimeout
	}
	if c.Fetch.Extractor == "" {
		c.Fetch.Extractor = ExtractorTrafilatura
	}
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = ProviderGemini
	}
	if c.Summarizer.Model == "" {
		switch c.Summarizer.Provider {
		case ProviderOpenAI:
			c.Summarizer.Model = DefaultOpenAIModel
		default:
			c.Summarizer.Model = DefaultGeminiModel
		}
	}
	if c.Summarizer.ChunkSize == 0 {
		c.Summarizer.ChunkSize = DefaultChunkSize
	}
	if c.Summarizer.Instruction == "" {
		c.Summarizer.Instruction = DefaultInstruction
	}
	if c.Concurrency.Pages == 0 {
		c.Concurrency.Pages = 1
	}
	if c.Concurrency.Chunks == 0 {
		c.Concurrency.Chunks = 1
	}
}

// Validate returns an error if the configuration cannot be used to serve
// requests. Credentials are checked here rather than at first use.
func (c *Config) Validate() error {
	if len(c.Libraries) == 0 {
		return Errorf(EINVALID, "at least one library required")
	}
	for library, prefix := range c.Libraries {
		if prefix == "" {
			return Errorf(EINVALID, "library %q has no documentation prefix", library)
		}
	}
	if c.Search.APIKey == "" {
		return Errorf(EINVALID, "search API key required")
	}
	if c.Search.Results < 0 {
		return Errorf(EINVALID, "search results must not be negative")
	}
	switch c.Summarizer.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return Errorf(EINVALID, "unknown summarizer provider %q", c.Summarizer.Provider)
	}
	if c.Summarizer.APIKey == "" {
		return Errorf(EINVALID, "%s API key required", c.Summarizer.Provider)
	}
	if c.Summarizer.ChunkSize < 0 {
		return Errorf(EINVALID, "chunk size must not be negative")
	}
	switch c.Fetch.Extractor {
	case ExtractorTrafilatura, ExtractorReadability:
	default:
		return Errorf(EINVALID, "unknown extractor %q", c.Fetch.Extractor)
	}
	if c.Concurrency.Pages < 0 || c.Concurrency.Chunks < 0 {
		return Errorf(EINVALID, "concurrency must not be negative")
	}
	return nil
}
