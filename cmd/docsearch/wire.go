package main

import (
	"context"
	"log/slog"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/gemini"
	"github.com/fwojciec/docsearch/htmltomarkdown"
	dshttp "github.com/fwojciec/docsearch/http"
	"github.com/fwojciec/docsearch/openai"
	"github.com/fwojciec/docsearch/readability"
	"github.com/fwojciec/docsearch/retrieve"
	"github.com/fwojciec/docsearch/serper"
	dsslog "github.com/fwojciec/docsearch/slog"
	"github.com/fwojciec/docsearch/trafilatura"
	"google.golang.org/genai"
)

// NewDocsService wires the retrieval pipeline described by cfg. The returned
// function releases the fetcher and must be called once the service is no
// longer used.
func NewDocsService(ctx context.Context, cfg *docsearch.Config, logger *slog.Logger) (docsearch.DocsService, func() error, error) {
	summarizer, err := newSummarizer(ctx, cfg.Summarizer)
	if err != nil {
		return nil, nil, err
	}

	search := serper.NewClient(cfg.Search.APIKey,
		serper.WithEndpoint(cfg.Search.Endpoint),
		serper.WithResults(cfg.Search.Results),
		serper.WithTimeout(cfg.Search.Timeout),
	)
	fetcher := dshttp.NewFetcher(dshttp.WithTimeout(cfg.Fetch.Timeout))

	r := &retrieve.Retriever{
		Registry: docsearch.NewRegistry(cfg.Libraries),
		Search:   dsslog.NewLoggingSearchClient(search, logger),
		Fetcher:  dsslog.NewLoggingFetcher(fetcher, logger),
		Pages: &retrieve.ChunkSummarizer{
			Summarizer:  dsslog.NewLoggingSummarizer(summarizer, newTokenCounter(ctx, cfg.Summarizer, logger), logger),
			ChunkSize:   cfg.Summarizer.ChunkSize,
			Instruction: cfg.Summarizer.Instruction,
			Chunks:      retrieve.NewProcessor(cfg.Concurrency.Chunks),
		},
		Results: retrieve.NewProcessor(cfg.Concurrency.Pages),
	}
	if cfg.Fetch.Preclean {
		r.Extractor = newExtractor(cfg.Fetch.Extractor)
		r.Converter = htmltomarkdown.NewConverter()
	}

	return dsslog.NewLoggingDocsService(r, logger), fetcher.Close, nil
}

func newSummarizer(ctx context.Context, cfg docsearch.SummarizerConfig) (docsearch.Summarizer, error) {
	switch cfg.Provider {
	case docsearch.ProviderOpenAI:
		return openai.NewSummarizer(openai.NewClient(cfg.APIKey, cfg.BaseURL), cfg.Model), nil
	case docsearch.ProviderGemini:
		clientConfig := &genai.ClientConfig{
			APIKey:  cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		}
		if cfg.BaseURL != "" {
			clientConfig.HTTPOptions.BaseURL = cfg.BaseURL
		}
		client, err := genai.NewClient(ctx, clientConfig)
		if err != nil {
			return nil, docsearch.WrapError(docsearch.ESUMMARIZE, err, "connect to Gemini API")
		}
		return gemini.NewSummarizer(client, cfg.Model), nil
	default:
		return nil, docsearch.Errorf(docsearch.EINVALID, "unknown summarizer provider %q", cfg.Provider)
	}
}

// newTokenCounter returns a local Gemini tokenizer when debug logging is
// enabled, or nil. Token counts are diagnostic only, so failures are logged
// and ignored.
func newTokenCounter(ctx context.Context, cfg docsearch.SummarizerConfig, logger *slog.Logger) docsearch.TokenCounter {
	if cfg.Provider != docsearch.ProviderGemini || !logger.Enabled(ctx, slog.LevelDebug) {
		return nil
	}
	counter, err := gemini.NewTokenCounter(cfg.Model)
	if err != nil {
		logger.Warn("token counting disabled", "model", cfg.Model, "err", err)
		return nil
	}
	return counter
}

func newExtractor(name string) docsearch.Extractor {
	if name == docsearch.ExtractorReadability {
		return readability.NewExtractor()
	}
	return trafilatura.NewExtractor()
}
