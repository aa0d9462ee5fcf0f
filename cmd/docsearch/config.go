package main

import (
	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/yaml"
)

// Environment variables read at startup.
const (
	EnvConfig        = "DOCSEARCH_CONFIG"
	EnvSerperAPIKey  = "SERPER_API_KEY"
	EnvGeminiAPIKey  = "GEMINI_API_KEY"
	EnvOpenAIAPIKey  = "OPENAI_API_KEY"
	EnvOpenAIBaseURL = "OPENAI_BASE_URL"
)

// LoadConfig resolves the configuration from the config file at path, or
// DOCSEARCH_CONFIG when path is empty, then applies environment overrides.
func LoadConfig(path string, getenv func(string) string) (*docsearch.Config, error) {
	if path == "" {
		path = getenv(EnvConfig)
	}
	if path == "" {
		path = yaml.DefaultPath()
	}

	cfg, err := yaml.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	applyEnv(cfg, getenv)
	return cfg, nil
}

// applyEnv overrides credentials and endpoints with environment values.
// Only the variables of the selected provider are consulted.
func applyEnv(cfg *docsearch.Config, getenv func(string) string) {
	if v := getenv(EnvSerperAPIKey); v != "" {
		cfg.Search.APIKey = v
	}

	switch cfg.Summarizer.Provider {
	case docsearch.ProviderGemini:
		if v := getenv(EnvGeminiAPIKey); v != "" {
			cfg.Summarizer.APIKey = v
		}
	case docsearch.ProviderOpenAI:
		if v := getenv(EnvOpenAIAPIKey); v != "" {
			cfg.Summarizer.APIKey = v
		}
		if v := getenv(EnvOpenAIBaseURL); v != "" {
			cfg.Summarizer.BaseURL = v
		}
	}
}
