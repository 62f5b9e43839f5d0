package config

import (
	"fmt"
	"os"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

const (
	defaultPort          = "8000"
	defaultNewsAPIURL    = "https://api.inshorts.abhi8290.in/api/v1/news"
	defaultEmbeddingsURL = "http://localhost:8080/embed"
)

// Config holds everything read from the environment at startup. It is built
// once in main and injected into components; nothing reads os.Getenv after
// this point.
type Config struct {
	Port            string
	OpenAIKey       string
	AnthropicKey    string
	PerplexityKey   string
	EmbeddingsURL   string
	NewsAPIURL      string
	FrontendURL     string
	SummaryProvider string
}

// Load reads the environment. OPENAI_API_KEY is required; the process must
// not start without it. PERPLEXITY_API_KEY is optional and only degrades the
// perplexity endpoint to 400 responses when absent.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", defaultPort),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:    os.Getenv("ANTHROPIC_API_KEY"),
		PerplexityKey:   os.Getenv("PERPLEXITY_API_KEY"),
		EmbeddingsURL:   getEnv("EMBEDDINGS_URL", defaultEmbeddingsURL),
		NewsAPIURL:      getEnv("NEWS_API_URL", defaultNewsAPIURL),
		FrontendURL:     os.Getenv("FRONTEND_URL"),
		SummaryProvider: getEnv("SUMMARY_PROVIDER", ProviderOpenAI),
	}

	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	switch cfg.SummaryProvider {
	case ProviderOpenAI:
	case ProviderAnthropic:
		if cfg.AnthropicKey == "" {
			return nil, fmt.Errorf("SUMMARY_PROVIDER=anthropic requires ANTHROPIC_API_KEY")
		}
	default:
		return nil, fmt.Errorf("unknown SUMMARY_PROVIDER: %q (valid: openai, anthropic)", cfg.SummaryProvider)
	}

	return cfg, nil
}

// OpenAIConfigured and PerplexityConfigured back the /health report. They
// only inspect the loaded config, never the providers themselves.
func (c *Config) OpenAIConfigured() bool     { return c.OpenAIKey != "" }
func (c *Config) PerplexityConfigured() bool { return c.PerplexityKey != "" }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
