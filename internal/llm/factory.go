package llm

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/axlewave/leadgen-cli/internal/config"
)

// Config holds provider-independent generator settings.
type Config struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	MaxTokens   int
	Temperature float64
	TimeoutSecs int
}

// Timeout returns the per-call timeout with a default of 120s.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSecs <= 0 {
		return 120 * time.Second
	}
	return time.Duration(c.TimeoutSecs) * time.Second
}

// FromAppConfig converts the application LLM section.
func FromAppConfig(cfg config.LLMConfig) Config {
	return Config{
		Provider:    cfg.Provider,
		Model:       cfg.Model,
		APIKey:      cfg.Key,
		BaseURL:     cfg.BaseURL,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		TimeoutSecs: cfg.TimeoutSecs,
	}
}

// New creates a Generator for the configured provider. A missing API key or
// unknown provider is a configuration error, fatal at startup.
func New(cfg Config) (Generator, error) {
	switch strings.ToLower(cfg.Provider) {
	case "anthropic", "claude":
		if cfg.APIKey == "" {
			return nil, eris.Wrap(config.ErrConfiguration, "llm: anthropic requires llm.key")
		}
		return NewAnthropic(cfg), nil

	case "openai":
		if cfg.APIKey == "" {
			return nil, eris.Wrap(config.ErrConfiguration, "llm: openai requires llm.key")
		}
		return NewOpenAI(cfg), nil

	case "ollama":
		// Ollama speaks the OpenAI chat API; no key required.
		if cfg.BaseURL == "" {
			cfg.BaseURL = "http://localhost:11434/v1"
		}
		if cfg.APIKey == "" {
			cfg.APIKey = "ollama"
		}
		return NewOpenAI(cfg), nil

	default:
		return nil, eris.Wrapf(config.ErrConfiguration, "llm: unknown provider %q (supported: anthropic, openai, ollama)", cfg.Provider)
	}
}
