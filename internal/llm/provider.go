// Package llm holds the remote language-model providers the summarization proxy
// forwards to.
package llm

import (
	"fmt"

	"pdf-summarizer/internal/domain"
)

// NewProvider returns the provider named in cfg. It returns domain.ErrNoProvider
// when no API key is configured.
func NewProvider(cfg domain.LLMConfig) (domain.LLMProvider, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrNoProvider
	}
	switch cfg.Provider {
	case "", "anthropic", "claude":
		return NewAnthropicClient(cfg), nil
	case "openai":
		return NewOpenAIClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
