package llm

import "fmt"

// NewOpenRouterProvider targets OpenRouter's OpenAI-compatible API. Model
// names such as "anthropic/claude-3-haiku" pass through unchanged.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().OpenRouter.BaseURL
	}
	return newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	}), nil
}
