package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sant0-9/promptcraft/internal/config"
)

// NewProvider creates a provider from config
func NewProvider(ctx context.Context, cfg *config.Config, httpClient *http.Client) (Provider, error) {
	if err := cfg.CheckCredentials(); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case "novita", "openai", "custom":
		return NewOpenAIProvider(cfg.Provider, cfg.APIKey, cfg.BaseURL, cfg.Model, httpClient), nil

	case "anthropic":
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, httpClient), nil

	case "gemini":
		p, err := NewGeminiProvider(ctx, cfg.APIKey, cfg.BaseURL, cfg.Model, httpClient)
		if err != nil {
			return nil, err
		}
		return p, nil

	case "ollama":
		return NewOllamaProvider(cfg.BaseURL, cfg.Model, httpClient), nil

	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownProvider, cfg.Provider)
	}
}

// NewClientFromConfig wires a provider into a Client with the configured
// model, sampling parameters and retry policy
func NewClientFromConfig(ctx context.Context, cfg *config.Config, observer Observer) (*Client, error) {
	provider, err := NewProvider(ctx, cfg, nil)
	if err != nil {
		return nil, err
	}

	return NewClient(provider,
		WithModel(cfg.Model),
		WithGeneration(Generation{
			MaxTokens:   cfg.Generation.MaxTokens,
			Temperature: cfg.Generation.Temperature,
			TopP:        cfg.Generation.TopP,
			PreferTopP:  cfg.Generation.PreferTopP,
		}),
		WithRetryPolicy(RetryPolicy{
			MaxRetries:     cfg.Retry.MaxRetries,
			BaseDelay:      cfg.Retry.BaseDelay,
			AttemptTimeout: cfg.Retry.AttemptTimeout,
		}),
		WithObserver(observer),
	), nil
}
