package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sant0-9/promptcraft/internal/cache"
	"github.com/sant0-9/promptcraft/internal/config"
	"github.com/sant0-9/promptcraft/internal/llm"
)

// FromConfig builds an engine with the configured cache, provider and retry policy.
// When the provider cannot be built the engine is still returned, without a
// completer, together with the error; every request then gets the fallback.
func FromConfig(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}

	c, err := cache.New(cache.Policy(cfg.Cache.Policy), cfg.Cache.Size)
	if err != nil {
		return nil, fmt.Errorf("build cache: %w", err)
	}

	opts := []Option{
		WithCache(c),
		WithLogger(log),
		WithMaxAttempts(1 + max(cfg.Retry.MaxRetries, 0)),
	}

	client, err := llm.NewClientFromConfig(ctx, cfg, llm.NewLogObserver(log))
	if err != nil {
		return New(nil, opts...), fmt.Errorf("build provider: %w", err)
	}
	return New(client, opts...), nil
}
