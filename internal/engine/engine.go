// Package engine turns keyword requests into finished prompts: it resolves
// templates, calls the completion model, caches results and falls back to
// offline templates when the model cannot be reached.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/sant0-9/promptcraft/internal/cache"
	"github.com/sant0-9/promptcraft/internal/catalog"
	"github.com/sant0-9/promptcraft/internal/llm"
	"github.com/sant0-9/promptcraft/internal/prompts"
)

// ErrNoCompleter is reported when the engine has no model configured
var ErrNoCompleter = errors.New("no completion provider configured")

// Completer runs the bounded attempt loop against a model. *llm.Client implements it.
type Completer interface {
	Do(ctx context.Context, system, user string, onAttempt func(attempt int)) llm.Outcome
}

// Engine is safe for concurrent use
type Engine struct {
	completer   Completer
	maxAttempts int
	cache       cache.Cache
	group       singleflight.Group
	log         *zap.Logger
}

type Option func(*Engine)

func WithCache(c cache.Cache) Option {
	return func(e *Engine) {
		if c != nil {
			e.cache = c
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithMaxAttempts sets the attempt total reported in progress events
func WithMaxAttempts(n int) Option {
	return func(e *Engine) { e.maxAttempts = n }
}

// New creates an engine. A nil completer makes every request use the fallback.
func New(completer Completer, opts ...Option) *Engine {
	e := &Engine{
		completer:   completer,
		maxAttempts: 1 + llm.DefaultRetryPolicy().MaxRetries,
		cache:       cache.NewUnbounded(),
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Cache exposes the engine's result cache
func (e *Engine) Cache() cache.Cache {
	return e.cache
}

type flightResult struct {
	prompt   string
	fallback string
	err      error
	attempts int
	cached   bool
}

// Generate produces a prompt for req. It never fails: when the model cannot
// be reached the response carries the error and an offline fallback.
func (e *Engine) Generate(ctx context.Context, req Request) Response {
	return e.GenerateWithProgress(ctx, req, nil)
}

// GenerateWithProgress is Generate with a per-call progress callback.
// Identical concurrent requests share one model call. The shared call does
// not inherit any caller's cancellation, so a caller that goes away only
// degrades its own response.
func (e *Engine) GenerateWithProgress(ctx context.Context, req Request, onProgress func(Progress)) Response {
	start := time.Now()
	category := catalog.ParseTaskCategory(req.TaskType)
	platform := catalog.ParsePlatform(req.Platform)
	key := cache.Key(category.String(), platform.String(), req.Keywords)

	log := e.log.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("task", category.String()),
		zap.String("platform", platform.String()),
	)

	// Stops forwarding once this caller has returned
	var left atomic.Bool
	report := func(p Progress) {
		if onProgress != nil && !left.Load() {
			onProgress(p)
		}
	}

	report(Progress{Stage: StageIdle, Message: "Starting"})

	resp := Response{
		TaskType: category.String(),
		Platform: platform.String(),
	}

	if prompt, ok := e.cache.Get(key); ok {
		report(Progress{Stage: StageDone, Message: "Served from cache"})
		log.Info("prompt served from cache", zap.Duration("elapsed", time.Since(start)))

		resp.Success = true
		resp.Prompt = prompt
		resp.Cached = true
		return resp
	}

	var res flightResult
	shared := false
	if err := ctx.Err(); err != nil {
		res = e.abandoned(err, req.Keywords, category, platform, report)
	} else {
		flight := context.WithoutCancel(ctx)
		ch := e.group.DoChan(key, func() (any, error) {
			return e.generate(flight, key, req.Keywords, category, platform, report), nil
		})

		select {
		case r := <-ch:
			res = r.Val.(flightResult)
			shared = r.Shared
		case <-ctx.Done():
			left.Store(true)
			res = e.abandoned(ctx.Err(), req.Keywords, category, platform, onProgress)
		}
	}

	if onProgress != nil {
		left.Store(true)
		onProgress(Progress{Stage: StageDone, Message: "Done"})
	}

	resp.Attempts = res.attempts
	resp.Cached = res.cached
	if res.err != nil {
		log.Warn("completion failed, using offline template",
			zap.Error(res.err),
			zap.Int("attempts", res.attempts),
			zap.Bool("shared", shared),
			zap.Duration("elapsed", time.Since(start)),
		)
		resp.Error = res.err.Error()
		resp.Fallback = res.fallback
		return resp
	}

	log.Info("prompt generated",
		zap.Int("attempts", res.attempts),
		zap.Bool("cached", res.cached),
		zap.Bool("shared", shared),
		zap.Duration("elapsed", time.Since(start)),
	)
	resp.Success = true
	resp.Prompt = res.prompt
	return resp
}

// abandoned is the result for a caller whose context ended before the model answered
func (e *Engine) abandoned(err error, keywords string, category catalog.TaskCategory, platform catalog.PlatformID, report func(Progress)) flightResult {
	if report != nil {
		report(Progress{Stage: StageFallback, Message: "Building offline template"})
	}
	return flightResult{
		fallback: prompts.BuildFallback(keywords, category, platform),
		err:      err,
	}
}

func (e *Engine) generate(ctx context.Context, key, keywords string, category catalog.TaskCategory, platform catalog.PlatformID, report func(Progress)) flightResult {
	// Another flight may have filled the cache since the first lookup
	if prompt, ok := e.cache.Get(key); ok {
		return flightResult{prompt: prompt, cached: true}
	}

	report(Progress{Stage: StageAssembling, Message: "Assembling instructions"})
	pair, _ := prompts.Build(keywords, category, platform)

	var out llm.Outcome
	if e.completer == nil {
		out.Err = ErrNoCompleter
	} else {
		out = e.completer.Do(ctx, pair.System, pair.User, func(attempt int) {
			report(Progress{
				Stage:       StageCalling,
				Attempt:     attempt,
				MaxAttempts: e.maxAttempts,
				Message:     fmt.Sprintf("Calling model (attempt %d/%d)", attempt, e.maxAttempts),
			})
		})
	}

	if out.Err != nil {
		report(Progress{Stage: StageFallback, Message: "Building offline template"})
		return flightResult{
			fallback: prompts.BuildFallback(keywords, category, platform),
			err:      out.Err,
			attempts: out.Attempts,
		}
	}

	report(Progress{Stage: StageFormatting, Message: "Formatting prompt"})
	formatted := prompts.Format(out.Text, category,
		catalog.LookupTaskTemplate(category), catalog.LookupPlatformProfile(platform))
	e.cache.Add(key, formatted)

	return flightResult{prompt: formatted, attempts: out.Attempts}
}

// Offline builds the fallback prompt without calling the model
func (e *Engine) Offline(req Request) Response {
	category := catalog.ParseTaskCategory(req.TaskType)
	platform := catalog.ParsePlatform(req.Platform)

	return Response{
		Success:  true,
		Prompt:   prompts.BuildFallback(req.Keywords, category, platform),
		Offline:  true,
		TaskType: category.String(),
		Platform: platform.String(),
	}
}
