package engine

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/promptcraft/internal/cache"
	"github.com/sant0-9/promptcraft/internal/catalog"
	"github.com/sant0-9/promptcraft/internal/llm"
	"github.com/sant0-9/promptcraft/internal/prompts"
)

const reactKeywords = "React, hooks, responsive design, accessibility"

// fakeCompleter counts calls and returns a fixed outcome
type fakeCompleter struct {
	calls   atomic.Int32
	text    string
	err     error
	release chan struct{}
	entered chan struct{}
	once    sync.Once
}

func (f *fakeCompleter) Do(ctx context.Context, system, user string, onAttempt func(int)) llm.Outcome {
	f.calls.Add(1)
	if onAttempt != nil {
		onAttempt(1)
	}
	if f.entered != nil {
		f.once.Do(func() { close(f.entered) })
	}
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return llm.Outcome{Attempts: 1, Err: ctx.Err()}
		}
	}
	if f.err != nil {
		return llm.Outcome{Attempts: 1, Err: f.err}
	}
	return llm.Outcome{Text: f.text, Attempts: 1}
}

// failingProvider always errors
type failingProvider struct {
	calls atomic.Int32
}

func (p *failingProvider) Name() string { return "failing" }

func (p *failingProvider) Ping(context.Context) error { return nil }

func (p *failingProvider) Complete(context.Context, *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.calls.Add(1)
	return nil, errors.New("connection refused")
}

func noSleep(ctx context.Context, d time.Duration) error { return ctx.Err() }

func TestGenerate_CachesSuccessfulResult(t *testing.T) {
	completer := &fakeCompleter{text: "Detailed prompt body"}
	e := New(completer)
	req := Request{Keywords: reactKeywords, TaskType: "code-generation", Platform: "claude"}

	first := e.Generate(context.Background(), req)
	second := e.Generate(context.Background(), req)

	assert.Equal(t, int32(1), completer.calls.Load())
	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.Equal(t, first.Prompt, second.Prompt)
	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, 1, e.Cache().Len())

	want := prompts.Format("Detailed prompt body", catalog.TaskCodeGeneration,
		catalog.LookupTaskTemplate(catalog.TaskCodeGeneration), catalog.LookupPlatformProfile(catalog.PlatformClaude))
	assert.Equal(t, want, first.Prompt)
	assert.Equal(t, "code-generation", first.TaskType)
	assert.Equal(t, "claude", first.Platform)
}

func TestGenerate_CacheKeyUsesResolvedIDs(t *testing.T) {
	completer := &fakeCompleter{text: "body"}
	e := New(completer)

	e.Generate(context.Background(), Request{Keywords: reactKeywords, TaskType: "code-generation", Platform: "claude.ai"})
	resp := e.Generate(context.Background(), Request{Keywords: reactKeywords, TaskType: "code-generation", Platform: "claude"})

	assert.True(t, resp.Cached)
	assert.Equal(t, int32(1), completer.calls.Load())

	resp = e.Generate(context.Background(), Request{Keywords: reactKeywords + " ", TaskType: "code-generation", Platform: "claude"})
	assert.False(t, resp.Cached)
	assert.Equal(t, int32(2), completer.calls.Load())
}

func TestGenerate_ExhaustedRetriesReturnFallback(t *testing.T) {
	provider := &failingProvider{}
	client := llm.NewClient(provider,
		llm.WithRetryPolicy(llm.RetryPolicy{MaxRetries: 3, BaseDelay: time.Second, AttemptTimeout: time.Second}),
		llm.WithSleep(noSleep),
	)
	e := New(client)
	req := Request{Keywords: reactKeywords, TaskType: "code-generation", Platform: "claude"}

	resp := e.Generate(context.Background(), req)

	assert.Equal(t, int32(4), provider.calls.Load())
	assert.False(t, resp.Success)
	assert.Empty(t, resp.Prompt)
	assert.Equal(t, 4, resp.Attempts)
	assert.Contains(t, resp.Error, "exhausted")
	assert.Equal(t, prompts.BuildFallback(reactKeywords, catalog.TaskCodeGeneration, catalog.PlatformClaude), resp.Fallback)
	assert.Equal(t, resp.Fallback, resp.Text())
	assert.Equal(t, 0, e.Cache().Len(), "failures are not cached")
}

func TestGenerate_FailuresAreRetriedOnNextCall(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("down")}
	e := New(completer)
	req := Request{Keywords: "one, two", TaskType: "writing"}

	e.Generate(context.Background(), req)
	e.Generate(context.Background(), req)

	assert.Equal(t, int32(2), completer.calls.Load())
}

func TestGenerate_NilCompleterUsesFallback(t *testing.T) {
	e := New(nil)

	resp := e.Generate(context.Background(), Request{Keywords: "one, two"})

	assert.False(t, resp.Success)
	assert.Equal(t, ErrNoCompleter.Error(), resp.Error)
	assert.NotEmpty(t, resp.Fallback)
	assert.Equal(t, "general", resp.TaskType)
	assert.Equal(t, "general", resp.Platform)
}

func TestGenerate_UnknownTaskAndPlatformResolveToGeneral(t *testing.T) {
	e := New(&fakeCompleter{text: "body"})

	resp := e.Generate(context.Background(), Request{Keywords: "one, two", TaskType: "poetry", Platform: "bing.com"})

	require.True(t, resp.Success)
	assert.Equal(t, "general", resp.TaskType)
	assert.Equal(t, "general", resp.Platform)
	assert.True(t, strings.HasPrefix(resp.Prompt, "⚡ PROFESSIONAL GENERAL PROMPT FOR ANY AI ASSISTANT"))
}

func TestGenerate_ConcurrentIdenticalRequestsShareOneCall(t *testing.T) {
	completer := &fakeCompleter{
		text:    "shared body",
		release: make(chan struct{}),
		entered: make(chan struct{}),
	}
	e := New(completer)
	req := Request{Keywords: reactKeywords, TaskType: "website", Platform: "gemini"}

	const n = 10
	results := make([]Response, n)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0] = e.Generate(context.Background(), req)
	}()
	<-completer.entered

	for i := 1; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.Generate(context.Background(), req)
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(completer.release)
	wg.Wait()

	assert.Equal(t, int32(1), completer.calls.Load())
	for i, r := range results {
		require.True(t, r.Success, i)
		assert.Equal(t, results[0].Prompt, r.Prompt, i)
	}
	assert.Equal(t, 1, e.Cache().Len())
}

func TestGenerate_CancelledCallerDoesNotFailSharedRequest(t *testing.T) {
	completer := &fakeCompleter{
		text:    "shared body",
		release: make(chan struct{}),
		entered: make(chan struct{}),
	}
	e := New(completer)
	req := Request{Keywords: reactKeywords, TaskType: "writing", Platform: "chatgpt"}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	leader := make(chan Response, 1)
	go func() {
		leader <- e.Generate(ctx, req)
	}()
	<-completer.entered

	var second Response
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		second = e.Generate(context.Background(), req)
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	var first Response
	select {
	case first = <-leader:
	case <-time.After(time.Second):
		t.Fatal("cancelled caller did not return")
	}
	close(completer.release)
	wg.Wait()

	assert.False(t, first.Success)
	assert.Equal(t, context.Canceled.Error(), first.Error)
	assert.Equal(t, prompts.BuildFallback(reactKeywords, catalog.TaskWriting, catalog.PlatformChatGPT), first.Fallback)

	require.True(t, second.Success, second.Error)
	assert.Contains(t, second.Prompt, "shared body")
	assert.Equal(t, int32(1), completer.calls.Load())
	assert.Equal(t, 1, e.Cache().Len())
}

func TestGenerate_AlreadyCancelledContextSkipsModel(t *testing.T) {
	completer := &fakeCompleter{text: "unused"}
	e := New(completer)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var got []Stage
	resp := e.GenerateWithProgress(ctx, Request{Keywords: "one, two"}, func(p Progress) {
		got = append(got, p.Stage)
	})

	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Fallback)
	assert.Equal(t, int32(0), completer.calls.Load())
	assert.Equal(t, []Stage{StageIdle, StageFallback, StageDone}, got)
}

func TestGenerate_ProgressSequence(t *testing.T) {
	tests := []struct {
		name      string
		completer Completer
		want      []Stage
	}{
		{
			name:      "success",
			completer: &fakeCompleter{text: "ok"},
			want:      []Stage{StageIdle, StageAssembling, StageCalling, StageFormatting, StageDone},
		},
		{
			name:      "failure",
			completer: &fakeCompleter{err: errors.New("down")},
			want:      []Stage{StageIdle, StageAssembling, StageCalling, StageFallback, StageDone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.completer)
			var got []Stage
			e.GenerateWithProgress(context.Background(), Request{Keywords: "one, two"}, func(p Progress) {
				got = append(got, p.Stage)
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_ProgressReportsEveryAttempt(t *testing.T) {
	client := llm.NewClient(&failingProvider{},
		llm.WithRetryPolicy(llm.RetryPolicy{MaxRetries: 3}),
		llm.WithSleep(noSleep),
	)
	e := New(client, WithMaxAttempts(4))

	var attempts []int
	e.GenerateWithProgress(context.Background(), Request{Keywords: "one, two"}, func(p Progress) {
		if p.Stage == StageCalling {
			assert.Equal(t, 4, p.MaxAttempts)
			attempts = append(attempts, p.Attempt)
		}
	})

	assert.Equal(t, []int{1, 2, 3, 4}, attempts)
}

func TestGenerate_CacheHitSkipsStraightToDone(t *testing.T) {
	c := cache.NewUnbounded()
	c.Add(cache.Key("general", "general", "one, two"), "cached prompt")
	completer := &fakeCompleter{text: "fresh"}
	e := New(completer, WithCache(c))

	var got []Stage
	resp := e.GenerateWithProgress(context.Background(), Request{Keywords: "one, two"}, func(p Progress) {
		got = append(got, p.Stage)
	})

	assert.Equal(t, []Stage{StageIdle, StageDone}, got)
	assert.Equal(t, "cached prompt", resp.Prompt)
	assert.True(t, resp.Cached)
	assert.Equal(t, int32(0), completer.calls.Load())
}

func TestGenerate_NoopCacheAlwaysCalls(t *testing.T) {
	completer := &fakeCompleter{text: "body"}
	e := New(completer, WithCache(cache.Noop{}))
	req := Request{Keywords: "one, two"}

	e.Generate(context.Background(), req)
	e.Generate(context.Background(), req)

	assert.Equal(t, int32(2), completer.calls.Load())
}

func TestOffline(t *testing.T) {
	e := New(&fakeCompleter{text: "unused"})

	resp := e.Offline(Request{Keywords: reactKeywords, TaskType: "analysis", Platform: "perplexity.ai"})

	assert.True(t, resp.Success)
	assert.True(t, resp.Offline)
	assert.Equal(t, prompts.BuildFallback(reactKeywords, catalog.TaskAnalysis, catalog.PlatformPerplexity), resp.Prompt)
	assert.Equal(t, "perplexity", resp.Platform)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "FallbackBuilding", StageFallback.String())
	assert.Equal(t, "Unknown", Stage(99).String())
}
