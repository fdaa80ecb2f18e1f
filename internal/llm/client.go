package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// RetryPolicy bounds the attempts made for one completion
type RetryPolicy struct {
	// MaxRetries is the number of attempts after the first
	MaxRetries int
	// BaseDelay is multiplied by the retry number before each retry
	BaseDelay time.Duration
	// AttemptTimeout caps a single attempt; zero means no cap
	AttemptTimeout time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:     3,
		BaseDelay:      time.Second,
		AttemptTimeout: 30 * time.Second,
	}
}

// SleepFunc waits for d or until ctx is done
type SleepFunc func(ctx context.Context, d time.Duration) error

// Client sends system and user instructions to a Provider with bounded retries
type Client struct {
	provider Provider
	model    string
	gen      Generation
	retry    RetryPolicy
	observer Observer
	sleep    SleepFunc
}

type Option func(*Client)

func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

func WithGeneration(gen Generation) Option {
	return func(c *Client) { c.gen = gen }
}

func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) { c.retry = p }
}

func WithObserver(o Observer) Option {
	return func(c *Client) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithSleep replaces the delay between retries
func WithSleep(fn SleepFunc) Option {
	return func(c *Client) {
		if fn != nil {
			c.sleep = fn
		}
	}
}

func NewClient(provider Provider, opts ...Option) *Client {
	c := &Client{
		provider: provider,
		gen:      DefaultGeneration(),
		retry:    DefaultRetryPolicy(),
		observer: NoopObserver{},
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Provider() Provider {
	return c.provider
}

func (c *Client) Model() string {
	return c.model
}

// Outcome is the result of Do
type Outcome struct {
	Text     string
	Attempts int
	// Delays holds the wait before each retry, in order
	Delays []time.Duration
	Err    error
}

// Complete returns the trimmed completion text or the final error
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	out := c.Do(ctx, system, user, nil)
	return out.Text, out.Err
}

// Do runs the attempt loop. onAttempt, when set, is called with the
// attempt number before each attempt starts.
func (c *Client) Do(ctx context.Context, system, user string, onAttempt func(attempt int)) Outcome {
	req := NewRequest(c.model, system, user, c.gen)
	attempts := 1 + max(c.retry.MaxRetries, 0)

	var (
		out     Outcome
		lastErr error
	)
	for i := 1; i <= attempts; i++ {
		if i > 1 {
			delay := time.Duration(i-1) * c.retry.BaseDelay
			out.Delays = append(out.Delays, delay)
			if err := c.sleep(ctx, delay); err != nil {
				out.Err = completionError(fmt.Errorf("waiting to retry: %w", err))
				return out
			}
		}

		if onAttempt != nil {
			onAttempt(i)
		}
		out.Attempts = i

		start := time.Now()
		text, err := c.attempt(ctx, req)
		c.observer.OnAttempt(AttemptEvent{
			Provider: c.provider.Name(),
			Model:    req.Model,
			Attempt:  i,
			Latency:  time.Since(start),
			Err:      err,
		})
		if err == nil {
			out.Text = text
			return out
		}
		lastErr = err

		// Don't retry once the caller has gone away
		if ctx.Err() != nil {
			out.Err = lastErr
			return out
		}
	}

	out.Err = &ExhaustedError{Attempts: out.Attempts, Last: lastErr}
	return out
}

func (c *Client) attempt(ctx context.Context, req *CompletionRequest) (string, error) {
	if c.retry.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.retry.AttemptTimeout)
		defer cancel()
	}

	resp, err := c.provider.Complete(ctx, req)
	if err != nil {
		return "", completionError(err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: empty response", ErrCompletionFailed)
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return "", fmt.Errorf("%w: no completion text", ErrCompletionFailed)
	}
	return text, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
