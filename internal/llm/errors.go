package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrCompletionFailed covers network errors, non-2xx responses and
	// responses without completion text. It is retried.
	ErrCompletionFailed = errors.New("completion request failed")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)

// ExhaustedError is returned once every attempt has failed.
// It matches both ErrRetryExhausted and ErrCompletionFailed.
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s after %d attempts: %v", ErrRetryExhausted, e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() []error {
	return []error{ErrRetryExhausted, ErrCompletionFailed, e.Last}
}

// completionError tags err as a failed completion unless it already is one
func completionError(err error) error {
	if err == nil || errors.Is(err, ErrCompletionFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrCompletionFailed, err)
}
