package cache

import (
	"context"
	"errors"
	"time"
)

// ErrBackend marks failures of a remote cache backend (connection refused,
// timeouts). Callers may treat them as misses.
var ErrBackend = errors.New("cache backend unavailable")

type retryableError struct{ err error }

func (e retryableError) Error() string { return e.err.Error() }
func (e retryableError) Unwrap() error { return e.err }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return retryableError{err}
}

// IsRetryable reports whether err, or anything it wraps, was marked with
// [Retryable].
func IsRetryable(err error) bool {
	var re retryableError
	return errors.As(err, &re)
}

// Backoff repeats an operation while it fails with a retryable error.
type Backoff struct {
	// Attempts is the total number of calls, including the first.
	Attempts int
	// Delay is the first wait. It doubles after every failed attempt.
	Delay time.Duration
	// Max caps a single wait. Zero means no cap.
	Max time.Duration
}

// DefaultBackoff is used by backends that are not given another policy.
var DefaultBackoff = Backoff{Attempts: 3, Delay: 100 * time.Millisecond, Max: time.Second}

// Do calls fn until it succeeds, returns a non-retryable error or runs out of
// attempts. It returns the context error if ctx ends while waiting.
func (b Backoff) Do(ctx context.Context, fn func() error) error {
	attempts := max(b.Attempts, 1)
	delay := b.Delay

	var err error
	for i := range attempts {
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay *= 2
		if b.Max > 0 && delay > b.Max {
			delay = b.Max
		}
	}
	return err
}
