// Package util contains small shared helpers.
package util

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"
)

// Retrier retries a function with exponential backoff, capped at a fixed
// number of tries. It wraps "github.com/cenkalti/backoff".
type Retrier struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	// MaxTries is the total number of attempts, including the first.
	MaxTries int
	// ShouldRetry, when set, marks errors it returns false for as
	// permanent, stopping further attempts.
	ShouldRetry func(err error) bool
	// Notify, when set, is called before each backoff wait.
	Notify func(err error, d time.Duration)
}

// NewRetrier returns a Retrier with defaults suited to short-lived
// external commands such as queue submission.
func NewRetrier(tries int) *Retrier {
	return &Retrier{
		InitialInterval: time.Second,
		MaxInterval:     time.Second * 30,
		Multiplier:      2.0,
		MaxTries:        tries,
	}
}

// Retry runs f until it succeeds, the try budget is spent, or the context
// is canceled. The last error is returned.
func (r *Retrier) Retry(ctx context.Context, f func() error) error {
	eb := &backoff.ExponentialBackOff{
		InitialInterval:     r.InitialInterval,
		MaxInterval:         r.MaxInterval,
		Multiplier:          r.Multiplier,
		RandomizationFactor: 0.5,
		Clock:               backoff.SystemClock,
	}

	retries := r.MaxTries - 1
	if retries < 0 {
		retries = 0
	}
	b := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(retries)), ctx)

	return backoff.RetryNotify(func() error {
		err := f()
		if err != nil && r.ShouldRetry != nil && !r.ShouldRetry(err) {
			return &backoff.PermanentError{Err: err}
		}
		return err
	}, b, func(err error, d time.Duration) {
		if r.Notify != nil {
			r.Notify(err, d)
		}
	})
}
