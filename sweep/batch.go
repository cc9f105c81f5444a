package sweep

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gammazero/workerpool"
	"github.com/hashicorp/go-multierror"
	"github.com/openbehavior/fanout/logger"
)

// Batch expands a job template over an ordered list of parameter values
// and submits one rendered job per value. Submissions are issued in list
// order; a failed submission does not stop the rest of the batch.
type Batch struct {
	// Template is the pristine job template text. It is never mutated;
	// every rendering starts from it.
	Template string
	// Token is the placeholder marker replaced with each value.
	Token string
	// Values are the parameter values, one submission each. Duplicates
	// are submitted redundantly, not rejected.
	Values []string
	// Submitter receives each rendered job.
	Submitter Submitter
	// Concurrency bounds in-flight submissions. Values <= 1 submit
	// sequentially. Correctness doesn't depend on ordering; only log
	// order does.
	Concurrency int
	Log         *logger.Logger
}

// Run renders and submits one job per value. It returns nil when every
// submission succeeded, a configuration error before any submission was
// attempted, or a multierror naming each failed value, in list order.
func (b *Batch) Run(ctx context.Context) error {
	if b.Log == nil {
		b.Log = logger.NewNopLogger()
	}
	if err := b.preflight(); err != nil {
		return err
	}

	failures := b.submitAll(ctx)

	var result *multierror.Error
	for i, v := range b.Values {
		if failures[i] != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %v", v, failures[i]))
		}
	}
	if result != nil {
		b.Log.Error("Batch finished with failures",
			"failed", len(result.Errors), "total", len(b.Values))
	}
	return result.ErrorOrNil()
}

// preflight checks configuration before any submission is attempted, so
// a bad batch fails with nothing partially done.
func (b *Batch) preflight() error {
	if len(b.Values) == 0 {
		return fmt.Errorf("empty parameter value list")
	}
	if b.Token == "" {
		return fmt.Errorf("no placeholder token configured")
	}
	if b.Submitter == nil {
		return fmt.Errorf("no submitter configured")
	}

	// No nested expansion: a value carrying the token would be
	// re-substituted into itself.
	for _, v := range b.Values {
		if strings.Contains(v, b.Token) {
			return fmt.Errorf("value %q contains the placeholder token %q", v, b.Token)
		}
	}

	if TokenCount(b.Template, b.Token) == 0 {
		b.Log.Warn("Template does not contain the placeholder token; every job will be identical",
			"token", b.Token)
	}
	return nil
}

// submitAll submits every value and returns per-value errors, indexed by
// the value's position in the list.
func (b *Batch) submitAll(ctx context.Context) []error {
	failures := make([]error, len(b.Values))

	if b.Concurrency <= 1 {
		for i, v := range b.Values {
			if ctx.Err() != nil {
				// Already-submitted jobs stay submitted; the rest of
				// the list is reported as not attempted.
				failures[i] = ctx.Err()
				continue
			}
			failures[i] = b.submitOne(ctx, v)
		}
		return failures
	}

	var mu sync.Mutex
	wp := workerpool.New(b.Concurrency)
	for i, v := range b.Values {
		i, v := i, v
		wp.Submit(func() {
			err := ctx.Err()
			if err == nil {
				err = b.submitOne(ctx, v)
			}
			mu.Lock()
			failures[i] = err
			mu.Unlock()
		})
	}
	wp.StopWait()
	return failures
}

func (b *Batch) submitOne(ctx context.Context, value string) error {
	job := Render(b.Template, b.Token, value)

	id, err := b.Submitter.Submit(ctx, job)
	if err != nil {
		b.Log.Error("Job submission failed", "value", value, "error", err)
		return err
	}

	// Quiet success.
	b.Log.Debug("Submitted job", "value", value, "jobID", id)
	return nil
}
