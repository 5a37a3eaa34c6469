package laws

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Check is a named law. Run must not be nil and must be safe to call
// concurrently with other checks.
type Check struct {
	Name string
	Run  func() error
}

// Result is the outcome of one Check.
type Result struct {
	Name     string
	Err      error
	Duration time.Duration
}

// OK reports whether the law held.
func (r Result) OK() bool { return r.Err == nil }

// Run executes checks concurrently and returns their results in input order.
//
// At most WithParallelism checks run at once. A panicking check is
// reported as a violation; checks not started after a fail-fast stop or
// a cancelled ctx carry ErrSkipped. The returned error is nil
// unless ctx was cancelled or, with WithFailFast, a check failed; in the
// latter case it wraps that check's error.
func Run(ctx context.Context, checks []Check, opts ...Option) ([]Result, error) {
	o := gatherOptions(opts)
	results := make([]Result, len(checks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)
	for i, c := range checks {
		results[i].Name = c.Name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = fmt.Errorf("%w: %w", ErrSkipped, err)
				return nil
			}
			start := time.Now()
			err := runOne(c)
			results[i].Err = err
			results[i].Duration = time.Since(start)
			if err == nil {
				return nil
			}
			o.logger.Warn("laws: check failed", zap.String("check", c.Name), zap.Error(err))
			if o.failFast {
				return fmt.Errorf("laws: %s: %w", c.Name, err)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, ctx.Err()
}

// runOne calls c.Run, turning a panic into a violation.
func runOne(c Check) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = violated("panic: %v", r)
		}
	}()

	return c.Run()
}

// Failed returns the results whose law did not hold.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.OK() {
			out = append(out, r)
		}
	}

	return out
}
