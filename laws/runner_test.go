package laws_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/katalvlaran/uniformity/laws"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errBroken = errors.New("broken")

func passing(name string) laws.Check {
	return laws.Check{Name: name, Run: func() error { return nil }}
}

// TestRun_OrderAndOutcome keeps results in input order.
func TestRun_OrderAndOutcome(t *testing.T) {
	checks := []laws.Check{
		passing("a"),
		{Name: "b", Run: func() error { return errBroken }},
		passing("c"),
	}

	results, err := laws.Run(context.Background(), checks, laws.WithParallelism(2), laws.WithLogger(zap.NewNop()))
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, checks[i].Name, r.Name)
	}
	assert.True(t, results[0].OK())
	assert.ErrorIs(t, results[1].Err, errBroken)

	failed := laws.Failed(results)
	require.Len(t, failed, 1)
	assert.Equal(t, "b", failed[0].Name)
}

// TestRun_FailFast skips the checks queued behind the first failure.
func TestRun_FailFast(t *testing.T) {
	var ran atomic.Int32
	counted := func(name string) laws.Check {
		return laws.Check{Name: name, Run: func() error {
			ran.Add(1)

			return nil
		}}
	}
	checks := []laws.Check{
		{Name: "first", Run: func() error { return errBroken }},
		counted("second"),
		counted("third"),
	}

	results, err := laws.Run(context.Background(), checks, laws.WithParallelism(1), laws.WithFailFast())
	require.Error(t, err)
	assert.ErrorIs(t, err, errBroken)
	assert.Contains(t, err.Error(), "first")
	assert.Equal(t, int32(0), ran.Load())
	assert.ErrorIs(t, results[1].Err, laws.ErrSkipped)
	assert.ErrorIs(t, results[2].Err, context.Canceled)
}

// TestRun_Cancelled reports every check as skipped.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := laws.Run(ctx, []laws.Check{passing("a"), passing("b")})
	assert.ErrorIs(t, err, context.Canceled)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, laws.ErrSkipped)
	}
}

// TestRun_PanicIsViolation recovers a panicking check.
func TestRun_PanicIsViolation(t *testing.T) {
	results, err := laws.Run(context.Background(), []laws.Check{
		{Name: "boom", Run: func() error { panic("boom") }},
	})
	require.NoError(t, err)
	assert.ErrorIs(t, results[0].Err, laws.ErrLawViolated)
	assert.ErrorContains(t, results[0].Err, "boom")
}

// TestRun_Empty returns no results.
func TestRun_Empty(t *testing.T) {
	results, err := laws.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

// TestWithParallelism_Panics rejects a non-positive bound.
func TestWithParallelism_Panics(t *testing.T) {
	assert.Panics(t, func() { laws.WithParallelism(0) })
}
