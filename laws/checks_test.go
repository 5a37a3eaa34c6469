package laws_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uniformity/completion"
	"github.com/katalvlaran/uniformity/laws"
	"github.com/katalvlaran/uniformity/set"
	"github.com/katalvlaran/uniformity/uniform"
)

func absDist(a, b int) float64 { return math.Abs(float64(a - b)) }

// TestSpaceChecks_Hold runs the battery over spaces built in different ways.
func TestSpaceChecks_Hold(t *testing.T) {
	four := set.Of(0, 1, 2, 3)
	metric, err := uniform.FromMetric(four, absDist, uniform.Halving(4))
	require.NoError(t, err)
	halves := uniform.Comap(func(x int) int { return x / 2 }, uniform.Discrete(four), four)

	var checks []laws.Check
	checks = append(checks, laws.SpaceChecks("discrete", uniform.Discrete(four))...)
	checks = append(checks, laws.SpaceChecks("indiscrete", uniform.Indiscrete(four))...)
	checks = append(checks, laws.SpaceChecks("metric", metric)...)
	checks = append(checks, laws.SpaceChecks("halves", halves)...)
	checks = append(checks, laws.SpaceChecks("sup", uniform.Sup(metric, halves))...)
	sum := uniform.Sum(halves, uniform.Indiscrete(set.Of("x", "y")))
	checks = append(checks, laws.SpaceChecks("sum", sum)...)

	results, err := laws.Run(context.Background(), checks, laws.WithParallelism(4))
	require.NoError(t, err)
	for _, r := range laws.Failed(results) {
		t.Errorf("%s: %v", r.Name, r.Err)
	}
	assert.Equal(t, "discrete/axioms/reflexive", results[0].Name)
}

// TestCompletionChecks_Hold runs the completion contracts.
func TestCompletionChecks_Hold(t *testing.T) {
	x, err := uniform.FromMetric(set.Of(1, 2, 3), absDist, uniform.Halving(2))
	require.NoError(t, err)
	y, err := uniform.FromMetric(set.Of(2, 4, 6), func(a, b int) float64 { return absDist(a, b) / 2 }, uniform.Halving(2))
	require.NoError(t, err)
	target, err := completion.CarrierTarget(y)
	require.NoError(t, err)
	pkg, err := completion.New(x, target, func(n int) int { return 2 * n })
	require.NoError(t, err)

	results, err := laws.Run(context.Background(), laws.CompletionChecks("doubled", pkg), laws.WithFailFast())
	require.NoError(t, err)
	assert.Len(t, results, 5)
	assert.Empty(t, laws.Failed(results))
}
