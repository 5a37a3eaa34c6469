// SPDX-License-Identifier: MIT

package completion_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uniformity/completion"
	"github.com/katalvlaran/uniformity/filter"
	"github.com/katalvlaran/uniformity/set"
	"github.com/katalvlaran/uniformity/uniform"
)

// rat is a fraction that is not kept in lowest terms, so 1/2 and 2/4 are
// distinct points at distance zero.
type rat struct{ Num, Den int64 }

func (r rat) value() float64 { return float64(r.Num) / float64(r.Den) }

var rats = set.Of(rat{0, 1}, rat{1, 4}, rat{1, 2}, rat{2, 4}, rat{3, 4}, rat{1, 1})

func ratDist(a, b rat) float64 { return math.Abs(a.value() - b.value()) }

func floatDist(a, b float64) float64 { return math.Abs(a - b) }

// fixedDist measures int64 fixed-point numbers with 8 fractional bits.
func fixedDist(a, b int64) float64 { return math.Abs(float64(a-b)) / 256 }

func toFloat(r rat) float64 { return r.value() }

func toFixed(r rat) int64 { return r.Num * 256 / r.Den }

func mustMetric[X comparable](t *testing.T, carrier set.Finite[X], dist func(a, b X) float64) *uniform.Space[X] {
	t.Helper()
	u, err := uniform.FromMetric(carrier, dist, uniform.Halving(1))
	require.NoError(t, err)

	return u
}

// floatPackage completes the dyadic rationals by float64 values, limits
// found on the carrier.
func floatPackage(t *testing.T) *completion.Package[rat, float64] {
	t.Helper()
	y := mustMetric(t, set.Of(0, 0.25, 0.5, 0.75, 1), floatDist)
	target, err := completion.CarrierTarget(y)
	require.NoError(t, err)
	p, err := completion.New(mustMetric(t, rats, ratDist), target, toFloat)
	require.NoError(t, err)

	return p
}

// fixedPackage completes the same space by fixed-point numbers, limits
// found by metric refinement.
func fixedPackage(t *testing.T) *completion.Package[rat, int64] {
	t.Helper()
	y := mustMetric(t, set.Of[int64](0, 64, 128, 192, 256), fixedDist)
	target, err := completion.NewTarget(y, completion.MetricLimits(fixedDist, 0))
	require.NoError(t, err)
	p, err := completion.New(mustMetric(t, rats, ratDist), target, toFixed)
	require.NoError(t, err)

	return p
}

// TestNewTarget_Errors rejects non-separated spaces and missing limits.
func TestNewTarget_Errors(t *testing.T) {
	two := set.Of(0, 1)

	_, err := completion.CarrierTarget(uniform.Indiscrete(two))
	assert.ErrorIs(t, err, completion.ErrNotSeparated)

	_, err = completion.NewTarget(uniform.Discrete(two), nil)
	assert.ErrorIs(t, err, completion.ErrNilLimits)

	_, err = completion.NewTarget(uniform.Discrete(two), completion.LimitsFunc[int](nil))
	assert.ErrorIs(t, err, completion.ErrNilLimits)
}

// TestNew_Errors rejects embeddings that are not inducing or not dense.
func TestNew_Errors(t *testing.T) {
	two := set.Of(0, 1)
	double := func(x int) int { return 2 * x }
	id := func(x int) int { return x }

	four, err := completion.CarrierTarget(uniform.Discrete(set.Of(0, 1, 2, 3)))
	require.NoError(t, err)
	_, err = completion.New(uniform.Discrete(two), four, double)
	assert.ErrorIs(t, err, completion.ErrNotDense)

	disc, err := completion.CarrierTarget(uniform.Discrete(two))
	require.NoError(t, err)
	_, err = completion.New(uniform.Indiscrete(two), disc, id)
	assert.ErrorIs(t, err, completion.ErrNotInducing)

	assert.Panics(t, func() { _, _ = completion.New(uniform.Discrete(two), disc, nil) })
}

// TestPackages exposes the validated parts.
func TestPackages(t *testing.T) {
	p := floatPackage(t)
	assert.Equal(t, 6, p.Source().Carrier().Len())
	assert.Equal(t, 5, p.Space().Carrier().Len())
	assert.Equal(t, 0.5, p.Embed(rat{2, 4}))
	assert.False(t, p.Options().Fallback())
	assert.True(t, p.Target().Space().IsSeparated())

	prod, err := completion.Product(p, fixedPackage(t))
	require.NoError(t, err)
	assert.Equal(t, 36, prod.Source().Carrier().Len())
	assert.Equal(t, 25, prod.Space().Carrier().Len())
	assert.Equal(t, set.P(0.75, int64(192)), prod.Embed(set.P(rat{3, 4}, rat{3, 4})))
}

// TestMetricLimits refines until the diameter reaches the tolerance.
func TestMetricLimits(t *testing.T) {
	pts := set.Of(0, 0.5, 1)
	lim := completion.MetricLimits(floatDist, 0.25)

	z, err := lim.Lim(filter.Principal(pts, set.Set[float64](set.Of(0.5))))
	require.NoError(t, err)
	assert.Equal(t, 0.5, z)

	shrinking := filter.FromSets(pts, []set.Set[float64]{pts, set.Of(0.5, 1), set.Of(1.0)})
	z, err = lim.Lim(shrinking)
	require.NoError(t, err)
	assert.Equal(t, 1.0, z)

	_, err = lim.Lim(filter.Top(pts))
	assert.ErrorIs(t, err, completion.ErrNoLimitFound, "not Cauchy")
	_, err = lim.Lim(filter.Bottom(pts))
	assert.ErrorIs(t, err, completion.ErrNoLimitFound, "degenerate")

	assert.Panics(t, func() { completion.MetricLimits(floatDist, -1) })
	assert.Panics(t, func() { completion.MetricLimits(floatDist, math.NaN()) })
}

// TestCarrierLimits finds the unique limit of a Cauchy filter.
func TestCarrierLimits(t *testing.T) {
	y := floatPackage(t).Space()
	lim := completion.CarrierLimits(y)

	z, err := lim.Lim(y.Nhds(0.75))
	require.NoError(t, err)
	assert.Equal(t, 0.75, z)

	_, err = lim.Lim(filter.Top(y.Carrier()))
	assert.ErrorIs(t, err, completion.ErrNoLimitFound)

	broken := completion.LimitsFunc[float64](func(filter.Filter[float64]) (float64, error) {
		return 0, errors.New("oracle down")
	})
	_, err = broken.Lim(y.Nhds(0))
	assert.EqualError(t, err, "oracle down")
}
