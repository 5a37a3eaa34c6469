// SPDX-License-Identifier: MIT

package completion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/uniformity/filter"
	"github.com/katalvlaran/uniformity/set"
	"github.com/katalvlaran/uniformity/uniform"
)

// Limits is the capability of a complete space: every Cauchy filter has a
// limit, and Lim finds it. Implementations return an error wrapping
// ErrNoLimitFound when they cannot.
type Limits[Z comparable] interface {
	Lim(f filter.Filter[Z]) (Z, error)
}

// LimitsFunc adapts a plain function to Limits.
type LimitsFunc[Z comparable] func(f filter.Filter[Z]) (Z, error)

// Lim calls fn(f).
func (fn LimitsFunc[Z]) Lim(f filter.Filter[Z]) (Z, error) { return fn(f) }

// CarrierLimits searches the carrier of space for a point f converges to.
// On a finite carrier every Cauchy filter on a separated space converges,
// so this makes any finite separated space complete.
func CarrierLimits[Z comparable](space *uniform.Space[Z]) Limits[Z] {
	return LimitsFunc[Z](func(f filter.Filter[Z]) (Z, error) {
		if z, ok := space.Limit(f); ok {
			return z, nil
		}
		var zero Z

		return zero, fmt.Errorf("%w: none of %d carrier points is a limit", ErrNoLimitFound, space.Carrier().Len())
	})
}

// MetricLimits finds limits of Cauchy filters in a space metrised by dist.
//
// Algorithm: intersect the basis sets of f one at a time over f's universe,
// A₀ = universe, Aₖ = Aₖ₋₁ ∩ Bₖ. As soon as diam(Aₖ) ≤ tol the first point
// of Aₖ (in universe order) is returned. For a Cauchy filter the diameters
// shrink towards zero, and on a separated carrier with tol = 0 the surviving
// set is the single limit point.
//
// Errors (both wrap ErrNoLimitFound):
//   - the running intersection becomes empty: the filter is degenerate;
//   - f's fuel runs out with the diameter still above tol.
//
// Complexity: O(k·n²) distance calls for k inspected basis sets on n points.
// Panics if tol is negative, NaN or infinite.
func MetricLimits[Z comparable](dist func(a, b Z) float64, tol float64) Limits[Z] {
	if !(tol >= 0) || math.IsInf(tol, 1) {
		panic(panicToleranceInvalid)
	}

	return LimitsFunc[Z](func(f filter.Filter[Z]) (Z, error) {
		var zero Z
		universe := f.Universe()
		acc := universe
		steps := 0
		for b := range f.Basis() {
			steps++
			acc = set.Materialize(set.Inter(set.Set[Z](acc), b), universe)
			if acc.Len() == 0 {
				return zero, fmt.Errorf("%w: basis is degenerate after %d sets", ErrNoLimitFound, steps)
			}
			if diameter(acc, dist) <= tol {
				return acc.At(0), nil
			}
		}

		return zero, fmt.Errorf("%w: diameter above %g after %d sets", ErrNoLimitFound, tol, steps)
	})
}

// diameter returns the largest distance between two points of s.
func diameter[Z comparable](s set.Finite[Z], dist func(a, b Z) float64) float64 {
	var d float64
	for a := range s.All() {
		for b := range s.All() {
			d = max(d, dist(a, b))
		}
	}

	return d
}

// productLimits takes limits componentwise, pushing f along the projections.
func productLimits[A, B comparable](la Limits[A], ca set.Finite[A], lb Limits[B], cb set.Finite[B]) Limits[set.Pair[A, B]] {
	return LimitsFunc[set.Pair[A, B]](func(f filter.Filter[set.Pair[A, B]]) (set.Pair[A, B], error) {
		a, err := la.Lim(filter.Map(set.Fst[A, B], f, ca))
		if err != nil {
			return set.Pair[A, B]{}, fmt.Errorf("first component: %w", err)
		}
		b, err := lb.Lim(filter.Map(set.Snd[A, B], f, cb))
		if err != nil {
			return set.Pair[A, B]{}, fmt.Errorf("second component: %w", err)
		}

		return set.P(a, b), nil
	})
}
