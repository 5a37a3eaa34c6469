// SPDX-License-Identifier: MIT

package uniform

import (
	"fmt"
	"iter"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/uniformity/filter"
	"github.com/katalvlaran/uniformity/rel"
	"github.com/katalvlaran/uniformity/set"
)

// metricTolerance absorbs float rounding in the triangle inequality check.
const metricTolerance = 1e-12

// FromBasis builds a uniform space on carrier from a lazy entourage basis.
//
// Stages:
//  1. Pull at most Fuel sets, materialise them over carrier × carrier.
//  2. Reject an empty basis and sets missing the diagonal.
//  3. Refine a non-directed basis by prefix intersections.
//  4. Check that every swapped set is an entourage.
//  5. Find a half W (W ○ W ⊆ V) for every V, retrying with Symmetrize(W).
//
// Errors wrap ErrInvalidUniformityBasis with ErrEmptyBasis, ErrNotReflexive,
// ErrNotSymmetric or ErrNoHalfEntourage. They signal a caller bug and are
// never repaired silently.
func FromBasis[X comparable](carrier set.Finite[X], basis iter.Seq[rel.Rel[X]], opts ...Option) (*Space[X], error) {
	o := gatherOptions(opts)
	log := o.logger.With(zap.Int("carrier", carrier.Len()))
	pairs := rel.Pairs(carrier)

	sets := collect(basis, pairs, o.fuel)
	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUniformityBasis, ErrEmptyBasis)
	}
	for i, v := range sets {
		if !rel.IsReflexive[X](v, carrier) {
			return nil, fmt.Errorf("%w: entourage #%d: %w", ErrInvalidUniformityBasis, i, ErrNotReflexive)
		}
	}
	if !directed(sets, pairs) {
		log.Debug("uniform: basis is not directed, refining by prefix intersections", zap.Int("sets", len(sets)))
		sets = prefixIntersections(sets, pairs)
	}

	for i, v := range sets {
		swapped := rel.Swap[X](v)
		if !anySubset(sets, swapped, pairs) {
			return nil, fmt.Errorf("%w: entourage #%d: %w", ErrInvalidUniformityBasis, i, ErrNotSymmetric)
		}
	}

	for i := 0; i < len(sets); i++ {
		v := sets[i]
		if hasHalf(sets, v, carrier) {
			continue
		}
		half, ok := symmetricHalf(sets, v, carrier)
		if !ok {
			return nil, fmt.Errorf("%w: entourage #%d: %w", ErrInvalidUniformityBasis, i, ErrNoHalfEntourage)
		}
		log.Debug("uniform: half entourage found after symmetrization", zap.Int("entourage", i))
		sets = appendDistinct(sets, half)
	}
	log.Debug("uniform: basis accepted", zap.Int("sets", len(sets)))

	return fromSets(carrier, pairs, sets, o), nil
}

// anySubset reports whether some basis set lies inside s.
func anySubset[T comparable](sets []set.Finite[T], s set.Set[T], within set.Finite[T]) bool {
	for _, b := range sets {
		if set.Subset[T](b, s, within) {
			return true
		}
	}

	return false
}

// hasHalf reports ∃W ∈ sets: W ○ W ⊆ v.
func hasHalf[X comparable](sets []set.Finite[set.Pair[X, X]], v set.Finite[set.Pair[X, X]], carrier set.Finite[X]) bool {
	for _, w := range sets {
		if rel.CompSubset[X](w, w, v, carrier) {
			return true
		}
	}

	return false
}

// symmetricHalf retries the half search with Symmetrize(W) for every W.
func symmetricHalf[X comparable](sets []set.Finite[set.Pair[X, X]], v set.Finite[set.Pair[X, X]], carrier set.Finite[X]) (set.Finite[set.Pair[X, X]], bool) {
	pairs := rel.Pairs(carrier)
	for _, w := range sets {
		s := set.Materialize(rel.Symmetrize[X](w), pairs)
		if rel.CompSubset[X](s, s, v, carrier) {
			return s, true
		}
	}

	return set.Finite[set.Pair[X, X]]{}, false
}

// FromFilter validates an existing filter on carrier × carrier as a uniformity.
// The filter's fuel is used unless overridden by opts.
func FromFilter[X comparable](carrier set.Finite[X], f filter.Filter[set.Pair[X, X]], opts ...Option) (*Space[X], error) {
	all := append([]Option{WithFuel(f.Fuel())}, opts...)

	return FromBasis(carrier, f.Basis(), all...)
}

// FromMetric builds the uniformity of a pseudo-metric: entourages {d < r}
// for r drawn lazily from radii (Halving(1) when nil).
// Returns ErrNotPseudoMetric (wrapped) if dist is negative, NaN, asymmetric,
// non-zero on the diagonal or breaks the triangle inequality on carrier.
func FromMetric[X comparable](carrier set.Finite[X], dist func(a, b X) float64, radii iter.Seq[float64], opts ...Option) (*Space[X], error) {
	if err := checkPseudoMetric(carrier, dist); err != nil {
		return nil, err
	}
	if radii == nil {
		radii = Halving(1)
	}
	basis := func(yield func(rel.Rel[X]) bool) {
		for r := range radii {
			eps := r
			ball := set.Pred[set.Pair[X, X]](func(p set.Pair[X, X]) bool { return dist(p.First, p.Second) < eps })
			if !yield(ball) {
				return
			}
		}
	}

	return FromBasis(carrier, basis, opts...)
}

// checkPseudoMetric validates dist on every triple of carrier points.
// Complexity: O(n³).
func checkPseudoMetric[X comparable](carrier set.Finite[X], dist func(a, b X) float64) error {
	for a := range carrier.All() {
		if d := dist(a, a); d != 0 {
			return fmt.Errorf("%w: %w: d(%v, %v) = %g", ErrInvalidUniformityBasis, ErrNotPseudoMetric, a, a, d)
		}
		for b := range carrier.All() {
			dab := dist(a, b)
			if math.IsNaN(dab) || dab < 0 || math.IsInf(dab, 0) {
				return fmt.Errorf("%w: %w: d(%v, %v) = %g", ErrInvalidUniformityBasis, ErrNotPseudoMetric, a, b, dab)
			}
			if dba := dist(b, a); dba != dab {
				return fmt.Errorf("%w: %w: d(%v, %v) ≠ d(%v, %v)", ErrInvalidUniformityBasis, ErrNotPseudoMetric, a, b, b, a)
			}
			for c := range carrier.All() {
				if dist(a, c) > dab+dist(b, c)+metricTolerance {
					return fmt.Errorf("%w: %w: triangle (%v, %v, %v)", ErrInvalidUniformityBasis, ErrNotPseudoMetric, a, b, c)
				}
			}
		}
	}

	return nil
}

// Halving yields r0, r0/2, r0/4, ... until the radius underflows to zero,
// which for float64 takes at most about 1075 halvings. In practice the
// consumer stops much earlier: bases are only pulled up to their fuel.
// Panics if r0 is not a finite positive number.
func Halving(r0 float64) iter.Seq[float64] {
	if !(r0 > 0) || math.IsInf(r0, 1) {
		panic(panicRadiusInvalid)
	}

	return func(yield func(float64) bool) {
		for r := r0; r > 0; r /= 2 {
			if !yield(r) {
				return
			}
		}
	}
}

// Discrete returns the finest uniformity: the principal filter of the diagonal.
// Its topology is discrete.
func Discrete[X comparable](carrier set.Finite[X], opts ...Option) *Space[X] {
	o := gatherOptions(opts)
	pairs := rel.Pairs(carrier)

	return fromSets(carrier, pairs, []set.Finite[set.Pair[X, X]]{rel.Diagonal(carrier)}, o)
}

// Indiscrete returns the coarsest uniformity: only carrier × carrier.
func Indiscrete[X comparable](carrier set.Finite[X], opts ...Option) *Space[X] {
	o := gatherOptions(opts)
	pairs := rel.Pairs(carrier)

	return fromSets(carrier, pairs, []set.Finite[set.Pair[X, X]]{pairs}, o)
}
