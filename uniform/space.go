// SPDX-License-Identifier: MIT

package uniform

import (
	"iter"
	"slices"

	"github.com/katalvlaran/uniformity/filter"
	"github.com/katalvlaran/uniformity/rel"
	"github.com/katalvlaran/uniformity/set"
)

// Space is a uniform space on the finite carrier of X.
//
// The basis is materialised, deduplicated and directed. Two spaces are
// equal iff their entourage filters are (Equal).
type Space[X comparable] struct {
	carrier set.Finite[X]
	pairs   set.Finite[set.Pair[X, X]]
	basis   []set.Finite[set.Pair[X, X]]
	unif    filter.Filter[set.Pair[X, X]]
	opts    Options
}

// newSpace pulls at most limit sets from basis and normalises them.
// It performs no axiom checks; combinators rely on being closed by construction.
func newSpace[X comparable](carrier set.Finite[X], basis iter.Seq[rel.Rel[X]], limit int, o Options) *Space[X] {
	pairs := rel.Pairs(carrier)

	return fromSets(carrier, pairs, collect(basis, pairs, limit), o)
}

// fromSets finishes construction from materialised sets.
func fromSets[X comparable](carrier set.Finite[X], pairs set.Finite[set.Pair[X, X]], sets []set.Finite[set.Pair[X, X]], o Options) *Space[X] {
	if !directed(sets, pairs) {
		o.logger.Debug("uniform: basis is not directed, refining by prefix intersections")
		sets = prefixIntersections(sets, pairs)
	}
	generic := make([]set.Set[set.Pair[X, X]], len(sets))
	for i, s := range sets {
		generic[i] = s
	}

	return &Space[X]{
		carrier: carrier,
		pairs:   pairs,
		basis:   sets,
		unif:    filter.FromSets(pairs, generic, filter.WithFuel(max(len(sets), 1))),
		opts:    o,
	}
}

// collect materialises up to limit sets of basis over pairs, dropping duplicates.
func collect[X comparable](basis iter.Seq[rel.Rel[X]], pairs set.Finite[set.Pair[X, X]], limit int) []set.Finite[set.Pair[X, X]] {
	var out []set.Finite[set.Pair[X, X]]
	n := 0
	for b := range basis {
		if n >= limit {
			break
		}
		n++
		out = appendDistinct(out, set.Materialize(b, pairs))
	}

	return out
}

// appendDistinct appends s unless an equal set is already present.
func appendDistinct[T comparable](sets []set.Finite[T], s set.Finite[T]) []set.Finite[T] {
	for _, e := range sets {
		if e.Len() == s.Len() && set.Subset[T](s, e, s) {
			return sets
		}
	}

	return append(sets, s)
}

// directed reports whether every pairwise intersection contains a basis set.
func directed[T comparable](sets []set.Finite[T], within set.Finite[T]) bool {
	for i := range sets {
		for j := i + 1; j < len(sets); j++ {
			meet := set.Inter[T](sets[i], sets[j])
			if !slices.ContainsFunc(sets, func(s set.Finite[T]) bool { return set.Subset[T](s, meet, within) }) {
				return false
			}
		}
	}

	return true
}

// prefixIntersections returns the chain S1, S1∩S2, S1∩S2∩S3, ... (deduplicated).
// It generates the same filter as sets and is directed.
func prefixIntersections[T comparable](sets []set.Finite[T], within set.Finite[T]) []set.Finite[T] {
	var out []set.Finite[T]
	var acc set.Set[T] = within
	for _, s := range sets {
		m := set.Materialize(set.Inter(acc, set.Set[T](s)), within)
		acc = m
		out = appendDistinct(out, m)
	}

	return out
}

// Carrier returns the finite carrier.
func (u *Space[X]) Carrier() set.Finite[X] { return u.carrier }

// Pairs returns carrier × carrier, the universe of the entourage filter.
func (u *Space[X]) Pairs() set.Finite[set.Pair[X, X]] { return u.pairs }

// Uniformity returns the entourage filter 𝓤.
func (u *Space[X]) Uniformity() filter.Filter[set.Pair[X, X]] { return u.unif }

// Entourages yields the normalised basis of 𝓤.
func (u *Space[X]) Entourages() iter.Seq[rel.Rel[X]] {
	return func(yield func(rel.Rel[X]) bool) {
		for _, s := range u.basis {
			if !yield(s) {
				return
			}
		}
	}
}

// BasisLen returns the number of distinct basis entourages.
func (u *Space[X]) BasisLen() int { return len(u.basis) }

// IsEntourage reports whether v belongs to 𝓤.
func (u *Space[X]) IsEntourage(v rel.Rel[X]) bool { return u.unif.Contains(v) }

// Kernel returns ⋂𝓤, the smallest entourage on the finite carrier.
func (u *Space[X]) Kernel() set.Finite[set.Pair[X, X]] { return u.unif.Smallest() }

// Le reports u ≤ v: u is finer (every v-entourage is a u-entourage).
func (u *Space[X]) Le(v *Space[X]) bool { return u.unif.Le(v.unif) }

// Equal reports filter equality of the two uniformities.
func (u *Space[X]) Equal(v *Space[X]) bool { return u.unif.Equal(v.unif) }

// Options returns the configuration the space was built with.
func (u *Space[X]) Options() Options { return u.opts }

// Ball returns Ball(x, V) materialised over the carrier.
func (u *Space[X]) Ball(x X, v rel.Rel[X]) set.Finite[X] {
	return set.Materialize(rel.Ball(x, v), u.carrier)
}

// Nhds returns the neighbourhood filter 𝓝(x), with basis Ball(x, V).
func (u *Space[X]) Nhds(x X) filter.Filter[X] {
	balls := make([]set.Set[X], len(u.basis))
	for i, v := range u.basis {
		balls[i] = u.Ball(x, v)
	}

	return filter.FromSets(u.carrier, balls, filter.WithFuel(max(len(balls), 1)))
}

// IsOpen reports whether every point of s has a ball inside s.
func (u *Space[X]) IsOpen(s set.Set[X]) bool {
	for x := range u.carrier.All() {
		if s.Contains(x) && !u.Nhds(x).Contains(s) {
			return false
		}
	}

	return true
}

// Interior returns the points of s having a ball inside s.
func (u *Space[X]) Interior(s set.Set[X]) set.Finite[X] {
	return u.carrier.Filter(set.Pred[X](func(x X) bool {
		return s.Contains(x) && u.Nhds(x).Contains(s)
	}))
}

// Closure returns the points every ball of which meets s.
func (u *Space[X]) Closure(s set.Set[X]) set.Finite[X] {
	return u.carrier.Filter(set.Pred[X](func(x X) bool {
		for _, v := range u.basis {
			if set.IsEmpty(set.Inter(rel.Ball(x, rel.Rel[X](v)), s), u.carrier) {
				return false
			}
		}

		return true
	}))
}

// OpenSets enumerates the open subsets of a carrier with at most limit points.
// Returns set.ErrTooLarge above the limit.
func (u *Space[X]) OpenSets(limit int) ([]set.Finite[X], error) {
	subsets, err := set.Subsets(u.carrier, limit)
	if err != nil {
		return nil, err
	}
	var out []set.Finite[X]
	for s := range subsets {
		if u.IsOpen(s) {
			out = append(out, s)
		}
	}

	return out, nil
}
