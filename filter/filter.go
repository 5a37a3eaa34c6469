package filter

import (
	"iter"
	"slices"

	"github.com/katalvlaran/uniformity/set"
)

// Filter is an immutable filter on T described by a lazy basis.
//
// The basis need not be directed when built through New; combinators in
// this package only ever produce directed bases from directed inputs.
type Filter[T comparable] struct {
	universe set.Finite[T]
	basis    iter.Seq[set.Set[T]]
	fuel     int
}

// New returns the filter generated by basis, deciding over universe.
// A nil basis is treated as the single set universe (the Top filter).
func New[T comparable](universe set.Finite[T], basis iter.Seq[set.Set[T]], opts ...Option) Filter[T] {
	o := gatherOptions(opts)
	if basis == nil {
		basis = single(set.Full[T]())
	}

	return Filter[T]{universe: universe, basis: basis, fuel: o.fuel}
}

// FromSets returns the filter whose basis is exactly sets, in order.
func FromSets[T comparable](universe set.Finite[T], sets []set.Set[T], opts ...Option) Filter[T] {
	return New(universe, slices.Values(slices.Clone(sets)), opts...)
}

// Principal returns the filter of all supersets of b.
func Principal[T comparable](universe set.Finite[T], b set.Set[T], opts ...Option) Filter[T] {
	return New(universe, single(b), opts...)
}

// Top returns the filter whose only large set is the carrier.
func Top[T comparable](universe set.Finite[T], opts ...Option) Filter[T] {
	return New(universe, single(set.Full[T]()), opts...)
}

// Bottom returns the degenerate filter in which every set is large.
func Bottom[T comparable](universe set.Finite[T], opts ...Option) Filter[T] {
	return New(universe, single(set.Empty[T]()), opts...)
}

// Universe returns the finite set on which inclusions are decided.
func (f Filter[T]) Universe() set.Finite[T] { return f.universe }

// Fuel returns the per-query basis budget.
func (f Filter[T]) Fuel() int { return f.fuel }

// Basis yields at most Fuel() basis sets.
func (f Filter[T]) Basis() iter.Seq[set.Set[T]] {
	return take(f.basis, f.fuel)
}

// Contains reports whether s is large: some basis set is a subset of s.
// Complexity: O(fuel · |universe|) membership tests.
func (f Filter[T]) Contains(s set.Set[T]) bool {
	for b := range f.Basis() {
		if set.Subset(b, s, f.universe) {
			return true
		}
	}

	return false
}

// Eventually reports whether p holds on a large set.
func (f Filter[T]) Eventually(p func(T) bool) bool {
	return f.Contains(set.Pred[T](p))
}

// Frequently reports whether p holds on a set meeting every large set.
func (f Filter[T]) Frequently(p func(T) bool) bool {
	return !f.Eventually(func(x T) bool { return !p(x) })
}

// Le reports F ≤ G: every set large in g is large in f (f is finer).
func (f Filter[T]) Le(g Filter[T]) bool {
	for b := range g.Basis() {
		if !f.Contains(b) {
			return false
		}
	}

	return true
}

// Equal reports F ≤ G and G ≤ F.
func (f Filter[T]) Equal(g Filter[T]) bool {
	return f.Le(g) && g.Le(f)
}

// NeBot reports whether f is proper, i.e. the empty set is not large.
func (f Filter[T]) NeBot() bool {
	return !f.Contains(set.Empty[T]())
}

// Smallest returns the intersection of the inspected basis sets, materialised
// over the universe. For a finite universe this is the kernel of the filter.
func (f Filter[T]) Smallest() set.Finite[T] {
	var acc set.Set[T] = f.universe
	for b := range f.Basis() {
		acc = set.Materialize(set.Inter(acc, b), f.universe)
	}

	return set.Materialize(acc, f.universe)
}

// single yields one set.
func single[T any](s set.Set[T]) iter.Seq[set.Set[T]] {
	return func(yield func(set.Set[T]) bool) { yield(s) }
}

// take truncates seq after n elements.
func take[S any](seq iter.Seq[S], n int) iter.Seq[S] {
	return func(yield func(S) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for s := range seq {
			if !yield(s) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}
