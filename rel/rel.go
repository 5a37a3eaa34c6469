package rel

import (
	"github.com/katalvlaran/uniformity/set"
)

// Rel is a binary relation on T.
type Rel[T any] = set.Set[set.Pair[T, T]]

// Id returns the diagonal {(x, x)}.
func Id[T comparable]() Rel[T] {
	return set.Pred[set.Pair[T, T]](func(p set.Pair[T, T]) bool { return p.First == p.Second })
}

// Diagonal returns the diagonal of carrier as a finite relation.
func Diagonal[T comparable](carrier set.Finite[T]) set.Finite[set.Pair[T, T]] {
	out := make([]set.Pair[T, T], 0, carrier.Len())
	for x := range carrier.All() {
		out = append(out, set.P(x, x))
	}

	return set.Of(out...)
}

// Comp returns V ○ W, searching the middle point y in via.
// Membership costs O(|via|) tests.
func Comp[T comparable](v, w Rel[T], via set.Finite[T]) Rel[T] {
	return set.Pred[set.Pair[T, T]](func(p set.Pair[T, T]) bool {
		for y := range via.All() {
			if v.Contains(set.P(p.First, y)) && w.Contains(set.P(y, p.Second)) {
				return true
			}
		}

		return false
	})
}

// Swap returns {(y, x) : (x, y) ∈ V}.
func Swap[T any](v Rel[T]) Rel[T] {
	return set.Pred[set.Pair[T, T]](func(p set.Pair[T, T]) bool { return v.Contains(p.Swap()) })
}

// Symmetrize returns V ∩ Swap(V).
func Symmetrize[T any](v Rel[T]) Rel[T] {
	return set.Inter(v, Swap(v))
}

// Ball returns {y : (x, y) ∈ V}.
func Ball[T any](x T, v Rel[T]) set.Set[T] {
	return set.Pred[T](func(y T) bool { return v.Contains(set.P(x, y)) })
}

// Prod returns the product entourage
// {((a, b), (a', b')) : (a, a') ∈ V ∧ (b, b') ∈ W}.
func Prod[A, B any](v Rel[A], w Rel[B]) Rel[set.Pair[A, B]] {
	return set.Pred[set.Pair[set.Pair[A, B], set.Pair[A, B]]](
		func(p set.Pair[set.Pair[A, B], set.Pair[A, B]]) bool {
			return v.Contains(set.P(p.First.First, p.Second.First)) &&
				w.Contains(set.P(p.First.Second, p.Second.Second))
		})
}

// MapPair lifts f to pairs: (a, b) ↦ (f a, f b).
func MapPair[T, U any](f func(T) U) func(set.Pair[T, T]) set.Pair[U, U] {
	return func(p set.Pair[T, T]) set.Pair[U, U] { return set.P(f(p.First), f(p.Second)) }
}

// Pairs returns carrier × carrier.
func Pairs[T comparable](carrier set.Finite[T]) set.Finite[set.Pair[T, T]] {
	return set.Product(carrier, carrier)
}

// IsReflexive reports Id ⊆ V on carrier.
func IsReflexive[T comparable](v Rel[T], carrier set.Finite[T]) bool {
	for x := range carrier.All() {
		if !v.Contains(set.P(x, x)) {
			return false
		}
	}

	return true
}

// IsSymmetric reports V = Swap(V) on carrier × carrier.
func IsSymmetric[T comparable](v Rel[T], carrier set.Finite[T]) bool {
	return set.Equal(v, Swap(v), Pairs(carrier))
}

// IsTransitive reports V ○ V ⊆ V on carrier × carrier.
func IsTransitive[T comparable](v Rel[T], carrier set.Finite[T]) bool {
	return set.Subset(Comp(v, v, carrier), v, Pairs(carrier))
}

// CompSubset reports V ○ W ⊆ U on carrier × carrier.
// It walks the adjacency of V once instead of testing every pair of Comp.
func CompSubset[T comparable](v, w, u Rel[T], carrier set.Finite[T]) bool {
	for x := range carrier.All() {
		for y := range carrier.All() {
			if !v.Contains(set.P(x, y)) {
				continue
			}
			for z := range carrier.All() {
				if w.Contains(set.P(y, z)) && !u.Contains(set.P(x, z)) {
					return false
				}
			}
		}
	}

	return true
}

// EquivClosure returns the smallest equivalence relation on carrier that
// contains V, as a finite relation.
// Complexity: O(n²·α) with union-find over the carrier.
func EquivClosure[T comparable](v Rel[T], carrier set.Finite[T]) set.Finite[set.Pair[T, T]] {
	n := carrier.Len()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}

		return i
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v.Contains(set.P(carrier.At(i), carrier.At(j))) {
				if ri, rj := find(i), find(j); ri != rj {
					parent[ri] = rj
				}
			}
		}
	}
	out := make([]set.Pair[T, T], 0, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if find(i) == find(j) {
				out = append(out, set.P(carrier.At(i), carrier.At(j)))
			}
		}
	}

	return set.Of(out...)
}
