package set

import "iter"

// Set is a decidable subset of T.
type Set[T any] interface {
	// Contains reports whether x belongs to the set.
	Contains(x T) bool
}

// Enumerable is a Set whose members can be listed.
type Enumerable[T any] interface {
	Set[T]
	All() iter.Seq[T]
}

// Pred adapts a plain predicate to a Set.
type Pred[T any] func(T) bool

// Contains calls p(x).
func (p Pred[T]) Contains(x T) bool { return p(x) }

// Empty returns the set with no members.
func Empty[T any]() Set[T] {
	return Pred[T](func(T) bool { return false })
}

// Full returns the set of every value of T.
func Full[T any]() Set[T] {
	return Pred[T](func(T) bool { return true })
}

// Inter returns a ∩ b.
func Inter[T any](a, b Set[T]) Set[T] {
	return Pred[T](func(x T) bool { return a.Contains(x) && b.Contains(x) })
}

// Union returns a ∪ b.
func Union[T any](a, b Set[T]) Set[T] {
	return Pred[T](func(x T) bool { return a.Contains(x) || b.Contains(x) })
}

// Diff returns a \ b.
func Diff[T any](a, b Set[T]) Set[T] {
	return Pred[T](func(x T) bool { return a.Contains(x) && !b.Contains(x) })
}

// Preimage returns f⁻¹(s) = {x : f(x) ∈ s}.
func Preimage[T, U any](f func(T) U, s Set[U]) Set[T] {
	return Pred[T](func(x T) bool { return s.Contains(f(x)) })
}

// Subset reports whether a ⊆ b on every point of within.
// Complexity: O(|within|) membership tests.
func Subset[T comparable](a, b Set[T], within Finite[T]) bool {
	for _, x := range within.items {
		if a.Contains(x) && !b.Contains(x) {
			return false
		}
	}

	return true
}

// Equal reports whether a and b agree on every point of within.
func Equal[T comparable](a, b Set[T], within Finite[T]) bool {
	for _, x := range within.items {
		if a.Contains(x) != b.Contains(x) {
			return false
		}
	}

	return true
}

// IsEmpty reports whether no point of within belongs to a.
func IsEmpty[T comparable](a Set[T], within Finite[T]) bool {
	for _, x := range within.items {
		if a.Contains(x) {
			return false
		}
	}

	return true
}

// Any returns some point of within that belongs to a, in within's order.
func Any[T comparable](a Set[T], within Finite[T]) (T, bool) {
	for _, x := range within.items {
		if a.Contains(x) {
			return x, true
		}
	}
	var zero T

	return zero, false
}

// Materialize returns a ∩ within as a Finite set in within's order.
// A Finite a that already lies inside within is returned unchanged.
func Materialize[T comparable](a Set[T], within Finite[T]) Finite[T] {
	if f, ok := a.(Finite[T]); ok && Subset[T](f, within, f) {
		return f
	}
	out := make([]T, 0, len(within.items))
	for _, x := range within.items {
		if a.Contains(x) {
			out = append(out, x)
		}
	}

	return fromUnique(out)
}

// Image returns f(a ∩ within) as a Finite set, in order of first occurrence.
func Image[T comparable, U comparable](f func(T) U, a Set[T], within Finite[T]) Finite[U] {
	b := newBuilder[U](len(within.items))
	for _, x := range within.items {
		if a.Contains(x) {
			b.add(f(x))
		}
	}

	return b.build()
}
