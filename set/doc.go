// Package set provides the carrier sets every other package decides over.
//
// Two shapes of subset are used throughout the module:
//
//	Set[T]     a decidable predicate (Contains). May describe an infinite set.
//	Finite[T]  an immutable, insertion-ordered finite set. Also a Set[T].
//
// Questions such as "is A a subset of B" or "is A empty" cannot be answered
// for arbitrary predicates, so they always take an explicit finite universe:
//
//	set.Subset(a, b, within)  // ∀x∈within: a(x) ⇒ b(x)
//
// The universe is the whole carrier for finite spaces and a finite sample for
// infinite ones. Pair and Either give the product and disjoint-union carriers
// used by the uniform combinators.
//
// All values are immutable and safe to share between goroutines.
package set
