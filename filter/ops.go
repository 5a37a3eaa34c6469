package filter

import (
	"iter"

	"github.com/katalvlaran/uniformity/set"
)

// Map pushes f forward along fn: S is large iff fn⁻¹(S) is large in f.
//
// Basis sets are the images fn(B), computed over f's universe and deciding
// over onto. onto should contain fn(f.Universe()).
func Map[T, U comparable](fn func(T) U, f Filter[T], onto set.Finite[U]) Filter[U] {
	from := f.universe
	src := f.basis
	basis := func(yield func(set.Set[U]) bool) {
		for b := range src {
			if !yield(set.Image(fn, b, from)) {
				return
			}
		}
	}

	return Filter[U]{universe: onto, basis: basis, fuel: f.fuel}
}

// Comap pulls g back along fn: S is large iff fn⁻¹(B) ⊆ S for a g-large B.
func Comap[T, U comparable](fn func(T) U, g Filter[U], from set.Finite[T]) Filter[T] {
	src := g.basis
	basis := func(yield func(set.Set[T]) bool) {
		for b := range src {
			if !yield(set.Preimage(fn, b)) {
				return
			}
		}
	}

	return Filter[T]{universe: from, basis: basis, fuel: g.fuel}
}

// Inf returns the meet f ⊓ g, whose basis is the pairwise intersections
// B ∩ B' of the first f.Fuel() sets of f and the first g.Fuel() sets of g.
//
// Each side is truncated to its own fuel before pairing, so an infinite basis
// never pushes the other side's late sets out of reach: with fuel a and b
// every one of the a·b pairs is enumerated (see pairFuel for the cap).
// Pairs come shell by shell, which keeps small indexes first.
//
// Complexity: O(a·b) basis sets, each costing one membership test per side.
func Inf[T comparable](f, g Filter[T]) Filter[T] {
	a, b := f.Basis(), g.Basis()
	basis := func(yield func(set.Set[T]) bool) {
		for x, y := range dovetail(a, b) {
			if !yield(set.Inter(x, y)) {
				return
			}
		}
	}

	return Filter[T]{universe: f.universe, basis: basis, fuel: pairFuel(f.fuel, g.fuel)}
}

// Infi returns the meet of fs; Top(universe) for an empty family.
func Infi[T comparable](universe set.Finite[T], fs ...Filter[T]) Filter[T] {
	if len(fs) == 0 {
		return Top(universe)
	}
	acc := fs[0]
	for _, f := range fs[1:] {
		acc = Inf(acc, f)
	}
	acc.universe = universe

	return acc
}

// Sup returns the join f ⊔ g: S is large iff it is large in both.
//
// The basis is the pairwise unions B ∪ B' over the fuel-truncated bases of
// f and g, enumerated like Inf. If S ⊇ B_i and S ⊇ B'_j with i < f.Fuel()
// and j < g.Fuel(), the union B_i ∪ B'_j is among the pairs, so S is large
// in the join.
func Sup[T comparable](f, g Filter[T]) Filter[T] {
	a, b := f.Basis(), g.Basis()
	basis := func(yield func(set.Set[T]) bool) {
		for x, y := range dovetail(a, b) {
			if !yield(set.Union(x, y)) {
				return
			}
		}
	}

	return Filter[T]{universe: f.universe, basis: basis, fuel: pairFuel(f.fuel, g.fuel)}
}

// Supi returns the join of fs; Bottom(universe) for an empty family.
func Supi[T comparable](universe set.Finite[T], fs ...Filter[T]) Filter[T] {
	if len(fs) == 0 {
		return Bottom(universe)
	}
	acc := fs[0]
	for _, f := range fs[1:] {
		acc = Sup(acc, f)
	}
	acc.universe = universe

	return acc
}

// Prod returns the product filter f ×ˢ g = comap fst f ⊓ comap snd g.
func Prod[A, B comparable](f Filter[A], g Filter[B]) Filter[set.Pair[A, B]] {
	universe := set.Product(f.universe, g.universe)

	return Inf(
		Comap(set.Fst[A, B], f, universe),
		Comap(set.Snd[A, B], g, universe),
	)
}

// Tendsto reports Map(fn, f) ≤ g: fn sends f-large sets into every g-large set.
func Tendsto[T, U comparable](fn func(T) U, f Filter[T], g Filter[U]) bool {
	return Map(fn, f, g.universe).Le(g)
}

// pairFuel is the budget of a combinator over two bases truncated to a and
// b sets: exactly the a·b pairs (i, j), capped at MaxFuel.
//
// Above the cap only the first MaxFuel pairs in shell order are seen, which
// is every pair with max(i, j) < ⌊√MaxFuel⌋.
func pairFuel(a, b int) int {
	return min(a*b, MaxFuel)
}

// dovetail yields every pair (a_i, b_j) exactly once, shell by shell:
// all pairs with max(i, j) = k come before those with max(i, j) = k+1.
//
// Shell k pairs the new element b_k with a_0..a_{k-1}, then the new element
// a_k with b_0..b_k. Both sequences are pulled one element per shell and
// buffered, so either may be infinite: consumption stays demand-driven and
// stops as soon as the caller does. Once one side is exhausted the shells
// keep extending the other side against the buffered prefix, until both are
// exhausted.
//
// Complexity: O(k²) pairs and O(k) buffered elements after k shells.
func dovetail[S any](a, b iter.Seq[S]) iter.Seq2[S, S] {
	return func(yield func(S, S) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()

		var as, bs []S
		doneA, doneB := false, false
		for k := 0; ; k++ {
			if !doneA {
				if x, ok := nextA(); ok {
					as = append(as, x)
				} else {
					doneA = true
				}
			}
			if !doneB {
				if y, ok := nextB(); ok {
					bs = append(bs, y)
				} else {
					doneB = true
				}
			}
			if (doneA && len(as) == 0) || (doneB && len(bs) == 0) {
				return
			}
			emitted := false
			if k < len(bs) {
				for i := 0; i < k && i < len(as); i++ {
					emitted = true
					if !yield(as[i], bs[k]) {
						return
					}
				}
			}
			if k < len(as) {
				for j := 0; j <= k && j < len(bs); j++ {
					emitted = true
					if !yield(as[k], bs[j]) {
						return
					}
				}
			}
			if !emitted && doneA && doneB {
				return
			}
		}
	}
}
