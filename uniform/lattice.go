// SPDX-License-Identifier: MIT

package uniform

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/uniformity/filter"
	"github.com/katalvlaran/uniformity/rel"
	"github.com/katalvlaran/uniformity/set"
)

// Comap pulls u back along f: the coarsest uniformity on carrier making f
// uniformly continuous. Entourages are (f×f)⁻¹(V).
//
// Laws: Comap(id) = id, Comap(g∘f) = Comap(f)∘Comap(g), Comap is monotone
// and distributes over InfAll.
func Comap[X, Y comparable](f func(X) Y, u *Space[Y], carrier set.Finite[X]) *Space[X] {
	pulled := filter.Comap(rel.MapPair(f), u.unif, rel.Pairs(carrier))

	return newSpace(carrier, pulled.Basis(), pulled.Fuel(), u.opts)
}

// Top returns the indiscrete space, the greatest element of the lattice.
func Top[X comparable](carrier set.Finite[X], opts ...Option) *Space[X] {
	return Indiscrete(carrier, opts...)
}

// Bot returns the discrete space, the least element of the lattice.
func Bot[X comparable](carrier set.Finite[X], opts ...Option) *Space[X] {
	return Discrete(carrier, opts...)
}

// Inf returns u ⊓ v, whose entourage filter is 𝓤u ⊓ 𝓤v.
// Panics if u and v live on different carriers.
func Inf[X comparable](u, v *Space[X]) *Space[X] {
	mustSameCarrier(u, v)
	meet := filter.Inf(u.unif, v.unif)

	return newSpace(u.carrier, meet.Basis(), meet.Fuel(), u.opts)
}

// InfAll returns the meet of us; Top(carrier) for an empty family.
func InfAll[X comparable](carrier set.Finite[X], us ...*Space[X]) *Space[X] {
	if len(us) == 0 {
		return Top(carrier)
	}
	acc := us[0]
	for _, v := range us[1:] {
		acc = Inf(acc, v)
	}

	return acc
}

// Sup returns u ⊔ v, the finest uniformity coarser than both.
//
// The filter join 𝓤u ⊔ 𝓤v has the right large sets but may miss halves: a
// union B ∪ B' need not contain W ○ W for any large W. Sup therefore keeps
// only the part of the join that is closed under halving.
//
// Algorithm:
//  1. Candidates C are the materialised unions B ∪ B' (the join basis).
//  2. Every candidate starts alive. A candidate J stays alive while some
//     alive K satisfies sym(K) ○ sym(K) ⊆ J. Dead candidates are removed
//     and the pass repeats until nothing changes. This is the greatest
//     fixed point: J survives iff it heads an endless chain
//     J ⊇ sym(W₁)○sym(W₁), W₁ ⊇ sym(W₂)○sym(W₂), ... inside C.
//  3. The basis is sym(J) for every alive J, plus the equivalence closure
//     of every candidate. A closure E is transitive, so E ○ E = E and it is
//     its own half.
//
// Every set produced is large in both u and v, and every uniformity coarser
// than both lies above them; on finite carriers this is exactly the least
// upper bound.
//
// Complexity: O(|C|³·n³) in the worst case for |C| candidates on n points,
// dominated by the composition tests of step 2.
// Panics if u and v live on different carriers.
func Sup[X comparable](u, v *Space[X]) *Space[X] {
	mustSameCarrier(u, v)
	join := filter.Sup(u.unif, v.unif)
	cands := collect(join.Basis(), u.pairs, join.Fuel())

	syms := make([]set.Finite[set.Pair[X, X]], len(cands))
	for i, c := range cands {
		syms[i] = set.Materialize(rel.Symmetrize[X](c), u.pairs)
	}
	alive := make([]bool, len(cands))
	for i := range alive {
		alive[i] = true
	}
	for changed := true; changed; {
		changed = false
		for i := range cands {
			if !alive[i] {
				continue
			}
			found := false
			for j := range cands {
				if alive[j] && rel.CompSubset[X](syms[j], syms[j], cands[i], u.carrier) {
					found = true
					break
				}
			}
			if !found {
				alive[i] = false
				changed = true
			}
		}
	}

	var sets []set.Finite[set.Pair[X, X]]
	for i, c := range cands {
		if alive[i] {
			sets = appendDistinct(sets, syms[i])
		}
		sets = appendDistinct(sets, rel.EquivClosure[X](c, u.carrier))
	}
	u.opts.logger.Debug("uniform: sup computed",
		zap.Int("candidates", len(cands)),
		zap.Int("basis", len(sets)),
	)

	return fromSets(u.carrier, u.pairs, sets, u.opts)
}

// Product returns the product space on carrier(u) × carrier(v):
// 𝓤 = comap(π₁×π₁, 𝓤u) ⊓ comap(π₂×π₂, 𝓤v). A pair of points is close iff
// both coordinate pairs are.
func Product[A, B comparable](u *Space[A], v *Space[B]) *Space[set.Pair[A, B]] {
	carrier := set.Product(u.carrier, v.carrier)
	pairs := rel.Pairs(carrier)
	left := filter.Comap(rel.MapPair(set.Fst[A, B]), u.unif, pairs)
	right := filter.Comap(rel.MapPair(set.Snd[A, B]), v.unif, pairs)
	meet := filter.Inf(left, right)

	return newSpace(carrier, meet.Basis(), meet.Fuel(), u.opts)
}

// Sum returns the disjoint union u ⊕ v:
// 𝓤 = map(inl×inl, 𝓤u) ⊔ map(inr×inr, 𝓤v). Each summand keeps its own
// closeness; an inl point is never close to an inr point.
func Sum[A, B comparable](u *Space[A], v *Space[B]) *Space[set.Either[A, B]] {
	carrier := set.DisjointUnion(u.carrier, v.carrier)
	pairs := rel.Pairs(carrier)
	left := filter.Map(rel.MapPair(set.Inl[A, B]), u.unif, pairs)
	right := filter.Map(rel.MapPair(set.Inr[A, B]), v.unif, pairs)
	join := filter.Sup(left, right)

	return newSpace(carrier, join.Basis(), join.Fuel(), u.opts)
}

// Subspace restricts u to the points satisfying p: Comap along the inclusion.
func Subspace[X comparable](u *Space[X], p set.Set[X]) *Space[X] {
	return Comap(func(x X) X { return x }, u, u.carrier.Filter(p))
}

func mustSameCarrier[X comparable](u, v *Space[X]) {
	if u.carrier.Len() != v.carrier.Len() || !set.Subset[X](u.carrier, v.carrier, u.carrier) {
		panic(panicCarrierMismatch)
	}
}
