// SPDX-License-Identifier: MIT

// Package uniform implements uniform spaces over finite carriers: the
// entourage filter, its derived topology, the lattice of uniform structures
// and the combinators that build new spaces from old ones.
//
// 🚀 What is a uniform space?
//
//	A uniform space on X is a filter 𝓤 on X × X (the entourages) such that
//	  (i)   every entourage contains the diagonal,
//	  (ii)  𝓤 is closed under swapping coordinates,
//	  (iii) every V ∈ 𝓤 has a "half" W ∈ 𝓤 with W ○ W ⊆ V.
//	It is the common abstraction behind "x and y are ε-close": metric
//	spaces, topological groups and discrete sets are all uniform spaces.
//
// ✨ What this package offers:
//
//   - Construction: FromBasis (validated), FromFilter, FromMetric, Discrete,
//     Indiscrete. Validation failures wrap ErrInvalidUniformityBasis.
//   - Topology (lazy): Nhds, IsOpen, Closure, Interior, OpenSets.
//   - Lattice: Le, Equal, Inf, Sup, InfAll, Top (indiscrete), Bot (discrete).
//   - Combinators: Comap, Product, Sum, Subspace. They never fail.
//   - Cauchy filters: IsCauchy, Converges, Limit, IsSeparated.
//
// ⚙️ Representation:
//
//	The entourage basis is pulled lazily from the caller (at most Fuel sets),
//	materialised over carrier × carrier and deduplicated once, at
//	construction. A Space is immutable afterwards and safe for concurrent use.
//
//	u, err := uniform.FromBasis(carrier, basis)
//	if err != nil { ... }            // errors.Is(err, uniform.ErrInvalidUniformityBasis)
//	p := uniform.Product(u, v)       // ball((x,y), V×W) = ball(x,V) × ball(y,W)
//	s := uniform.Sum(u, v)           // summands never close to each other
//
// Carriers are finite decision universes: the whole carrier for finite spaces
// and a finite sample for infinite ones.
package uniform
