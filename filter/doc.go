// Package filter implements filters over a finite decision universe.
//
// 🚀 What is a filter?
//
//	A filter F on a carrier C is a family of "large" subsets of C that is
//	closed under supersets and finite intersections. It generalises
//	"eventually true": a property holds eventually along F when the set of
//	points satisfying it is large in F.
//
// ✨ Representation:
//
//   - a lazy basis iter.Seq[set.Set[T]]: S is large iff some basis set B ⊆ S;
//   - a finite universe set.Finite[T] on which every inclusion is decided;
//   - a fuel bound: witness searches (∃B ...) pull at most fuel basis sets.
//
// Bases may be infinite (ε-balls for ε = 1, 1/2, 1/4, ...). They are never
// materialised: combinators compose iterators and dovetail pairs lazily.
//
// ⚙️ Order and operations:
//
//	F.Le(G)          // F ≤ G: F is finer, every G-large set is F-large
//	Principal(u, B)  // the sets containing B
//	Top(u), Bottom(u)// only the carrier / every set
//	Map(f, F, onto)  // S large iff f⁻¹(S) large in F
//	Comap(f, G, from)// S large iff f⁻¹(B) ⊆ S for some G-large B
//	Inf(F, G)        // basis B ∩ B'
//	Sup(F, G)        // basis B ∪ B'
//	Tendsto(f, F, G) // Map(f, F) ≤ G
//
// Laws (covered by tests): ≤ is a partial order, Inf is associative,
// commutative and idempotent with unit Top, Map(id) = Comap(id) = id, and
// Map(f, F) ≤ G ⟺ F ≤ Comap(f, G).
//
// Decisions are exact whenever the basis is finite or its relevant members
// appear within the fuel budget.
package filter
