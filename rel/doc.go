// Package rel is the entourage algebra: binary relations on a carrier
// viewed as "pairs considered close".
//
//	Id            = {(x, x)}
//	Comp(V, W)    = {(x, z) : ∃y. (x, y) ∈ V ∧ (y, z) ∈ W}
//	Swap(V)       = {(y, x) : (x, y) ∈ V}
//	Symmetrize(V) = V ∩ Swap(V)
//	Ball(x, V)    = {y : (x, y) ∈ V}
//
// Comp needs the witness y, so it takes the carrier it searches. Everything
// else is a plain predicate transformer. Laws (tested): Comp is associative,
// Id is a two-sided unit, Symmetrize(V) ⊆ V is symmetric, and balls compose:
// y ∈ Ball(x, V) ∧ z ∈ Ball(y, W) ⇒ z ∈ Ball(x, Comp(V, W)).
package rel
