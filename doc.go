// Package uniformity is a toolkit for filters, uniform spaces and abstract
// completions over finite carriers: closeness without distances, Cauchy
// filters without sequences and unique extension of uniformly continuous
// maps.
//
// 🚀 What is uniformity?
//
//	A small, immutable, generic library that brings together:
//		• Sets as predicates, finite carriers, pairs and disjoint unions
//		• Filters with lazy, fuel-bounded bases: Map, Comap, Inf, Sup, Tendsto
//		• The entourage algebra: composition, swap, symmetrize, balls
//		• Uniform spaces: validated construction, derived topology, Cauchy filters
//		• The lattice of uniformities: Inf, Sup, Comap, Product, Sum, Subspace
//		• Uniform continuity, inducing maps, embeddings and dense range
//		• Completions: Extend, MapCompletion, Compare, Extend2, Map2
//		• A concurrent law battery and a YAML front end
//
// ✨ Why finite carriers?
//
//   - Every inclusion is decided by enumeration, so every law is checkable
//   - Infinite bases stay lazy; only Fuel sets are ever pulled
//   - Values are immutable and safe for concurrent use
//   - Axiom violations surface as typed errors, never as silent repairs
//
// Everything is organized into subpackages:
//
//	set/           Set predicates, Finite carriers, Pair, Either
//	filter/        Filter, lazy bases, order and combinators
//	rel/           entourage algebra on relations
//	uniform/       Space, topology, lattice, combinators, Cauchy filters
//	continuity/    uniform continuity, inducing, embedding, density
//	completion/    Limits, Target, Package and the extension engine
//	laws/          laws as runtime checks and a concurrent runner
//	config/        YAML documents of spaces and completions
//	cmd/uniformctl  command-line checker
//
// Quick example:
//
//	u, err := uniform.FromMetric(carrier, dist, uniform.Halving(1))
//	pkg, err := completion.New(u, target, embed)
//	ext, err := completion.Extend(pkg, f, zTarget)
//
//	go get github.com/katalvlaran/uniformity
package uniformity
