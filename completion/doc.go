// SPDX-License-Identifier: MIT

// Package completion is the abstract completion and extension engine.
//
// 🚀 What is a completion package?
//
//	A Package bundles a source space X with a complete, separated Target Y
//	and an embedding ι : X → Y that is uniformly inducing and has dense
//	range. Any two such packages for the same X are canonically isomorphic,
//	and uniformly continuous maps out of X extend uniquely to Y.
//
// ✨ What this package offers:
//
//   - Limits, the "complete space" capability: Lim(F) finds the limit of a
//     Cauchy filter. CarrierLimits searches a finite carrier, MetricLimits
//     refines the basis until its diameter is small enough, LimitsFunc
//     adapts a plain function.
//   - NewTarget pairs a separated space with its Limits.
//   - New validates a Package (ErrNotInducing, ErrNotDense).
//   - Extend, MapCompletion, Compare, Product, Extend2, Map2.
//
// ⚙️ How Extend works:
//
//	For every y ∈ Y:
//	  G   = Comap(ι, 𝓝(y))    pull the neighbourhood filter of y back to X
//	  img = Map(f, G)         push it forward to Z
//	  z   = Lim(img)          img is Cauchy when f is uniformly continuous
//
//	When f is uniformly continuous and the target complete and separated,
//	the result agrees with f on ι(X), is uniformly continuous and is the
//	only such map. Otherwise Extend returns ErrNotUniformlyContinuous or
//	ErrNoLimitFound. WithFallback opts into the degenerate branch instead:
//	evaluate f at some dense pre-image of y. Its value is unspecified.
//
//	pkg, err := completion.New(x, target, embed)
//	ext, err := completion.Extend(pkg, f, zTarget)
//	z, ok := ext.At(y)
package completion
