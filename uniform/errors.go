// SPDX-License-Identifier: MIT

package uniform

import "errors"

// Sentinel errors. Construction errors always wrap ErrInvalidUniformityBasis
// together with one specific cause, so both can be matched with errors.Is.
var (
	// ErrInvalidUniformityBasis indicates an axiom violation at construction.
	ErrInvalidUniformityBasis = errors.New("uniform: invalid uniformity basis")

	// ErrEmptyBasis indicates that the basis produced no set at all.
	ErrEmptyBasis = errors.New("uniform: basis is empty")

	// ErrNotReflexive indicates a basis set that misses part of the diagonal.
	ErrNotReflexive = errors.New("uniform: entourage does not contain the diagonal")

	// ErrNotSymmetric indicates a basis set whose swap is not an entourage.
	ErrNotSymmetric = errors.New("uniform: swapped entourage is not an entourage")

	// ErrNoHalfEntourage indicates a basis set V without W such that W ○ W ⊆ V.
	ErrNoHalfEntourage = errors.New("uniform: no half entourage")

	// ErrNotPseudoMetric indicates a distance that breaks the pseudo-metric axioms.
	ErrNotPseudoMetric = errors.New("uniform: distance is not a pseudo-metric")
)

const (
	panicCarrierMismatch = "uniform: spaces live on different carriers"
	panicFuelInvalid     = "uniform: WithFuel: fuel must be > 0"
	panicRadiusInvalid   = "uniform: Halving: radius must be finite and > 0"
)
