// SPDX-License-Identifier: MIT

package completion

import "errors"

// Sentinel errors. Extension errors are precondition violations, not
// transient states; retrying with the same inputs fails the same way.
var (
	// ErrNoLimitFound indicates a non-Cauchy image filter or a Limits failure.
	ErrNoLimitFound = errors.New("completion: no limit found")

	// ErrNotUniformlyContinuous indicates that Extend was asked to extend a
	// map that is not uniformly continuous.
	ErrNotUniformlyContinuous = errors.New("completion: map is not uniformly continuous")

	// ErrOutsideTarget indicates a map with a value outside the target carrier.
	ErrOutsideTarget = errors.New("completion: map leaves the target carrier")

	// ErrNotSeparated indicates a target space whose kernel is not the diagonal.
	ErrNotSeparated = errors.New("completion: target is not separated")

	// ErrNilLimits indicates a target without a limit oracle.
	ErrNilLimits = errors.New("completion: limits are nil")

	// ErrNotInducing indicates an embedding that does not induce the source uniformity.
	ErrNotInducing = errors.New("completion: embedding is not uniformly inducing")

	// ErrNotDense indicates an embedding whose range is not dense.
	ErrNotDense = errors.New("completion: embedding range is not dense")
)

const (
	panicNilEmbed         = "completion: New: embedding must not be nil"
	panicToleranceInvalid = "completion: MetricLimits: tolerance must be a finite number >= 0"
)
