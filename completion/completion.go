// SPDX-License-Identifier: MIT

package completion

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/uniformity/continuity"
	"github.com/katalvlaran/uniformity/set"
	"github.com/katalvlaran/uniformity/uniform"
)

// Target is a complete separated space: the codomain of an extension and
// the completing space of a Package.
type Target[Z comparable] struct {
	space  *uniform.Space[Z]
	limits Limits[Z]
}

// NewTarget pairs space with its limit oracle.
// Returns ErrNilLimits or ErrNotSeparated.
func NewTarget[Z comparable](space *uniform.Space[Z], limits Limits[Z]) (Target[Z], error) {
	if limits == nil {
		return Target[Z]{}, ErrNilLimits
	}
	if fn, ok := limits.(LimitsFunc[Z]); ok && fn == nil {
		return Target[Z]{}, ErrNilLimits
	}
	if !space.IsSeparated() {
		return Target[Z]{}, fmt.Errorf("%w: kernel has %d pairs on %d points",
			ErrNotSeparated, space.Kernel().Len(), space.Carrier().Len())
	}

	return Target[Z]{space: space, limits: limits}, nil
}

// CarrierTarget is NewTarget(space, CarrierLimits(space)).
func CarrierTarget[Z comparable](space *uniform.Space[Z]) (Target[Z], error) {
	return NewTarget(space, CarrierLimits(space))
}

// Space returns the underlying uniform space.
func (t Target[Z]) Space() *uniform.Space[Z] { return t.space }

// Limits returns the limit oracle.
func (t Target[Z]) Limits() Limits[Z] { return t.limits }

// Package is an abstract completion of a source space: a Target together
// with a uniformly inducing embedding of dense range.
type Package[X, Y comparable] struct {
	source *uniform.Space[X]
	target Target[Y]
	embed  func(X) Y
	opts   Options
}

// New validates embed as a completion of source into target.
// Returns ErrNotInducing or ErrNotDense. Panics if embed is nil.
// opts become the defaults of every extension through the package.
func New[X, Y comparable](source *uniform.Space[X], target Target[Y], embed func(X) Y, opts ...Option) (*Package[X, Y], error) {
	if embed == nil {
		panic(panicNilEmbed)
	}
	o := gatherOptions(DefaultOptions(), opts)
	if !continuity.UniformInducing(embed, source, target.space) {
		return nil, ErrNotInducing
	}
	if !continuity.DenseRange(embed, source, target.space) {
		return nil, ErrNotDense
	}
	o.logger.Debug("completion: package accepted",
		zap.Int("source", source.Carrier().Len()),
		zap.Int("target", target.space.Carrier().Len()),
	)

	return &Package[X, Y]{source: source, target: target, embed: embed, opts: o}, nil
}

// Source returns the space being completed.
func (p *Package[X, Y]) Source() *uniform.Space[X] { return p.source }

// Target returns the completing space.
func (p *Package[X, Y]) Target() Target[Y] { return p.target }

// Space is shorthand for Target().Space().
func (p *Package[X, Y]) Space() *uniform.Space[Y] { return p.target.space }

// Embed returns ι(x).
func (p *Package[X, Y]) Embed(x X) Y { return p.embed(x) }

// Options returns the package defaults.
func (p *Package[X, Y]) Options() Options { return p.opts }

// Product completes the product of the two sources by the product of the
// two targets, with limits taken componentwise.
func Product[X1, Y1, X2, Y2 comparable](p1 *Package[X1, Y1], p2 *Package[X2, Y2]) (*Package[set.Pair[X1, X2], set.Pair[Y1, Y2]], error) {
	space := uniform.Product(p1.target.space, p2.target.space)
	limits := productLimits(p1.target.limits, p1.target.space.Carrier(), p2.target.limits, p2.target.space.Carrier())
	target, err := NewTarget(space, limits)
	if err != nil {
		return nil, fmt.Errorf("completion: product target: %w", err)
	}
	embed := func(x set.Pair[X1, X2]) set.Pair[Y1, Y2] {
		return set.P(p1.embed(x.First), p2.embed(x.Second))
	}
	p, err := New(uniform.Product(p1.source, p2.source), target, embed, func(o *Options) { *o = p1.opts })
	if err != nil {
		return nil, fmt.Errorf("completion: product package: %w", err)
	}

	return p, nil
}
