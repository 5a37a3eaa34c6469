// SPDX-License-Identifier: MIT

package completion

import (
	"errors"
	"fmt"
	"maps"

	"go.uber.org/zap"

	"github.com/katalvlaran/uniformity/continuity"
	"github.com/katalvlaran/uniformity/filter"
	"github.com/katalvlaran/uniformity/set"
)

// Extension is a map Y → Z computed on the whole finite carrier of Y.
type Extension[Y, Z comparable] struct {
	domain set.Finite[Y]
	values map[Y]Z
}

// At returns the value at y; false if y is outside the domain.
func (e *Extension[Y, Z]) At(y Y) (Z, bool) {
	z, ok := e.values[y]

	return z, ok
}

// Domain returns the carrier the extension is defined on.
func (e *Extension[Y, Z]) Domain() set.Finite[Y] { return e.domain }

// Table returns a copy of the value table.
func (e *Extension[Y, Z]) Table() map[Y]Z { return maps.Clone(e.values) }

// Func returns the extension as a function; points outside the domain map
// to the zero Z.
func (e *Extension[Y, Z]) Func() func(Y) Z {
	return func(y Y) Z { return e.values[y] }
}

// Extend extends f : X → Z along the package embedding to Y → Z.
//
// Steps, for every y in the target carrier:
//  1. G = Comap(ι, 𝓝(y)) on the source carrier.
//  2. img = Map(f, G) on the carrier of target.
//  3. img is Cauchy, and target's Limits yields z.
//
// Returns ErrOutsideTarget when f(x) is not a point of target for some
// source point x; this is checked first and WithFallback does not relax it.
// Returns ErrNotUniformlyContinuous when f is not uniformly continuous, and
// ErrNoLimitFound (wrapped with the point) when a limit is missing. With
// WithFallback these two cases evaluate f at a dense pre-image of y instead.
func Extend[X, Y, Z comparable](pkg *Package[X, Y], f func(X) Z, target Target[Z], opts ...Option) (*Extension[Y, Z], error) {
	o := gatherOptions(pkg.opts, opts)
	codomain := target.space.Carrier()
	for x := range pkg.source.Carrier().All() {
		if z := f(x); !codomain.Contains(z) {
			return nil, fmt.Errorf("%w: f(%v) = %v", ErrOutsideTarget, x, z)
		}
	}
	uc := continuity.UniformContinuous(f, pkg.source, target.space)
	if !uc && !o.fallback {
		return nil, ErrNotUniformlyContinuous
	}
	if !uc {
		o.logger.Warn("completion: map is not uniformly continuous, every point uses the fallback")
	}

	domain := pkg.target.space.Carrier()
	ext := &Extension[Y, Z]{domain: domain, values: make(map[Y]Z, domain.Len())}
	for y := range domain.All() {
		z, err := extendAt(pkg, y, f, target, uc, o)
		if err != nil {
			return nil, fmt.Errorf("completion: extend at %v: %w", y, err)
		}
		ext.values[y] = z
	}

	return ext, nil
}

// extendAt computes the extension at a single point.
func extendAt[X, Y, Z comparable](pkg *Package[X, Y], y Y, f func(X) Z, target Target[Z], uc bool, o Options) (Z, error) {
	var zero Z
	if uc {
		g := filter.Comap(pkg.embed, pkg.target.space.Nhds(y), pkg.source.Carrier())
		img := filter.Map(f, g, target.space.Carrier())
		var err error
		if target.space.IsCauchy(img) {
			var z Z
			if z, err = target.limits.Lim(img); err == nil {
				return z, nil
			}
			if !errors.Is(err, ErrNoLimitFound) {
				err = fmt.Errorf("%w: %w", ErrNoLimitFound, err)
			}
		} else {
			err = fmt.Errorf("%w: image filter is not Cauchy", ErrNoLimitFound)
		}
		if !o.fallback {
			return zero, err
		}
		o.logger.Debug("completion: limit missing, using the fallback", zap.Error(err))
	}

	x, ok := continuity.DenseWitness(pkg.embed, pkg.source, pkg.target.space, y)
	if !ok {
		return zero, fmt.Errorf("%w: no dense pre-image", ErrNoLimitFound)
	}

	return f(x), nil
}

// MapCompletion lifts f : X1 → X2 to the completions: Extend(p1, ι2 ∘ f).
func MapCompletion[X1, Y1, X2, Y2 comparable](p1 *Package[X1, Y1], p2 *Package[X2, Y2], f func(X1) X2, opts ...Option) (*Extension[Y1, Y2], error) {
	return Extend(p1, func(x X1) Y2 { return p2.embed(f(x)) }, p2.target, opts...)
}

// Compare is the canonical map between two completions of the same space:
// Extend(p1, ι2). Compare(p2, p1) is its inverse.
func Compare[X, Y1, Y2 comparable](p1 *Package[X, Y1], p2 *Package[X, Y2], opts ...Option) (*Extension[Y1, Y2], error) {
	return Extend(p1, p2.embed, p2.target, opts...)
}

// Extension2 is a binary extension Y1 × Y2 → Z.
type Extension2[Y1, Y2, Z comparable] struct {
	ext *Extension[set.Pair[Y1, Y2], Z]
}

// At returns the value at (a, b).
func (e *Extension2[Y1, Y2, Z]) At(a Y1, b Y2) (Z, bool) { return e.ext.At(set.P(a, b)) }

// Func returns the extension as a binary function.
func (e *Extension2[Y1, Y2, Z]) Func() func(Y1, Y2) Z {
	return func(a Y1, b Y2) Z { return e.ext.values[set.P(a, b)] }
}

// Uncurried returns the underlying extension on the product.
func (e *Extension2[Y1, Y2, Z]) Uncurried() *Extension[set.Pair[Y1, Y2], Z] { return e.ext }

// Extend2 extends a jointly uniformly continuous f : X1 × X2 → Z through
// the product package.
func Extend2[X1, Y1, X2, Y2, Z comparable](p1 *Package[X1, Y1], p2 *Package[X2, Y2], f func(X1, X2) Z, target Target[Z], opts ...Option) (*Extension2[Y1, Y2, Z], error) {
	prod, err := Product(p1, p2)
	if err != nil {
		return nil, err
	}
	ext, err := Extend(prod, func(p set.Pair[X1, X2]) Z { return f(p.First, p.Second) }, target, opts...)
	if err != nil {
		return nil, err
	}

	return &Extension2[Y1, Y2, Z]{ext: ext}, nil
}

// Map2 lifts f : X1 × X2 → X3 to the completions: Extend2(p1, p2, ι3 ∘ f).
func Map2[X1, Y1, X2, Y2, X3, Y3 comparable](p1 *Package[X1, Y1], p2 *Package[X2, Y2], p3 *Package[X3, Y3], f func(X1, X2) X3, opts ...Option) (*Extension2[Y1, Y2, Y3], error) {
	return Extend2(p1, p2, func(a X1, b X2) Y3 { return p3.embed(f(a, b)) }, p3.target, opts...)
}
