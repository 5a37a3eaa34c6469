package continuity

import (
	"github.com/katalvlaran/uniformity/filter"
	"github.com/katalvlaran/uniformity/rel"
	"github.com/katalvlaran/uniformity/set"
	"github.com/katalvlaran/uniformity/uniform"
)

// UniformContinuous reports Tendsto(f × f, 𝓤src, 𝓤dst): for every
// entourage V of dst some entourage U of src has (f × f)(U) ⊆ V.
//
// Complexity: O(|Bsrc|·|Bdst|·n²) membership tests, n = |carrier(src)|.
func UniformContinuous[X, Y comparable](f func(X) Y, src *uniform.Space[X], dst *uniform.Space[Y]) bool {
	return filter.Tendsto(rel.MapPair(f), src.Uniformity(), dst.Uniformity())
}

// UniformContinuousOn is the basis form: every t in dstBasis has some s in
// srcBasis with (a, b) ∈ s ⇒ (f a, f b) ∈ t for a, b in carrier.
// An empty dstBasis is vacuously satisfied.
func UniformContinuousOn[X, Y comparable](f func(X) Y, srcBasis []rel.Rel[X], dstBasis []rel.Rel[Y], carrier set.Finite[X]) bool {
	pairs := rel.Pairs(carrier)
	mapped := rel.MapPair(f)
	for _, t := range dstBasis {
		pulled := set.Preimage(mapped, t)
		found := false
		for _, s := range srcBasis {
			if set.Subset(s, pulled, pairs) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// Continuous reports whether f maps 𝓝(x) into 𝓝(f x) for every x.
func Continuous[X, Y comparable](f func(X) Y, src *uniform.Space[X], dst *uniform.Space[Y]) bool {
	for x := range src.Carrier().All() {
		if !filter.Tendsto(f, src.Nhds(x), dst.Nhds(f(x))) {
			return false
		}
	}

	return true
}

// UniformInducing reports Comap(f, dst) = src exactly.
func UniformInducing[X, Y comparable](f func(X) Y, src *uniform.Space[X], dst *uniform.Space[Y]) bool {
	return uniform.Comap(f, dst, src.Carrier()).Equal(src)
}

// Injective reports whether f is one-to-one on carrier.
func Injective[X, Y comparable](f func(X) Y, carrier set.Finite[X]) bool {
	seen := make(map[Y]struct{}, carrier.Len())
	for x := range carrier.All() {
		y := f(x)
		if _, dup := seen[y]; dup {
			return false
		}
		seen[y] = struct{}{}
	}

	return true
}

// UniformEmbedding reports an injective uniformly inducing map.
func UniformEmbedding[X, Y comparable](f func(X) Y, src *uniform.Space[X], dst *uniform.Space[Y]) bool {
	return Injective(f, src.Carrier()) && UniformInducing(f, src, dst)
}

// DenseRange reports whether the closure of f(X) is the whole of dst.
// On a separated finite dst this is surjectivity.
func DenseRange[X, Y comparable](f func(X) Y, src *uniform.Space[X], dst *uniform.Space[Y]) bool {
	img := set.Image[X, Y](f, src.Carrier(), src.Carrier())

	return dst.Closure(img).Len() == dst.Carrier().Len()
}

// DenseWitness returns the first x whose image lies in the smallest ball
// around y, i.e. some pre-image of y "under denseness". It reports false
// when y is not in the closure of f(X).
func DenseWitness[X, Y comparable](f func(X) Y, src *uniform.Space[X], dst *uniform.Space[Y], y Y) (X, bool) {
	ball := rel.Ball(y, rel.Rel[Y](dst.Kernel()))
	for x := range src.Carrier().All() {
		if ball.Contains(f(x)) {
			return x, true
		}
	}
	var zero X

	return zero, false
}
