// SPDX-License-Identifier: MIT

package uniform

import (
	"github.com/katalvlaran/uniformity/filter"
	"github.com/katalvlaran/uniformity/rel"
	"github.com/katalvlaran/uniformity/set"
)

// IsSeparated reports whether distinct points are told apart by some
// entourage, i.e. the kernel ⋂𝓤 is the diagonal.
func (u *Space[X]) IsSeparated() bool {
	return set.Subset[set.Pair[X, X]](u.Kernel(), rel.Id[X](), u.pairs)
}

// IsCauchy reports whether f is proper and f × f ≤ 𝓤: for every entourage V
// some large B has B × B ⊆ V.
func (u *Space[X]) IsCauchy(f filter.Filter[X]) bool {
	return f.NeBot() && filter.Prod(f, f).Le(u.unif)
}

// Converges reports f ≤ 𝓝(x).
func (u *Space[X]) Converges(f filter.Filter[X], x X) bool {
	return f.Le(u.Nhds(x))
}

// Limit returns the first carrier point f converges to.
// In a separated space a proper filter has at most one limit.
func (u *Space[X]) Limit(f filter.Filter[X]) (X, bool) {
	for x := range u.carrier.All() {
		if u.Converges(f, x) {
			return x, true
		}
	}
	var zero X

	return zero, false
}
