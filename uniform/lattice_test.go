// SPDX-License-Identifier: MIT

package uniform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uniformity/rel"
	"github.com/katalvlaran/uniformity/set"
	"github.com/katalvlaran/uniformity/uniform"
)

var four = set.Of(0, 1, 2, 3)

// equivSpace builds the principal uniformity of the given classes on four.
func equivSpace(t *testing.T, groups ...[]int) *uniform.Space[int] {
	t.Helper()
	u, err := uniform.FromBasis(four, single(classes(groups...)))
	require.NoError(t, err)

	return u
}

// metricSpace is the integer metric uniformity on four.
func metricSpace(t *testing.T) *uniform.Space[int] {
	t.Helper()
	u, err := uniform.FromMetric(four, absDist, uniform.Halving(4))
	require.NoError(t, err)

	return u
}

// TestLattice_Bounds checks ⊥ ≤ u ≤ ⊤ and the meet/join bounds.
func TestLattice_Bounds(t *testing.T) {
	u := equivSpace(t, []int{0, 1}, []int{2}, []int{3})
	v := equivSpace(t, []int{0}, []int{1, 2}, []int{3})
	bot, top := uniform.Bot(four), uniform.Top(four)

	for _, w := range []*uniform.Space[int]{u, v, metricSpace(t)} {
		assert.True(t, bot.Le(w))
		assert.True(t, w.Le(top))
	}

	meet := uniform.Inf(u, v)
	assert.True(t, meet.Le(u))
	assert.True(t, meet.Le(v))
	assert.True(t, meet.Equal(bot), "the classes only share the diagonal")

	join := uniform.Sup(u, v)
	assert.True(t, u.Le(join))
	assert.True(t, v.Le(join))
	want := equivSpace(t, []int{0, 1, 2}, []int{3})
	assert.True(t, join.Equal(want), "join of equivalences is the generated equivalence")
}

// TestSup_Idempotent checks u ⊔ u = u on a metric space whose basis is a chain.
func TestSup_Idempotent(t *testing.T) {
	u := metricSpace(t)
	assert.True(t, uniform.Sup(u, u).Equal(u))
	assert.True(t, uniform.Inf(u, u).Equal(u))
	assert.True(t, uniform.Sup(u, uniform.Top(four)).Equal(uniform.Top(four)))
	assert.True(t, uniform.Inf(u, uniform.Top(four)).Equal(u))
}

// TestInfAll folds the meet and falls back to ⊤.
func TestInfAll(t *testing.T) {
	assert.True(t, uniform.InfAll(four).Equal(uniform.Top(four)))
	u := equivSpace(t, []int{0, 1}, []int{2, 3})
	v := equivSpace(t, []int{0, 1, 2, 3})
	w := equivSpace(t, []int{0, 1, 2}, []int{3})
	assert.True(t, uniform.InfAll(four, u, v).Equal(u))
	assert.True(t, uniform.InfAll(four, u, v, w).Equal(equivSpace(t, []int{0, 1}, []int{2}, []int{3})))
}

// TestInf_PanicsOnCarrierMismatch treats mixed carriers as a programmer error.
func TestInf_PanicsOnCarrierMismatch(t *testing.T) {
	assert.Panics(t, func() { uniform.Inf(uniform.Bot(four), uniform.Bot(set.Of(0, 1))) })
}

// TestComap_Laws checks identity, composition and distribution over Inf.
func TestComap_Laws(t *testing.T) {
	u := metricSpace(t)
	v := equivSpace(t, []int{0, 1}, []int{2, 3})
	id := func(x int) int { return x }
	f := func(x int) int { return 3 - x }
	g := func(x int) int { return x / 2 }

	assert.True(t, uniform.Comap(id, u, four).Equal(u))
	assert.True(t, uniform.Comap(func(x int) int { return g(f(x)) }, u, four).
		Equal(uniform.Comap(f, uniform.Comap(g, u, four), four)))
	assert.True(t, uniform.Comap(f, uniform.Inf(u, v), four).
		Equal(uniform.Inf(uniform.Comap(f, u, four), uniform.Comap(f, v, four))))
	assert.True(t, uniform.Comap(g, u, four).Le(uniform.Comap(g, uniform.Top(four), four)), "monotone")

	// Pulling back along x ↦ x/2 identifies 0~1 and 2~3.
	halved := uniform.Comap(g, uniform.Discrete(four), four)
	assert.True(t, halved.Equal(v))
}

// TestProduct_BallIsProductOfBalls: ball((x,y), V1×V2) = ball(x,V1) × ball(y,V2).
func TestProduct_BallIsProductOfBalls(t *testing.T) {
	left := equivSpace(t, []int{0, 1}, []int{2, 3})
	right := uniform.Indiscrete(set.Of("a", "b"))
	p := uniform.Product(left, right)

	require.Equal(t, 8, p.Carrier().Len())
	v1 := classes([]int{0, 1}, []int{2, 3})
	v2 := rel.Rel[string](rel.Pairs(right.Carrier()))
	prodEnt := rel.Prod(v1, v2)
	assert.True(t, p.IsEntourage(prodEnt))

	for x := range left.Carrier().All() {
		for y := range right.Carrier().All() {
			got := p.Ball(set.P(x, y), prodEnt)
			want := set.Product(left.Ball(x, v1), right.Ball(y, v2))
			assert.True(t, set.Equal[set.Pair[int, string]](got, want, p.Carrier()), "ball at (%d,%s)", x, y)
		}
	}

	// Close pairs of points are exactly the coordinatewise close ones.
	assert.True(t, p.Kernel().Contains(set.P(set.P(0, "a"), set.P(1, "b"))))
	assert.False(t, p.Kernel().Contains(set.P(set.P(0, "a"), set.P(2, "a"))))
}

// TestSum_SummandsStayApart: cross-summand pairs are never related.
func TestSum_SummandsStayApart(t *testing.T) {
	u := uniform.Indiscrete(set.Of(0, 1))
	v := uniform.Indiscrete(set.Of("x", "y"))
	s := uniform.Sum(u, v)

	require.Equal(t, 4, s.Carrier().Len())
	kernel := s.Kernel()
	assert.True(t, kernel.Contains(set.P(set.Inl[int, string](0), set.Inl[int, string](1))))
	assert.True(t, kernel.Contains(set.P(set.Inr[int]("x"), set.Inr[int]("y"))))
	assert.False(t, kernel.Contains(set.P(set.Inl[int, string](0), set.Inr[int]("x"))))

	// Each summand keeps its own closeness.
	back := uniform.Comap(set.Inl[int, string], s, u.Carrier())
	assert.True(t, back.Equal(u))

	opens, err := s.OpenSets(8)
	require.NoError(t, err)
	assert.Len(t, opens, 4, "∅, left, right and everything")
}

// TestSubspace restricts the carrier and keeps the induced closeness.
func TestSubspace(t *testing.T) {
	u := equivSpace(t, []int{0, 1}, []int{2, 3})
	sub := uniform.Subspace(u, set.Set[int](set.Of(1, 2, 3)))

	assert.Equal(t, []int{1, 2, 3}, sub.Carrier().Slice())
	assert.True(t, sub.Kernel().Contains(set.P(2, 3)))
	assert.False(t, sub.Kernel().Contains(set.P(1, 2)))
	opens, err := sub.OpenSets(8)
	require.NoError(t, err)
	assert.Len(t, opens, 4)
}
