package laws

import (
	"github.com/katalvlaran/uniformity/completion"
	"github.com/katalvlaran/uniformity/continuity"
	"github.com/katalvlaran/uniformity/filter"
	"github.com/katalvlaran/uniformity/rel"
	"github.com/katalvlaran/uniformity/set"
	"github.com/katalvlaran/uniformity/uniform"
)

// openSetLimit bounds the carriers whose open sets are enumerated.
const openSetLimit = 10

// SpaceChecks returns the axioms of u together with the filter, entourage,
// topology and lattice laws evaluated on it. Check names are prefixed with
// name and a slash.
func SpaceChecks[X comparable](name string, u *uniform.Space[X]) []Check {
	carrier, pairs := u.Carrier(), u.Pairs()
	basis := collectBasis(u)
	check := func(law string, run func() error) Check {
		return Check{Name: name + "/" + law, Run: run}
	}

	return []Check{
		check("axioms/reflexive", func() error {
			for i, v := range basis {
				if !rel.IsReflexive(v, carrier) {
					return violated("entourage #%d misses the diagonal", i)
				}
			}
			return nil
		}),
		check("axioms/symmetric", func() error {
			for i, v := range basis {
				if !u.IsEntourage(rel.Swap(v)) {
					return violated("swap of entourage #%d is not an entourage", i)
				}
			}
			return nil
		}),
		check("axioms/half", func() error {
			for i, v := range basis {
				if !hasHalf(basis, v, carrier) {
					return violated("entourage #%d has no half", i)
				}
			}
			return nil
		}),
		check("filter/order", func() error {
			f := u.Uniformity()
			if !f.Le(f) {
				return violated("Le is not reflexive")
			}
			if !filter.Inf(f, f).Equal(f) {
				return violated("Inf(F, F) ≠ F")
			}
			id := func(p set.Pair[X, X]) set.Pair[X, X] { return p }
			if !filter.Map(id, f, pairs).Equal(f) {
				return violated("Map(id, F) ≠ F")
			}
			if !filter.Comap(id, f, pairs).Equal(f) {
				return violated("Comap(id, F) ≠ F")
			}
			return nil
		}),
		check("entourage/unit", func() error {
			id := rel.Id[X]()
			for i, v := range basis {
				if !set.Equal(rel.Comp(id, v, carrier), v, pairs) || !set.Equal(rel.Comp(v, id, carrier), v, pairs) {
					return violated("Id is not a unit for entourage #%d", i)
				}
			}
			return nil
		}),
		check("entourage/symmetrize", func() error {
			for i, v := range basis {
				s := rel.Symmetrize(v)
				if !set.Subset(s, v, pairs) || !rel.IsSymmetric(s, carrier) {
					return violated("Symmetrize(entourage #%d) is not a symmetric subset", i)
				}
			}
			return nil
		}),
		check("entourage/ball-comp", func() error {
			for _, v := range basis {
				for _, w := range basis {
					vw := rel.Comp(v, w, carrier)
					for x := range carrier.All() {
						for y := range set.Materialize(rel.Ball(x, v), carrier).All() {
							for z := range set.Materialize(rel.Ball(y, w), carrier).All() {
								if !vw.Contains(set.P(x, z)) {
									return violated("%v ∈ Ball(%v, W) but %v ∉ Ball(%v, V○W)", z, y, z, x)
								}
							}
						}
					}
				}
			}
			return nil
		}),
		check("topology/nhds", func() error {
			for x := range carrier.All() {
				n := u.Nhds(x)
				if !n.NeBot() || !n.Frequently(func(y X) bool { return y == x }) {
					return violated("𝓝(%v) is degenerate or misses %v", x, x)
				}
				if !u.Closure(set.Of(x)).Contains(x) {
					return violated("%v is not in its own closure", x)
				}
			}
			return nil
		}),
		check("topology/opens", func() error {
			if carrier.Len() > openSetLimit {
				return nil
			}
			opens, err := u.OpenSets(openSetLimit)
			if err != nil {
				return err
			}
			for _, a := range opens {
				for _, b := range opens {
					if !u.IsOpen(set.Union[X](a, b)) || !u.IsOpen(set.Inter[X](a, b)) {
						return violated("opens %v and %v are not closed under ∪ and ∩", a, b)
					}
				}
			}
			return nil
		}),
		check("lattice/bounds", func() error {
			if !uniform.Bot(carrier).Le(u) || !u.Le(uniform.Top(carrier)) {
				return violated("u is not between Bot and Top")
			}
			if !uniform.Inf(u, u).Equal(u) || !uniform.Sup(u, u).Equal(u) {
				return violated("Inf or Sup is not idempotent")
			}
			return nil
		}),
	}
}

// CompletionChecks returns the contracts of pkg: the embedding is inducing
// and dense, the target separated, the identity extends to the identity and
// comparing pkg with itself is the identity.
func CompletionChecks[X, Y comparable](name string, pkg *completion.Package[X, Y]) []Check {
	src, space := pkg.Source(), pkg.Space()
	check := func(law string, run func() error) Check {
		return Check{Name: name + "/" + law, Run: run}
	}
	identityOnY := func(ext *completion.Extension[Y, Y]) error {
		for y := range space.Carrier().All() {
			if got, _ := ext.At(y); got != y {
				return violated("%v ↦ %v", y, got)
			}
		}
		return nil
	}

	return []Check{
		check("inducing", func() error {
			if !continuity.UniformInducing(pkg.Embed, src, space) {
				return violated("embedding does not induce the source uniformity")
			}
			return nil
		}),
		check("dense", func() error {
			if !continuity.DenseRange(pkg.Embed, src, space) {
				return violated("embedding range is not dense")
			}
			return nil
		}),
		check("separated", func() error {
			if !space.IsSeparated() {
				return violated("target is not separated")
			}
			return nil
		}),
		check("agreement", func() error {
			ext, err := completion.Extend(pkg, pkg.Embed, pkg.Target())
			if err != nil {
				return err
			}
			for x := range src.Carrier().All() {
				if got, _ := ext.At(pkg.Embed(x)); got != pkg.Embed(x) {
					return violated("extension of ι at ι(%v) is %v", x, got)
				}
			}
			return identityOnY(ext)
		}),
		check("compare-self", func() error {
			ext, err := completion.Compare(pkg, pkg)
			if err != nil {
				return err
			}
			return identityOnY(ext)
		}),
	}
}

// collectBasis materialises the entourage basis of u.
func collectBasis[X comparable](u *uniform.Space[X]) []rel.Rel[X] {
	var out []rel.Rel[X]
	for v := range u.Entourages() {
		out = append(out, v)
	}

	return out
}

// hasHalf reports ∃W ∈ basis: W ○ W ⊆ v.
func hasHalf[X comparable](basis []rel.Rel[X], v rel.Rel[X], carrier set.Finite[X]) bool {
	for _, w := range basis {
		if rel.CompSubset(w, w, v, carrier) {
			return true
		}
	}

	return false
}
