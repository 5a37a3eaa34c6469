// SPDX-License-Identifier: MIT

package uniform_test

import (
	"fmt"

	"github.com/katalvlaran/uniformity/rel"
	"github.com/katalvlaran/uniformity/set"
	"github.com/katalvlaran/uniformity/uniform"
)

// ExampleDiscrete shows that the finest uniformity induces the discrete topology.
func ExampleDiscrete() {
	u := uniform.Discrete(set.Of(0, 1, 2))
	opens, err := u.OpenSets(8)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(opens), u.IsSeparated())
	// Output: 8 true
}

// ExampleFromBasis builds the principal uniformity of an equivalence relation.
func ExampleFromBasis() {
	carrier := set.Of(0, 1, 2)
	v := set.Of(set.P(0, 0), set.P(0, 1), set.P(1, 0), set.P(1, 1), set.P(2, 2))
	u, err := uniform.FromBasis(carrier, func(yield func(rel.Rel[int]) bool) { yield(v) })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(u.Closure(set.Of(0)))
	fmt.Println(u.IsSeparated())
	// Output:
	// {0, 1}
	// false
}

// ExampleSup joins two equivalence uniformities: closeness propagates through 1.
func ExampleSup() {
	carrier := set.Of(0, 1, 2)
	left := set.Of(set.P(0, 0), set.P(0, 1), set.P(1, 0), set.P(1, 1), set.P(2, 2))
	right := set.Of(set.P(0, 0), set.P(1, 1), set.P(1, 2), set.P(2, 1), set.P(2, 2))
	u, _ := uniform.FromBasis(carrier, func(yield func(rel.Rel[int]) bool) { yield(left) })
	v, _ := uniform.FromBasis(carrier, func(yield func(rel.Rel[int]) bool) { yield(right) })

	join := uniform.Sup(u, v)
	fmt.Println(join.Closure(set.Of(0)))
	fmt.Println(join.Equal(uniform.Indiscrete(carrier)))
	// Output:
	// {0, 1, 2}
	// true
}

// ExampleProduct prints a ball of the product space.
func ExampleProduct() {
	u := uniform.Indiscrete(set.Of(0, 1))
	v := uniform.Discrete(set.Of("a", "b"))
	p := uniform.Product(u, v)

	fmt.Println(p.Closure(set.Of(set.P(0, "a"))))
	// Output: {(0, a), (1, a)}
}
