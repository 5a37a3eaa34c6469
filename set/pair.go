package set

import "fmt"

// Pair is an ordered pair. It is comparable whenever A and B are.
type Pair[A, B any] struct {
	First  A
	Second B
}

// P builds a Pair.
func P[A, B any](a A, b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} }

// Swap returns (Second, First).
func (p Pair[A, B]) Swap() Pair[B, A] { return Pair[B, A]{First: p.Second, Second: p.First} }

// String renders the pair as (a, b).
func (p Pair[A, B]) String() string { return fmt.Sprintf("(%v, %v)", p.First, p.Second) }

// Fst projects the first coordinate.
func Fst[A, B any](p Pair[A, B]) A { return p.First }

// Snd projects the second coordinate.
func Snd[A, B any](p Pair[A, B]) B { return p.Second }

// Product returns the carrier a × b in row-major order.
func Product[A, B comparable](a Finite[A], b Finite[B]) Finite[Pair[A, B]] {
	out := make([]Pair[A, B], 0, a.Len()*b.Len())
	for _, x := range a.items {
		for _, y := range b.items {
			out = append(out, Pair[A, B]{First: x, Second: y})
		}
	}

	return fromUnique(out)
}

// Either is a value of the disjoint union A ⊕ B.
// It is comparable whenever A and B are.
type Either[A, B any] struct {
	left    A
	right   B
	isRight bool
}

// Inl injects a into the left summand.
func Inl[A, B any](a A) Either[A, B] { return Either[A, B]{left: a} }

// Inr injects b into the right summand.
func Inr[A, B any](b B) Either[A, B] { return Either[A, B]{right: b, isRight: true} }

// Left returns the left payload and whether e is a left injection.
func (e Either[A, B]) Left() (A, bool) { return e.left, !e.isRight }

// Right returns the right payload and whether e is a right injection.
func (e Either[A, B]) Right() (B, bool) { return e.right, e.isRight }

// IsRight reports whether e lives in the right summand.
func (e Either[A, B]) IsRight() bool { return e.isRight }

// String renders inl(a) or inr(b).
func (e Either[A, B]) String() string {
	if e.isRight {
		return fmt.Sprintf("inr(%v)", e.right)
	}

	return fmt.Sprintf("inl(%v)", e.left)
}

// DisjointUnion returns the carrier a ⊕ b: every inl(a) followed by every inr(b).
func DisjointUnion[A, B comparable](a Finite[A], b Finite[B]) Finite[Either[A, B]] {
	out := make([]Either[A, B], 0, a.Len()+b.Len())
	for _, x := range a.items {
		out = append(out, Inl[A, B](x))
	}
	for _, y := range b.items {
		out = append(out, Inr[A](y))
	}

	return fromUnique(out)
}
