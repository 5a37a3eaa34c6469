package set

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Finite is an immutable finite set that remembers insertion order.
//
// The zero value is the empty set. Finite is a value type: copies share the
// underlying storage, which is never mutated after construction.
type Finite[T comparable] struct {
	items []T            // members in insertion order
	index map[T]struct{} // membership index
}

// Of returns the finite set of xs. Duplicates are dropped; first occurrence wins.
func Of[T comparable](xs ...T) Finite[T] {
	b := newBuilder[T](len(xs))
	for _, x := range xs {
		b.add(x)
	}

	return b.build()
}

// FromSeq collects a finite sequence into a set.
// The sequence MUST terminate.
func FromSeq[T comparable](seq iter.Seq[T]) Finite[T] {
	b := newBuilder[T](0)
	for x := range seq {
		b.add(x)
	}

	return b.build()
}

// Contains reports membership in O(1).
func (s Finite[T]) Contains(x T) bool {
	_, ok := s.index[x]

	return ok
}

// Len returns the number of members.
func (s Finite[T]) Len() int { return len(s.items) }

// All yields the members in insertion order.
func (s Finite[T]) All() iter.Seq[T] {
	return slices.Values(s.items)
}

// Slice returns a copy of the members in insertion order.
func (s Finite[T]) Slice() []T {
	return slices.Clone(s.items)
}

// At returns the i-th member in insertion order.
func (s Finite[T]) At(i int) T { return s.items[i] }

// Filter returns the members of s that satisfy p.
func (s Finite[T]) Filter(p Set[T]) Finite[T] {
	return Materialize(p, s)
}

// String renders the set as {a, b, c}.
func (s Finite[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, x := range s.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte('}')

	return sb.String()
}

// Subsets yields every subset of s, smallest first by bit pattern.
// Returns ErrTooLarge when s has more than limit members.
func Subsets[T comparable](s Finite[T], limit int) (iter.Seq[Finite[T]], error) {
	n := s.Len()
	if n > limit || n > 30 {
		return nil, fmt.Errorf("%w: %d members, limit %d", ErrTooLarge, n, limit)
	}

	return func(yield func(Finite[T]) bool) {
		for mask := 0; mask < 1<<n; mask++ {
			out := make([]T, 0, n)
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					out = append(out, s.items[i])
				}
			}
			if !yield(fromUnique(out)) {
				return
			}
		}
	}, nil
}

// builder accumulates unique members in order.
type builder[T comparable] struct {
	items []T
	index map[T]struct{}
}

func newBuilder[T comparable](capacity int) *builder[T] {
	return &builder[T]{
		items: make([]T, 0, capacity),
		index: make(map[T]struct{}, capacity),
	}
}

func (b *builder[T]) add(x T) {
	if _, ok := b.index[x]; ok {
		return
	}
	b.index[x] = struct{}{}
	b.items = append(b.items, x)
}

func (b *builder[T]) build() Finite[T] {
	return Finite[T]{items: b.items, index: b.index}
}

// fromUnique wraps items that are already known to be distinct.
func fromUnique[T comparable](items []T) Finite[T] {
	index := make(map[T]struct{}, len(items))
	for _, x := range items {
		index[x] = struct{}{}
	}

	return Finite[T]{items: items, index: index}
}
