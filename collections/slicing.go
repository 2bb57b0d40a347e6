package collections

import (
	"slices"

	"github.com/samber/lo"
)

// Values returns the values of c's own members in enumeration order.
func Values[V any](c Container[V]) *Sequence[V] {
	return Map(c, func(v V, _ Position, _ Container[V], _ any) V { return v })
}

// Keys returns the positions of c's own members in enumeration order.
func Keys[V any](c Container[V]) *Sequence[Position] {
	return Map(c, func(_ V, pos Position, _ Container[V], _ any) Position { return pos })
}

// First returns the first n values of c. When n is omitted, zero or negative
// a single value is returned; when n exceeds c.Len() all values are. A nil or
// empty container yields an empty Sequence.
func First[V any](c Container[V], n ...int) *Sequence[V] {
	values := Values(c).items
	return &Sequence[V]{items: slices.Clone(values[:take(len(values), n)])}
}

// Last returns the last n values of c, following the same rules as [First].
func Last[V any](c Container[V], n ...int) *Sequence[V] {
	values := Values(c).items
	return &Sequence[V]{items: slices.Clone(values[len(values)-take(len(values), n):])}
}

func take(size int, n []int) int {
	k := 1
	if len(n) > 0 && n[0] > 0 {
		k = n[0]
	}
	return min(k, size)
}

// Uniq returns the values of c without duplicates, keeping the first
// occurrence of each. A value is a duplicate when [Contains] finds it among
// the values enumerated before it.
//
//	collections.Uniq(collections.NewSequence(1, 2, 1, 3, 4, 3)) // [1 2 3 4]
func Uniq[V any](c Container[V]) *Sequence[V] {
	seen := Values(c)
	i := -1
	return Filter(c, func(v V, _ Position, _ Container[V], _ any) bool {
		i++
		return Contains[V](seen.Slice(0, i), v).Len() == 0
	})
}

// Shuffle returns the values of c in a random order. With two or more values
// the result never keeps the original order of positions.
func Shuffle[V any](c Container[V]) *Sequence[V] {
	values := Values(c).items
	order := lo.Shuffle(lo.Range(len(values)))
	if len(order) > 1 && slices.IsSorted(order) {
		order[0], order[1] = order[1], order[0]
	}
	out := make([]V, len(order))
	for i, j := range order {
		out[i] = values[j]
	}
	return &Sequence[V]{items: out}
}
