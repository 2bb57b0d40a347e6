package collections

// Reduce folds c into a single value of its own element type.
//
// The first member (see [First]) seeds the accumulator and is not passed to
// fn; fn is then called for each remaining member with its original position
// and c itself. A container with a single member returns that member without
// calling fn. An empty container returns [ErrEmptyReduction].
//
//	s, _ := collections.Reduce(collections.NewSequence("a", "b", "c"),
//	    func(acc, v string, _ collections.Position, _ collections.Container[string], _ any) string {
//	        return acc + v
//	    }) // "abc"
func Reduce[V any](c Container[V], fn Combiner[V, V], bound ...any) (V, error) {
	acc, ok := First(c).Get(0)
	if !ok {
		return acc, ErrEmptyReduction
	}
	seeded := false
	Each(c, func(v V, pos Position, c Container[V], ctx any) {
		if !seeded {
			seeded = true
			return
		}
		acc = fn(acc, v, pos, c, ctx)
	}, bound...)
	return acc, nil
}

// ReduceWith folds c into a value of type U starting from initial. fn is
// called for every member in enumeration order; each result becomes the next
// accumulator. An empty container returns initial.
//
//	sum := collections.ReduceWith(m, func(acc, v int, _ collections.Position, _ collections.Container[int], _ any) int {
//	    return acc + v
//	}, 0)
func ReduceWith[V, U any](c Container[V], fn Combiner[V, U], initial U, bound ...any) U {
	acc := initial
	Each(c, func(v V, pos Position, c Container[V], ctx any) {
		acc = fn(acc, v, pos, c, ctx)
	}, bound...)
	return acc
}
