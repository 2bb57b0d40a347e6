package collections

// Callback shapes. bound is the execution context given as the trailing
// argument of the operation, or nil.
type (
	// Visitor receives one member during [Each].
	Visitor[V any] func(value V, pos Position, c Container[V], bound any)

	// Predicate tests one member.
	Predicate[V any] func(value V, pos Position, c Container[V], bound any) bool

	// Transform maps one member to a value of type U.
	Transform[V, U any] func(value V, pos Position, c Container[V], bound any) U

	// Combiner folds one member into the accumulator.
	Combiner[V, U any] func(acc U, value V, pos Position, c Container[V], bound any) U
)

func receiver(bound []any) any {
	if len(bound) == 0 {
		return nil
	}
	return bound[0]
}

// Each calls fn once for every own member of c, in natural order, passing the
// value, its position, c itself and the optional execution context. The
// return value of fn is not consulted: every member is visited. Each returns c.
//
// A nil container is a no-op. When fn modifies c, a sequence visits items
// appended during the traversal while a mapping only visits the keys present
// when the traversal started.
//
//	collections.Each(s, func(v string, pos collections.Position, _ collections.Container[string], _ any) {
//	    fmt.Println(pos, v)
//	})
func Each[V any](c Container[V], fn Visitor[V], bound ...any) Container[V] {
	if c == nil {
		return c
	}
	ctx := receiver(bound)
	for pos, v := range c.All() {
		fn(v, pos, c, ctx)
	}
	return c
}

// Map returns a new Sequence holding fn applied to every member of c, in
// enumeration order. The result has exactly c.Len() items.
func Map[V, U any](c Container[V], fn Transform[V, U], bound ...any) *Sequence[U] {
	out := make([]U, 0, length(c))
	Each(c, func(v V, pos Position, c Container[V], ctx any) {
		out = append(out, fn(v, pos, c, ctx))
	}, bound...)
	return &Sequence[U]{items: out}
}

// Filter returns the values of the members for which fn returns true.
func Filter[V any](c Container[V], fn Predicate[V], bound ...any) *Sequence[V] {
	out := make([]V, 0, length(c))
	Each(c, func(v V, pos Position, c Container[V], ctx any) {
		if fn(v, pos, c, ctx) {
			out = append(out, v)
		}
	}, bound...)
	return &Sequence[V]{items: out}
}

// Reject returns the values of the members for which fn returns false.
// It is the complement of [Filter].
func Reject[V any](c Container[V], fn Predicate[V], bound ...any) *Sequence[V] {
	return Filter(c, not(fn), bound...)
}

// Every reports whether fn returns true for all members of c. The walk stops
// at the first member for which fn returns false; later members are not
// visited. An empty container yields true.
func Every[V any](c Container[V], fn Predicate[V], bound ...any) bool {
	if c == nil {
		return true
	}
	ctx := receiver(bound)
	for pos, v := range c.All() {
		if !fn(v, pos, c, ctx) {
			return false
		}
	}
	return true
}

// Some reports whether fn returns true for at least one member of c. It
// stops at the first such member. An empty container yields false.
func Some[V any](c Container[V], fn Predicate[V], bound ...any) bool {
	return !Every(c, not(fn), bound...)
}

func not[V any](fn Predicate[V]) Predicate[V] {
	return func(v V, pos Position, c Container[V], ctx any) bool {
		return !fn(v, pos, c, ctx)
	}
}

// Contains returns the positions of every member identical to value, in
// enumeration order, or an empty Sequence. See [Identical] for the equality
// used.
//
//	collections.Contains(collections.NewSequence(1, 2, 1, 3), 1) // [0 2]
func Contains[V any](c Container[V], value V) *Sequence[Position] {
	out := []Position{}
	Each(c, func(v V, pos Position, _ Container[V], _ any) {
		if Identical(value, v) {
			out = append(out, pos)
		}
	})
	return &Sequence[Position]{items: out}
}
