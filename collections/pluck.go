package collections

// Pluck returns, for every member of c, the value of its property called
// name (see [Property]). Members without that property yield [Missing].
//
//	colors := collections.Pluck(collections.NewSequence[any](
//	    map[string]any{"color": "red"},
//	    map[string]any{"color": "green"},
//	), "color") // ["red", "green"]
func Pluck[V any](c Container[V], name string) *Sequence[any] {
	return Map(c, func(v V, _ Position, _ Container[V], _ any) any {
		if p, ok := Property(v, name); ok {
			return p
		}
		return Missing
	})
}

// PluckFunc extracts a value of type U from every member using fn.
//
//	names := collections.PluckFunc(users, func(u User) string { return u.Name })
func PluckFunc[V, U any](c Container[V], fn func(V) U) *Sequence[U] {
	return Map(c, func(v V, _ Position, _ Container[V], _ any) U { return fn(v) })
}
