// Package collections provides generic traversal and transformation helpers
// over two container shapes: ordered sequences and string-keyed mappings.
//
// # Containers
//
// Every operation accepts a [Container][V]. Two variants exist:
//
//	s := collections.NewSequence("a", "b", "c")        // positions 0, 1, 2
//	m := collections.NewMapping[int]().Set("a", 1).Set("b", 2) // positions "a", "b"
//
// A container enumerates its own members in natural order: ascending index for
// a [Sequence], insertion order for a [Mapping]. A mapping may inherit members
// from a parent created with [Mapping.Derive]; inherited members are visible
// through [Mapping.Lookup] but are never visited, enumerated or counted by the
// operations in this package.
//
// # Traversal
//
// [Each] is the single traversal primitive. [Map], [Filter], [Reject],
// [Some], [Contains], [Reduce], [Invoke] and [Pluck] are all built on it;
// [Every] performs its own short-circuiting walk.
//
// Callbacks receive (value, position, container, bound). The last argument is
// the optional execution context passed as the trailing argument of the
// operation, or nil when none was given:
//
//	upper := collections.Map(s, func(v string, _ collections.Position, _ collections.Container[string], _ any) string {
//	    return strings.ToUpper(v)
//	})
//
// # Results
//
// Operations that produce a list return a new *[Sequence]; the input container
// is never modified by this package. Callbacks may modify it; see [Each] for
// what a traversal observes in that case.
package collections
