package collections

import "errors"

// Sentinel errors returned by collection operations.
var (
	// ErrEmptyReduction is returned by Reduce when the container has no
	// members and therefore no seed for the accumulator.
	ErrEmptyReduction = errors.New("collections: reduce of empty container with no initial value")

	// ErrMethodNotFound is returned by Invoke when an element has no method
	// or function-valued member with the requested name.
	ErrMethodNotFound = errors.New("collections: method not found")

	// ErrNotInvocable is returned by Invoke when the method argument is
	// neither a method name nor a function.
	ErrNotInvocable = errors.New("collections: method is neither a name nor a function")

	// ErrArgumentType is returned by Invoke when a forwarded argument cannot
	// be assigned to the corresponding parameter.
	ErrArgumentType = errors.New("collections: argument type mismatch")
)
