package collections

import (
	"encoding/json"
	"iter"
	"strconv"
)

// Kind tags the shape of a [Container].
type Kind uint8

const (
	// SequenceKind marks a 0-based, index-addressed list.
	SequenceKind Kind = iota + 1
	// MappingKind marks a string-keyed, insertion-ordered set of members.
	MappingKind
)

// String returns "sequence" or "mapping".
func (k Kind) String() string {
	switch k {
	case SequenceKind:
		return "sequence"
	case MappingKind:
		return "mapping"
	default:
		return "unknown"
	}
}

// Container is the interface satisfied by [Sequence] and [Mapping].
//
// Accept Container in your own functions so that both shapes can be passed
// interchangeably; every operation in this package does.
type Container[V any] interface {
	// Kind reports which shape the container has.
	Kind() Kind

	// Len returns the number of own members.
	Len() int

	// At returns the own member stored at pos.
	At(pos Position) (V, bool)

	// All enumerates own members in natural order: ascending index for a
	// sequence, insertion order for a mapping.
	All() iter.Seq2[Position, V]
}

// Position addresses a member of a [Container]: an index for a sequence, a
// key for a mapping. The zero value is index 0.
type Position struct {
	key   string
	index int
	keyed bool
}

// Index returns the position of the i-th member of a sequence.
func Index(i int) Position { return Position{index: i} }

// Key returns the position of the member stored under k in a mapping.
func Key(k string) Position { return Position{key: k, keyed: true} }

// Index returns the index and true when p addresses a sequence member.
func (p Position) Index() (int, bool) {
	if p.keyed {
		return 0, false
	}
	return p.index, true
}

// Key returns the key and true when p addresses a mapping member.
func (p Position) Key() (string, bool) {
	if !p.keyed {
		return "", false
	}
	return p.key, true
}

// IsKey reports whether p addresses a mapping member.
func (p Position) IsKey() bool { return p.keyed }

// String renders the key, or the index in decimal.
func (p Position) String() string {
	if p.keyed {
		return p.key
	}
	return strconv.Itoa(p.index)
}

// MarshalJSON encodes an index as a JSON number and a key as a JSON string.
func (p Position) MarshalJSON() ([]byte, error) {
	if p.keyed {
		return json.Marshal(p.key)
	}
	return []byte(strconv.Itoa(p.index)), nil
}

// length is Len that tolerates a nil container.
func length[V any](c Container[V]) int {
	if c == nil {
		return 0
	}
	return c.Len()
}
