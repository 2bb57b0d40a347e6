package collections

import (
	"encoding/json"
	"fmt"
	"iter"
)

// Sequence is a 0-based ordered list of V.
//
// Operations in this package never modify a Sequence they receive; the ones
// that produce a list return a fresh *Sequence owned by the caller.
//
//	s := collections.NewSequence(1, 2, 3)
//	s := collections.SequenceOf([]string{"a", "b"})
type Sequence[V any] struct {
	items []V
}

// NewSequence creates a Sequence from a variadic list of items (copied).
func NewSequence[V any](items ...V) *Sequence[V] {
	return SequenceOf(items)
}

// SequenceOf creates a Sequence from a slice (the slice is copied).
func SequenceOf[V any](items []V) *Sequence[V] {
	dst := make([]V, len(items))
	copy(dst, items)
	return &Sequence[V]{items: dst}
}

// Kind returns [SequenceKind].
func (s *Sequence[V]) Kind() Kind { return SequenceKind }

// Len returns the number of items. A nil Sequence is empty.
func (s *Sequence[V]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Get returns the item at index i together with a presence flag.
func (s *Sequence[V]) Get(i int) (V, bool) {
	var zero V
	if i < 0 || i >= s.Len() {
		return zero, false
	}
	return s.items[i], true
}

// At returns the item addressed by an index position.
// Key positions never address a sequence member.
func (s *Sequence[V]) At(pos Position) (V, bool) {
	i, ok := pos.Index()
	if !ok {
		var zero V
		return zero, false
	}
	return s.Get(i)
}

// Items returns a copy of the underlying slice.
func (s *Sequence[V]) Items() []V {
	out := make([]V, s.Len())
	if s != nil {
		copy(out, s.items)
	}
	return out
}

// Append adds items to the end of s and returns s.
func (s *Sequence[V]) Append(items ...V) *Sequence[V] {
	s.items = append(s.items, items...)
	return s
}

// Slice returns a new Sequence with the items in [from, to).
// Bounds are clamped to the valid range.
func (s *Sequence[V]) Slice(from, to int) *Sequence[V] {
	n := s.Len()
	from = max(0, min(from, n))
	to = max(from, min(to, n))
	if n == 0 {
		return &Sequence[V]{items: []V{}}
	}
	return SequenceOf(s.items[from:to])
}

// All enumerates the items in ascending index order.
//
// The length is re-read before every step, so items appended by a consumer
// during the enumeration are visited too.
func (s *Sequence[V]) All() iter.Seq2[Position, V] {
	return func(yield func(Position, V) bool) {
		if s == nil {
			return
		}
		for i := 0; i < len(s.items); i++ {
			if !yield(Index(i), s.items[i]) {
				return
			}
		}
	}
}

// MarshalJSON encodes the items as a JSON array.
func (s *Sequence[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}

// String returns a JSON representation of the sequence.
// It implements [fmt.Stringer].
func (s *Sequence[V]) String() string {
	b, err := s.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.Items())
	}
	return string(b)
}
