package collections

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/maruel/natural"
	"github.com/samber/lo"
)

// Mapping is a string-keyed set of members enumerated in insertion order.
//
// A Mapping created with [Mapping.Derive] inherits the members of its parent:
// [Mapping.Lookup] and [Mapping.In] see them, but they are not own members,
// so [Mapping.Len], [Mapping.All] and every operation in this package ignore
// them.
//
//	base := collections.NewMapping[string]().Set("lang", "go")
//	m := base.Derive().Set("name", "gopher")
//	m.Len()            // 1
//	m.Lookup("lang")   // "go", true
//	m.Get("lang")      // "", false
type Mapping[V any] struct {
	keys   []string
	values map[string]V
	parent *Mapping[V]
}

// NewMapping creates an empty Mapping.
func NewMapping[V any]() *Mapping[V] {
	return &Mapping[V]{values: make(map[string]V)}
}

// MappingOf creates a Mapping from a Go map. Go maps carry no order, so the
// keys are enumerated in natural order ("item2" before "item10").
func MappingOf[V any](m map[string]V) *Mapping[V] {
	keys := lo.Keys(m)
	slices.SortFunc(keys, compareNatural)
	out := &Mapping[V]{keys: keys, values: make(map[string]V, len(m))}
	for _, k := range keys {
		out.values[k] = m[k]
	}
	return out
}

func compareNatural(a, b string) int {
	switch {
	case a == b:
		return 0
	case natural.Less(a, b):
		return -1
	default:
		return 1
	}
}

// Derive returns an empty Mapping whose inherited members are those of m.
func (m *Mapping[V]) Derive() *Mapping[V] {
	return &Mapping[V]{values: make(map[string]V), parent: m}
}

// Parent returns the Mapping m inherits from, or nil.
func (m *Mapping[V]) Parent() *Mapping[V] {
	if m == nil {
		return nil
	}
	return m.parent
}

// Kind returns [MappingKind].
func (m *Mapping[V]) Kind() Kind { return MappingKind }

// Len returns the number of own members.
func (m *Mapping[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Set stores v under k and returns m. Overwriting an existing key keeps its
// position in the enumeration order.
func (m *Mapping[V]) Set(k string, v V) *Mapping[V] {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
	return m
}

// Get returns the own member stored under k.
func (m *Mapping[V]) Get(k string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[k]
	return v, ok
}

// Lookup returns the member stored under k, own or inherited.
func (m *Mapping[V]) Lookup(k string) (V, bool) {
	for cur := m; cur != nil; cur = cur.parent {
		if v, ok := cur.values[k]; ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Has reports whether k is an own member.
func (m *Mapping[V]) Has(k string) bool {
	_, ok := m.Get(k)
	return ok
}

// In reports whether k is an own or inherited member.
func (m *Mapping[V]) In(k string) bool {
	_, ok := m.Lookup(k)
	return ok
}

// Delete removes the own member k and reports whether it existed.
// Inherited members are not affected.
func (m *Mapping[V]) Delete(k string) bool {
	if !m.Has(k) {
		return false
	}
	delete(m.values, k)
	if i := slices.Index(m.keys, k); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

// Keys returns the own keys in enumeration order.
func (m *Mapping[V]) Keys() []string {
	if m == nil {
		return []string{}
	}
	return slices.Clone(m.keys)
}

// Values returns the own values in enumeration order.
func (m *Mapping[V]) Values() []V {
	out := make([]V, 0, m.Len())
	for _, v := range m.All() {
		out = append(out, v)
	}
	return out
}

// At returns the own member addressed by pos. An index position addresses
// the key spelled by its decimal form.
func (m *Mapping[V]) At(pos Position) (V, bool) {
	return m.Get(pos.String())
}

// Property implements the lookup used by [Pluck] and [Invoke]: own members
// first, then inherited ones.
func (m *Mapping[V]) Property(name string) (any, bool) {
	v, ok := m.Lookup(name)
	if !ok {
		return nil, false
	}
	return v, true
}

// All enumerates own members in insertion order.
//
// The key list is captured when the enumeration starts: keys added by a
// consumer are not visited, keys it deletes are skipped.
func (m *Mapping[V]) All() iter.Seq2[Position, V] {
	return func(yield func(Position, V) bool) {
		if m == nil {
			return
		}
		for _, k := range slices.Clone(m.keys) {
			v, ok := m.values[k]
			if !ok {
				continue
			}
			if !yield(Key(k), v) {
				return
			}
		}
	}
}

// MarshalJSON encodes own members as a JSON object, keys in enumeration order.
func (m *Mapping[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for pos, v := range m.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		k, err := json.Marshal(pos.String())
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("collections: marshal %q: %w", pos.String(), err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String returns a JSON representation of the mapping.
// It implements [fmt.Stringer].
func (m *Mapping[V]) String() string {
	b, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", m.values)
	}
	return string(b)
}
