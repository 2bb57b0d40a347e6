// Package codec decodes JSON documents into collection containers.
//
// A top-level JSON object becomes a *collections.Mapping[any] whose keys keep
// their document order, which a Go map cannot provide. A top-level array
// becomes a *collections.Sequence[any].
//
//	c, err := codec.Decode([]byte(`{"b": 1, "a": 2}`))
//	collections.Keys(c) // ["b", "a"]
//
// Objects nested below the top level are decoded as mappings enumerated in
// natural key order; nested arrays are decoded as []any.
package codec

import (
	"bytes"

	"github.com/francoispqt/gojay"
	"github.com/pkg/errors"

	"github.com/hasbyte1/go-underscore/collections"
)

// ErrUnsupportedDocument is returned when the document is neither a JSON
// object nor a JSON array.
var ErrUnsupportedDocument = errors.New("codec: document must be a JSON object or array")

// Decode decodes a JSON object or array.
func Decode(data []byte) (collections.Container[any], error) {
	switch leading(data) {
	case '{':
		m, err := DecodeMapping(data)
		if err != nil {
			return nil, err
		}
		return m, nil
	case '[':
		s, err := DecodeSequence(data)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, ErrUnsupportedDocument
	}
}

// DecodeMapping decodes a JSON object, keeping its key order.
func DecodeMapping(data []byte) (*collections.Mapping[any], error) {
	if leading(data) != '{' {
		return nil, ErrUnsupportedDocument
	}
	obj := &object{m: collections.NewMapping[any]()}
	if err := gojay.UnmarshalJSONObject(data, obj); err != nil {
		return nil, errors.Wrap(err, "codec: decode object")
	}
	return obj.m, nil
}

// DecodeSequence decodes a JSON array.
func DecodeSequence(data []byte) (*collections.Sequence[any], error) {
	if leading(data) != '[' {
		return nil, ErrUnsupportedDocument
	}
	arr := &array{s: collections.NewSequence[any]()}
	if err := gojay.UnmarshalJSONArray(data, arr); err != nil {
		return nil, errors.Wrap(err, "codec: decode array")
	}
	return arr.s, nil
}

func leading(data []byte) byte {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

type object struct {
	m *collections.Mapping[any]
}

// UnmarshalJSONObject is called by gojay once per key, in document order.
func (o *object) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var v any
	if err := dec.Interface(&v); err != nil {
		return errors.Wrapf(err, "key %q", key)
	}
	o.m.Set(key, nested(v))
	return nil
}

// NKeys returns 0: every key is decoded.
func (o *object) NKeys() int { return 0 }

type array struct {
	s *collections.Sequence[any]
}

// UnmarshalJSONArray is called by gojay once per element.
func (a *array) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var v any
	if err := dec.Interface(&v); err != nil {
		return errors.Wrapf(err, "index %d", a.s.Len())
	}
	a.s.Append(nested(v))
	return nil
}

// nested converts the generic values produced for nested documents.
func nested(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := collections.MappingOf(t)
		for pos, val := range m.All() {
			m.Set(pos.String(), nested(val))
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = nested(val)
		}
		return t
	default:
		return v
	}
}
