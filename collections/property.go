package collections

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/viant/tagly/format/text"
)

// ─────────────────────────────────────────────────────────────────────────────
// Property lookup
//
// Property resolves a named member on an arbitrary element:
//
//   - *Mapping[V]: own member, then inherited ones
//   - map[string]T (any string-keyed map)
//   - struct or pointer to struct: exported field whose json tag, name, or
//     upper-camel form of the requested name matches ("color" → Color,
//     "first_name" → FirstName)
//   - slice or array: a decimal index
//
// Names containing dots walk nested values when no member carries the full
// name:
//
//	Property(order, "customer.address.city")
// ─────────────────────────────────────────────────────────────────────────────

// Missing is the value [Pluck] reports for elements lacking the property.
var Missing = Absent{}

// Absent is the type of [Missing].
type Absent struct{}

// String returns "<missing>".
func (Absent) String() string { return "<missing>" }

// MarshalJSON encodes Missing as null.
func (Absent) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

type propertyHolder interface {
	Property(name string) (any, bool)
}

// Property returns the member of value called name.
func Property(value any, name string) (any, bool) {
	if v, ok := property(value, name); ok {
		return v, true
	}
	if !strings.Contains(name, ".") {
		return nil, false
	}
	current := value
	for _, seg := range strings.Split(name, ".") {
		next, ok := property(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func property(value any, name string) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case propertyHolder:
		return v.Property(name)
	case map[string]any:
		val, ok := v[name]
		return val, ok
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		f, ok := structField(rv.Type(), name)
		if !ok {
			return nil, false
		}
		fv, err := rv.FieldByIndexErr(f.Index)
		if err != nil {
			return nil, false
		}
		return fv.Interface(), true
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	}
	return nil, false
}

// structField finds the exported field answering to name. A json tag match
// wins over a name match, which wins over a case-converted name match.
func structField(t reflect.Type, name string) (reflect.StructField, bool) {
	fields := reflect.VisibleFields(t)
	exported := make([]reflect.StructField, 0, len(fields))
	for _, f := range fields {
		if f.IsExported() {
			exported = append(exported, f)
		}
	}
	for _, f := range exported {
		if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag != "" && tag == name {
			return f, true
		}
	}
	for _, f := range exported {
		if f.Name == name {
			return f, true
		}
	}
	converted := goName(name)
	for _, f := range exported {
		if f.Name == converted {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

// goName converts a property name to the exported Go identifier it most
// likely corresponds to.
func goName(name string) string {
	if name == "id" {
		return "ID"
	}
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatLowerCamel
	}
	return src.Format(name, text.CaseFormatUpperCamel)
}
