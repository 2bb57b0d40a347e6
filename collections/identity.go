package collections

import "reflect"

// Identical reports whether a and b are the same value without any type
// coercion: both must have the same dynamic type. Comparable values are
// compared with ==; slices, maps and functions compare by reference (same
// backing storage or code pointer, and for slices the same length). Other
// non-comparable values are never identical.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	}
	if !va.Comparable() {
		return false
	}
	return va.Equal(vb)
}
