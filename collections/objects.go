package collections

// Extend copies every own member of src into dst and returns dst. Keys
// already present in dst are overwritten; sequence positions become the
// decimal form of their index. A nil dst is replaced by a new Mapping.
func Extend[V any](dst *Mapping[V], src Container[V]) *Mapping[V] {
	if dst == nil {
		dst = NewMapping[V]()
	}
	Each(src, func(v V, pos Position, _ Container[V], _ any) {
		dst.Set(pos.String(), v)
	})
	return dst
}

// Defaults copies the own members of src whose key is not yet in dst, own or
// inherited, and returns dst.
func Defaults[V any](dst *Mapping[V], src Container[V]) *Mapping[V] {
	if dst == nil {
		dst = NewMapping[V]()
	}
	Each(src, func(v V, pos Position, _ Container[V], _ any) {
		if k := pos.String(); !dst.In(k) {
			dst.Set(k, v)
		}
	})
	return dst
}
