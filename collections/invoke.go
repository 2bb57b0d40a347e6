package collections

import (
	"fmt"
	"reflect"
)

// Invoke calls method on every member of c and collects the results.
//
// method is either
//
//   - a func(V, []any) any, called as fn(member, args) for every member, or
//   - a string naming a method of the member. Struct methods (value or
//     pointer receiver) and function-valued members of mappings, string-keyed
//     maps and struct fields qualify; names are resolved like [Property]
//     names. args are spread as positional parameters.
//
// A method whose last result is a non-nil error stops the collection and the
// error is returned. Missing methods yield [ErrMethodNotFound]; any other
// method value yields [ErrNotInvocable].
//
//	names, err := collections.Invoke(users, "FullName")
//	scaled, err := collections.Invoke(points, "Scale", 2.0)
func Invoke[V any](c Container[V], method any, args ...any) (*Sequence[any], error) {
	switch m := method.(type) {
	case func(V, []any) any:
		return InvokeFunc(c, m, args...), nil
	case string:
		return invokeEach(c, func(v V) (any, error) {
			fn, ok := methodOf(v, m)
			if !ok {
				return nil, fmt.Errorf("%w: %q on %T", ErrMethodNotFound, m, v)
			}
			return call(fn, args)
		})
	}
	fn := reflect.ValueOf(method)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotInvocable, method)
	}
	return invokeEach(c, func(v V) (any, error) {
		return call(fn, []any{v, args})
	})
}

// InvokeFunc calls fn(member, args) for every member of c.
func InvokeFunc[V, U any](c Container[V], fn func(V, []any) U, args ...any) *Sequence[U] {
	return Map(c, func(v V, _ Position, _ Container[V], _ any) U { return fn(v, args) })
}

func invokeEach[V any](c Container[V], invoke func(V) (any, error)) (*Sequence[any], error) {
	var err error
	out := Map(c, func(v V, pos Position, _ Container[V], _ any) any {
		if err != nil {
			return nil
		}
		res, callErr := invoke(v)
		if callErr != nil {
			err = fmt.Errorf("collections: invoke at %s: %w", pos, callErr)
		}
		return res
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// methodOf resolves name to a callable bound to target.
func methodOf(target any, name string) (reflect.Value, bool) {
	if target == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(target)
	for _, n := range []string{name, goName(name)} {
		if m := rv.MethodByName(n); m.IsValid() {
			return m, true
		}
		if rv.Kind() != reflect.Pointer {
			ptr := reflect.New(rv.Type())
			ptr.Elem().Set(rv)
			if m := ptr.MethodByName(n); m.IsValid() {
				return m, true
			}
		}
	}
	if p, ok := Property(target, name); ok && p != nil {
		if fv := reflect.ValueOf(p); fv.Kind() == reflect.Func && !fv.IsNil() {
			return fv, true
		}
	}
	return reflect.Value{}, false
}

var errorType = reflect.TypeFor[error]()

// call invokes fn with args. Missing trailing arguments are zero values and
// surplus ones are dropped, unless fn is variadic, in which case they are
// collected into the variadic parameter.
func call(fn reflect.Value, args []any) (any, error) {
	t := fn.Type()
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}
	in := make([]reflect.Value, 0, max(fixed, len(args)))
	for i := 0; i < fixed; i++ {
		var arg any
		if i < len(args) {
			arg = args[i]
		}
		v, err := argument(arg, t.In(i))
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		in = append(in, v)
	}
	if t.IsVariadic() {
		elem := t.In(fixed).Elem()
		for i := fixed; i < len(args); i++ {
			v, err := argument(args[i], elem)
			if err != nil {
				return nil, fmt.Errorf("parameter %d: %w", i, err)
			}
			in = append(in, v)
		}
	}
	return results(fn.Call(in))
}

func argument(arg any, t reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(t), nil
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to %s", ErrArgumentType, v.Type(), t)
	}
	return v, nil
}

func results(out []reflect.Value) (any, error) {
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		last := out[n-1]
		out = out[:n-1]
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}
