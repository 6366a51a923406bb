package Go_Collections

import (
	"reflect"

	"github.com/pkg/errors"
)

// Cloner is implemented by element types that can produce an independent copy of themselves.
type Cloner[T any] interface {
	Clone() T
}

// CloneFunc returns the function CloneContents uses to copy elements of type T:
//   - T implements Cloner[T]: Clone is called.
//   - T holds no references (bools, numbers, strings, and arrays/structs made only of those): the value is copied.
//   - T is an interface type: the check is done per element against its dynamic type.
//
// Any other T fails with ErrNotCloneable before a single element is touched.
func CloneFunc[T any]() (func(T) (T, error), error) {
	t := reflect.TypeFor[T]()
	if t.Implements(reflect.TypeFor[Cloner[T]]()) {
		return func(v T) (T, error) {
			return any(v).(Cloner[T]).Clone(), nil
		}, nil
	}
	if plain(t) {
		return func(v T) (T, error) {
			return v, nil
		}, nil
	}
	if t.Kind() == reflect.Interface {
		return func(v T) (T, error) {
			if c, ok := any(v).(Cloner[T]); ok {
				return c.Clone(), nil
			}
			if any(v) == nil || plain(reflect.TypeOf(any(v))) {
				return v, nil
			}
			return v, errors.Wrapf(ErrNotCloneable, "element of type %T", v)
		}, nil
	}
	return nil, errors.Wrapf(ErrNotCloneable, "type %v", t)
}

// plain reports whether values of t can be copied without sharing memory.
func plain(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128, reflect.String:
		return true
	case reflect.Array:
		return plain(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !plain(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}
