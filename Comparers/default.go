package Comparers

import (
	"cmp"
	"reflect"
	"unsafe"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/pkg/errors"
)

// Comparable is implemented by types that define their own natural order.
type Comparable[T any] interface {
	CompareTo(other T) int
}

// Default returns the natural order of T decided at run time. CompareTo wins when T
// implements Comparable[T], otherwise T must have an ordered underlying kind (integers,
// floats, strings). Any other T fails with ErrUnorderableType; there is no fallback to
// identity comparison.
// For a cmp.Ordered T without CompareTo the result is the same comparer as Natural[T]().
func Default[T any]() (*Comparer[T], error) {
	t := reflect.TypeFor[T]()
	if t.Implements(reflect.TypeFor[Comparable[T]]()) {
		return cached("comparable/"+naturalKey[T](), func() *Comparer[T] {
			return newComparer(func(a, b T) int {
				return any(a).(Comparable[T]).CompareTo(b)
			}, "compareTo("+t.String()+")")
		}), nil
	}
	f := kindCompare[T](t.Kind())
	if f == nil {
		return nil, errors.Wrapf(Go_Collections.ErrUnorderableType, "type %v", t)
	}
	return cached(naturalKey[T](), func() *Comparer[T] {
		return newComparer(f, "natural("+t.String()+")")
	}), nil
}

// as compares two T by reinterpreting them as their underlying ordered type U.
func as[T any, U cmp.Ordered](a, b T) int {
	return cmp.Compare(*(*U)(unsafe.Pointer(&a)), *(*U)(unsafe.Pointer(&b)))
}

func kindCompare[T any](k reflect.Kind) func(a, b T) int {
	switch k {
	case reflect.Int:
		return as[T, int]
	case reflect.Int8:
		return as[T, int8]
	case reflect.Int16:
		return as[T, int16]
	case reflect.Int32:
		return as[T, int32]
	case reflect.Int64:
		return as[T, int64]
	case reflect.Uint:
		return as[T, uint]
	case reflect.Uint8:
		return as[T, uint8]
	case reflect.Uint16:
		return as[T, uint16]
	case reflect.Uint32:
		return as[T, uint32]
	case reflect.Uint64:
		return as[T, uint64]
	case reflect.Uintptr:
		return as[T, uintptr]
	case reflect.Float32:
		return as[T, float32]
	case reflect.Float64:
		return as[T, float64]
	case reflect.String:
		return as[T, string]
	}
	return nil
}
