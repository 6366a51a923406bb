package Comparers

import (
	"fmt"
	"reflect"

	"github.com/alphadose/haxmap"
)

// registry caches the comparers that must be unique per type or per base comparer.
// Containers are single threaded but the registry is process wide, so it is a concurrent map.
var registry = haxmap.New[string, any]()

func cached[T any](key string, create func() *Comparer[T]) *Comparer[T] {
	v, _ := registry.GetOrCompute(key, func() any {
		return create()
	})
	return v.(*Comparer[T])
}

// naturalKey identifies T by its runtime type descriptor, which is unique per type.
func naturalKey[T any]() string {
	return fmt.Sprintf("natural/%p", reflect.TypeFor[T]())
}

func derivedKey(kind string, id uint64) string {
	return fmt.Sprintf("%s/%d", kind, id)
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
