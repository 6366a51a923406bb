package Ordered

import (
	"github.com/g-m-twostay/go-collections/Trees"
)

// Iterator steps through a container or a View:
//
//	for it := s.Iterator(); it.Next(); {
//		use(it.Value())
//	}
//	if it.Err() != nil { ... }
//
// Next returns false and Err returns ErrCollectionModified once the container changes.
type Iterator[T any] struct {
	*Trees.Iter[T, uint]
}

// each feeds yield from it and panics with the iterator's error when the container changed.
func each[T any](it *Trees.Iter[T, uint], yield func(T) bool) {
	for it.Next() {
		if !yield(it.Value()) {
			return
		}
	}
	if err := it.Err(); err != nil {
		panic(err)
	}
}
