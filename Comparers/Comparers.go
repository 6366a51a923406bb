// Package Comparers provides the orderings and equalities that the containers are built on.
//
// A Comparer carries an identity token. Containers combined by set algebra must use
// equivalent comparers, meaning the very same comparer: two comparers built separately from
// identical logic are still inconsistent. Natural, Default and Reverse hand out cached
// comparers so that independently constructed containers of the same type agree.
package Comparers

import (
	"cmp"
	"fmt"
	"sync/atomic"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/pkg/errors"
)

var ids atomic.Uint64

// Comparer is a three-way comparison over T that must impose a strict weak order:
// negative when a<b, zero when a and b are equivalent, positive when a>b.
// The zero value is meaningless, create it using one of the constructors.
type Comparer[T any] struct {
	id   uint64
	cmp  func(a, b T) int
	name string
}

func newComparer[T any](f func(a, b T) int, name string) *Comparer[T] {
	return &Comparer[T]{ids.Add(1), f, name}
}

// FromFunc wraps f in a new Comparer. Every call produces a comparer that is inconsistent
// with every other one, even for the same f.
func FromFunc[T any](f func(a, b T) int) (*Comparer[T], error) {
	if f == nil {
		return nil, errors.Wrapf(Go_Collections.ErrUnorderableType, "nil comparison function for %s", typeName[T]())
	}
	return newComparer(f, "func"), nil
}

// By orders T by the key that key extracts from it, using c on the keys.
func By[T, K any](c *Comparer[K], key func(T) K) *Comparer[T] {
	return newComparer(func(a, b T) int {
		return c.cmp(key(a), key(b))
	}, "by("+c.name+")")
}

// Compare a and b.
func (u *Comparer[T]) Compare(a, b T) int {
	return u.cmp(a, b)
}

// Func returns the comparison function.
func (u *Comparer[T]) Func() func(a, b T) int {
	return u.cmp
}

// Less reports whether a<b.
func (u *Comparer[T]) Less(a, b T) bool {
	return u.cmp(a, b) < 0
}

// Equal reports whether a and b are equivalent under u.
func (u *Comparer[T]) Equal(a, b T) bool {
	return u.cmp(a, b) == 0
}

// ID is the identity token of u.
func (u *Comparer[T]) ID() uint64 {
	return u.id
}

// Equivalent reports whether u and o are the same comparer.
func (u *Comparer[T]) Equivalent(o *Comparer[T]) bool {
	return u == o || (u != nil && o != nil && u.id == o.id)
}

func (u *Comparer[T]) String() string {
	return fmt.Sprintf("%s#%d", u.name, u.id)
}

// Consistent returns nil if a and b are equivalent, otherwise ErrInconsistentComparer.
func Consistent[T any](a, b *Comparer[T]) error {
	if !a.Equivalent(b) {
		return errors.Wrapf(Go_Collections.ErrInconsistentComparer, "%v and %v", a, b)
	}
	return nil
}

// Natural returns the comparer using the natural order of T. The same comparer is returned for
// every call with the same T.
func Natural[T cmp.Ordered]() *Comparer[T] {
	return cached(naturalKey[T](), func() *Comparer[T] {
		return newComparer(cmp.Compare[T], "natural("+typeName[T]()+")")
	})
}

// Reverse returns the comparer ordering in the opposite direction of c. Reverse(Reverse(c)) is c.
func Reverse[T any](c *Comparer[T]) *Comparer[T] {
	return cached(derivedKey("reverse", c.id), func() *Comparer[T] {
		r := newComparer(func(a, b T) int {
			return c.cmp(b, a)
		}, "reverse("+c.name+")")
		registry.Set(derivedKey("reverse", r.id), any(c))
		return r
	})
}

// Pointer orders *T by the pointed-to values using c, nil pointers first.
func Pointer[T any](c *Comparer[T]) *Comparer[*T] {
	return cached(derivedKey("pointer", c.id), func() *Comparer[*T] {
		return newComparer(func(a, b *T) int {
			if a == nil {
				if b == nil {
					return 0
				}
				return -1
			} else if b == nil {
				return 1
			}
			return c.cmp(*a, *b)
		}, "pointer("+c.name+")")
	})
}
