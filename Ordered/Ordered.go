// Package Ordered implements Set, Bag and Dictionary over a size balanced tree.
//
// Elements are kept sorted by a Comparers.Comparer, so every container is also a list:
// elements can be read and removed by index in O(log n). Range, RangeFrom, RangeTo and
// Reversed return live Views, and All, Backward and Iterator fail fast once the container
// has been modified.
//
// The containers aren't safe for concurrent use.
package Ordered

import (
	"iter"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Comparers"
	"github.com/g-m-twostay/go-collections/Sets"
	"github.com/g-m-twostay/go-collections/Trees"
	"github.com/pkg/errors"
)

// core is what Set, Bag and Dictionary share: the tree, the comparer that orders it and
// what happens when an equivalent element is added.
type core[T any] struct {
	t      *Trees.Tree[T, uint]
	c      *Comparers.Comparer[T]
	policy Trees.Policy
}

func newCore[T any](c *Comparers.Comparer[T], p Trees.Policy) core[T] {
	return core[T]{Trees.New[T, uint](c.Func()), c, p}
}

func checkComparer[T any](c *Comparers.Comparer[T]) error {
	if c == nil {
		return errors.Wrap(Go_Collections.ErrNilArgument, "nil comparer")
	}
	return nil
}

// Len is the number of elements, counting every copy.
func (u *core[T]) Len() int {
	return u.t.Len()
}

// Comparer that orders the container.
func (u *core[T]) Comparer() *Comparers.Comparer[T] {
	return u.c
}

// Contains an element equivalent to v.
func (u *core[T]) Contains(v T) bool {
	return u.t.Has(v)
}

// Find the first element equivalent to v.
func (u *core[T]) Find(v T) (T, bool) {
	if p := u.t.Find(v); p != nil {
		return *p, true
	}
	return *new(T), false
}

// At returns the element at index i.
func (u *core[T]) At(i int) (T, error) {
	if err := Go_Collections.CheckIndex(i, u.t.Len()); err != nil {
		return *new(T), err
	}
	return *u.t.At(i), nil
}

// IndexOf the first element equivalent to v, -1 if there's none.
func (u *core[T]) IndexOf(v T) int {
	return u.t.IndexOf(v)
}

// LastIndexOf the last element equivalent to v, -1 if there's none.
func (u *core[T]) LastIndexOf(v T) int {
	return u.t.LastIndexOf(v)
}

// First is the smallest element.
func (u *core[T]) First() (T, error) {
	if u.t.Len() == 0 {
		return *new(T), errors.Wrap(Go_Collections.ErrEmpty, "First")
	}
	return *u.t.At(0), nil
}

// Last is the largest element.
func (u *core[T]) Last() (T, error) {
	if u.t.Len() == 0 {
		return *new(T), errors.Wrap(Go_Collections.ErrEmpty, "Last")
	}
	return *u.t.At(u.t.Len() - 1), nil
}

// RemoveFirst removes and returns the smallest element.
func (u *core[T]) RemoveFirst() (T, error) {
	if u.t.Len() == 0 {
		return *new(T), errors.Wrap(Go_Collections.ErrEmpty, "RemoveFirst")
	}
	v, _ := u.t.RemoveAt(0)
	return v, nil
}

// RemoveLast removes and returns the largest element.
func (u *core[T]) RemoveLast() (T, error) {
	if u.t.Len() == 0 {
		return *new(T), errors.Wrap(Go_Collections.ErrEmpty, "RemoveLast")
	}
	v, _ := u.t.RemoveAt(u.t.Len() - 1)
	return v, nil
}

// RemoveAt removes and returns the element at index i.
func (u *core[T]) RemoveAt(i int) (T, error) {
	if err := Go_Collections.CheckIndex(i, u.t.Len()); err != nil {
		return *new(T), err
	}
	v, _ := u.t.RemoveAt(i)
	return v, nil
}

// RemoveRange removes count elements starting at index start.
func (u *core[T]) RemoveRange(start, count int) error {
	if err := Go_Collections.CheckRange(start, count, u.t.Len()); err != nil {
		return err
	}
	u.t.RemoveRange(start, count)
	return nil
}

// Predecessor is the largest element less than v, or less than or equivalent to v when
// strict is false.
func (u *core[T]) Predecessor(v T, strict bool) (T, bool) {
	if p := u.t.Predecessor(v, strict); p != nil {
		return *p, true
	}
	return *new(T), false
}

// Successor is the smallest element greater than v, or greater than or equivalent to v when
// strict is false.
func (u *core[T]) Successor(v T, strict bool) (T, bool) {
	if p := u.t.Successor(v, strict); p != nil {
		return *p, true
	}
	return *new(T), false
}

// Clear removes every element.
func (u *core[T]) Clear() {
	u.t.Clear()
}

// Iterator over the elements in ascending order.
func (u *core[T]) Iterator() Iterator[T] {
	return Iterator[T]{u.t.Iter(0, u.t.Len(), false)}
}

// All elements in ascending order. The sequence panics with ErrCollectionModified if the
// container is modified before it's exhausted.
func (u *core[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		each(u.t.Iter(0, u.t.Len(), false), yield)
	}
}

// Backward is All in descending order.
func (u *core[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		each(u.t.Iter(u.t.Len()-1, u.t.Len(), true), yield)
	}
}

// ToSlice copies the elements in ascending order.
func (u *core[T]) ToSlice() []T {
	return u.t.Slice()
}

// Range is the View of the elements between lo and hi. loInc and hiInc tell whether the
// bounds themselves are included.
func (u *core[T]) Range(lo T, loInc bool, hi T, hiInc bool) *View[T] {
	return newView(u, &lo, loInc, &hi, hiInc)
}

// RangeFrom is the View of the elements greater than lo, or equivalent to it if inc.
func (u *core[T]) RangeFrom(lo T, inc bool) *View[T] {
	return newView(u, &lo, inc, nil, false)
}

// RangeTo is the View of the elements less than hi, or equivalent to it if inc.
func (u *core[T]) RangeTo(hi T, inc bool) *View[T] {
	return newView(u, nil, false, &hi, inc)
}

// Reversed is the View of every element in descending order.
func (u *core[T]) Reversed() *View[T] {
	v := newView(u, nil, false, nil, false)
	v.reversed = true
	return v
}

func (u *core[T]) String() string {
	return Sets.ToString(u.All())
}

// load replaces the content with the sorted s.
func (u *core[T]) load(s []T) {
	u.t.Load(s, false)
}

// cloneContents copies the sorted content with CloneFunc, failing before anything is built.
func cloneContents[T any](u *core[T]) ([]T, error) {
	f, err := Go_Collections.CloneFunc[T]()
	if err != nil {
		return nil, err
	}
	s := u.t.Slice()
	for i := range s {
		if s[i], err = f(s[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}
