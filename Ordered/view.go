package Ordered

import (
	"iter"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Comparers"
	"github.com/g-m-twostay/go-collections/Sets"
	"github.com/pkg/errors"
)

// View is a live window over the elements of a container that lie within its bounds.
// A View only stores its bounds; every call resolves them against the current content, so
// changes made through the container or through other Views are always visible.
// Indexes are relative to the View and count from its high end when it's reversed.
type View[T any] struct {
	o            *core[T]
	lo, hi       T
	hasLo, hasHi bool
	loInc, hiInc bool
	empty        bool
	reversed     bool
}

func newView[T any](o *core[T], lo *T, loInc bool, hi *T, hiInc bool) *View[T] {
	u := &View[T]{o: o, loInc: loInc, hiInc: hiInc}
	if lo != nil {
		u.lo, u.hasLo = *lo, true
	}
	if hi != nil {
		u.hi, u.hasHi = *hi, true
	}
	if u.hasLo && u.hasHi {
		c := o.c.Compare(u.lo, u.hi)
		u.empty = c > 0 || (c == 0 && !(loInc && hiInc))
	}
	return u
}

// window is [start, end) in the indexes of the container.
func (u *View[T]) window() (start, end int) {
	if u.empty {
		return 0, 0
	}
	t := u.o.t
	start, end = 0, t.Len()
	if u.hasLo {
		if u.loInc {
			start = t.CountLess(u.lo)
		} else {
			start = t.CountLessOrEqual(u.lo)
		}
	}
	if u.hasHi {
		if u.hiInc {
			end = t.CountLessOrEqual(u.hi)
		} else {
			end = t.CountLess(u.hi)
		}
	}
	return start, max(start, end)
}

// InBounds reports whether v lies within the bounds of u.
func (u *View[T]) InBounds(v T) bool {
	if u.empty {
		return false
	}
	if u.hasLo {
		if c := u.o.c.Compare(v, u.lo); c < 0 || (c == 0 && !u.loInc) {
			return false
		}
	}
	if u.hasHi {
		if c := u.o.c.Compare(v, u.hi); c > 0 || (c == 0 && !u.hiInc) {
			return false
		}
	}
	return true
}

// global maps index i of u to the index in the container.
func (u *View[T]) global(i, start, end int) int {
	if u.reversed {
		return end - 1 - i
	}
	return start + i
}

// Len is the number of elements within the bounds.
func (u *View[T]) Len() int {
	start, end := u.window()
	return end - start
}

// Comparer of the underlying container.
func (u *View[T]) Comparer() *Comparers.Comparer[T] {
	return u.o.c
}

// At returns the element at index i of u.
func (u *View[T]) At(i int) (T, error) {
	start, end := u.window()
	if err := Go_Collections.CheckIndex(i, end-start); err != nil {
		return *new(T), err
	}
	return *u.o.t.At(u.global(i, start, end)), nil
}

// IndexOf the first element of u equivalent to v, -1 if there's none.
func (u *View[T]) IndexOf(v T) int {
	if !u.InBounds(v) {
		return -1
	}
	start, end := u.window()
	if u.reversed {
		if g := u.o.t.LastIndexOf(v); g >= 0 {
			return end - 1 - g
		}
	} else if g := u.o.t.IndexOf(v); g >= 0 {
		return g - start
	}
	return -1
}

// LastIndexOf the last element of u equivalent to v, -1 if there's none.
func (u *View[T]) LastIndexOf(v T) int {
	if !u.InBounds(v) {
		return -1
	}
	start, end := u.window()
	if u.reversed {
		if g := u.o.t.IndexOf(v); g >= 0 {
			return end - 1 - g
		}
	} else if g := u.o.t.LastIndexOf(v); g >= 0 {
		return g - start
	}
	return -1
}

// Contains an element equivalent to v within the bounds.
func (u *View[T]) Contains(v T) bool {
	return u.InBounds(v) && u.o.t.Has(v)
}

// First element of u, which is the largest one when u is reversed.
func (u *View[T]) First() (T, error) {
	start, end := u.window()
	if start == end {
		return *new(T), errors.Wrap(Go_Collections.ErrEmpty, "First")
	}
	return *u.o.t.At(u.global(0, start, end)), nil
}

// Last element of u.
func (u *View[T]) Last() (T, error) {
	start, end := u.window()
	if start == end {
		return *new(T), errors.Wrap(Go_Collections.ErrEmpty, "Last")
	}
	return *u.o.t.At(u.global(end-start-1, start, end)), nil
}

// Add v to the underlying container the way the container adds it. Returns whether an
// equivalent element was already there, which is always false for a Bag.
// v must be within the bounds, otherwise ErrOutOfBounds is returned.
func (u *View[T]) Add(v T) (bool, error) {
	if !u.InBounds(v) {
		return false, errors.Wrapf(Go_Collections.ErrOutOfBounds, "element %v", v)
	}
	inserted, replaced := u.o.t.Insert(v, u.o.policy)
	return replaced || !inserted, nil
}

// Remove the last copy of v. Elements out of the bounds are never removed.
func (u *View[T]) Remove(v T) bool {
	return u.InBounds(v) && u.o.t.Remove(v)
}

// RemoveAt removes and returns the element at index i of u.
func (u *View[T]) RemoveAt(i int) (T, error) {
	start, end := u.window()
	if err := Go_Collections.CheckIndex(i, end-start); err != nil {
		return *new(T), err
	}
	v, _ := u.o.t.RemoveAt(u.global(i, start, end))
	return v, nil
}

// Clear removes exactly the elements within the bounds and returns how many there were.
func (u *View[T]) Clear() int {
	start, end := u.window()
	u.o.t.RemoveRange(start, end-start)
	return end - start
}

func (u *View[T]) cursor() Iterator[T] {
	start, end := u.window()
	if u.reversed {
		return Iterator[T]{u.o.t.Iter(end-1, end-start, true)}
	}
	return Iterator[T]{u.o.t.Iter(start, end-start, false)}
}

// Iterator over u in its order. The bounds are resolved once, when it's created.
func (u *View[T]) Iterator() Iterator[T] {
	return u.cursor()
}

// All elements of u in its order. The sequence panics with ErrCollectionModified if the
// container is modified before it's exhausted.
func (u *View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		each(u.cursor().Iter, yield)
	}
}

// ToSlice copies the elements of u in its order.
func (u *View[T]) ToSlice() []T {
	s := make([]T, 0, u.Len())
	for v := range u.All() {
		s = append(s, v)
	}
	return s
}

// Reversed is u in the opposite order, with the same bounds.
func (u *View[T]) Reversed() *View[T] {
	r := *u
	r.reversed = !u.reversed
	return &r
}

func (u *View[T]) String() string {
	return Sets.ToString(u.All())
}
