package Ordered

import (
	"cmp"
	"iter"
	"slices"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Comparers"
	"github.com/g-m-twostay/go-collections/Trees"
	"github.com/pkg/errors"
)

// Bag is a sorted collection that keeps every copy of equivalent elements. Copies sit next to
// each other in the order they were added.
type Bag[T any] struct {
	core[T]
}

func newBag[T any](c *Comparers.Comparer[T]) *Bag[T] {
	return &Bag[T]{newCore(c, Trees.Duplicate)}
}

// NewBag ordered by the natural order of T.
func NewBag[T cmp.Ordered]() *Bag[T] {
	return newBag(Comparers.Natural[T]())
}

// NewBagWith ordered by c.
func NewBagWith[T any](c *Comparers.Comparer[T]) (*Bag[T], error) {
	if err := checkComparer(c); err != nil {
		return nil, err
	}
	return newBag(c), nil
}

// NewBagFunc ordered by a new Comparer wrapping f.
func NewBagFunc[T any](f func(a, b T) int) (*Bag[T], error) {
	c, err := Comparers.FromFunc(f)
	if err != nil {
		return nil, err
	}
	return newBag(c), nil
}

// NewBagDefault ordered by Comparers.Default, failing with ErrUnorderableType when T has no
// natural order.
func NewBagDefault[T any]() (*Bag[T], error) {
	c, err := Comparers.Default[T]()
	if err != nil {
		return nil, err
	}
	return newBag(c), nil
}

// BagFrom builds a Bag ordered by c holding the elements of seq.
func BagFrom[T any](c *Comparers.Comparer[T], seq iter.Seq[T]) (*Bag[T], error) {
	if err := checkComparer(c); err != nil {
		return nil, err
	}
	s, err := collect(seq)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(s, c.Func())
	u := newBag(c)
	u.load(s)
	return u, nil
}

func (u *Bag[T]) base() *core[T] {
	if u == nil {
		return nil
	}
	return &u.core
}

// Add a copy of v after the copies already there.
func (u *Bag[T]) Add(v T) {
	u.t.Insert(v, Trees.Duplicate)
}

// AddMany adds every element of seq.
func (u *Bag[T]) AddMany(seq iter.Seq[T]) error {
	s, err := collect(seq)
	if err != nil {
		return err
	}
	for _, v := range s {
		u.t.Insert(v, Trees.Duplicate)
	}
	return nil
}

// Remove the last copy of v. Returns false if there's none.
func (u *Bag[T]) Remove(v T) bool {
	return u.t.Remove(v)
}

// RemoveMany removes one copy for every element of seq and returns how many were removed.
func (u *Bag[T]) RemoveMany(seq iter.Seq[T]) (int, error) {
	s, err := collect(seq)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, v := range s {
		if u.t.Remove(v) {
			n++
		}
	}
	return n, nil
}

// RemoveAllCopies of v and returns how many there were.
func (u *Bag[T]) RemoveAllCopies(v T) int {
	return u.t.RemoveAllCopies(v)
}

// NumberOfCopies of v.
func (u *Bag[T]) NumberOfCopies(v T) int {
	return u.t.NumberOfCopies(v)
}

// DistinctItems yields the first copy of every element. It panics with ErrCollectionModified
// if u is modified before it's exhausted.
func (u *Bag[T]) DistinctItems() iter.Seq[T] {
	return func(yield func(T) bool) {
		version := u.t.Version()
		for i := 0; i < u.t.Len(); {
			v := *u.t.At(i)
			if !yield(v) {
				return
			}
			if u.t.Version() != version {
				panic(errors.Wrapf(Go_Collections.ErrCollectionModified, "version %d, iteration started at %d", u.t.Version(), version))
			}
			i = u.t.CountLessOrEqual(v)
		}
	}
}

// DistinctLen is the number of distinct elements.
func (u *Bag[T]) DistinctLen() int {
	n := 0
	for range u.DistinctItems() {
		n++
	}
	return n
}

func (u *Bag[T]) with(o *Bag[T], rule func(ra, rb []T) []T) error {
	s, err := u.combine(o.base(), rule)
	if err != nil {
		return err
	}
	u.load(s)
	return nil
}

func (u *Bag[T]) of(o *Bag[T], rule func(ra, rb []T) []T) (*Bag[T], error) {
	s, err := u.combine(o.base(), rule)
	if err != nil {
		return nil, err
	}
	r := newBag(u.c)
	r.load(s)
	return r, nil
}

// UnionWith raises the number of copies of every element of u to the one in o, if that's
// larger. The extra copies are the last ones of o. Fails with ErrInconsistentComparer,
// leaving u untouched, if o isn't ordered by the same comparer.
func (u *Bag[T]) UnionWith(o *Bag[T]) error {
	return u.with(o, union[T])
}

// Union of u and o, holding the larger number of copies of every element.
func (u *Bag[T]) Union(o *Bag[T]) (*Bag[T], error) {
	return u.of(o, union[T])
}

// SumWith adds every copy in o to u.
func (u *Bag[T]) SumWith(o *Bag[T]) error {
	return u.with(o, sum[T])
}

// Sum of u and o, where the number of copies of every element is the sum of both.
func (u *Bag[T]) Sum(o *Bag[T]) (*Bag[T], error) {
	return u.of(o, sum[T])
}

// IntersectionWith lowers the number of copies of every element of u to the one in o.
func (u *Bag[T]) IntersectionWith(o *Bag[T]) error {
	return u.with(o, intersection[T])
}

// Intersection of u and o, holding the smaller number of copies of every element.
func (u *Bag[T]) Intersection(o *Bag[T]) (*Bag[T], error) {
	return u.of(o, intersection[T])
}

// DifferenceWith removes from u as many copies of every element as there are in o.
func (u *Bag[T]) DifferenceWith(o *Bag[T]) error {
	return u.with(o, difference[T])
}

// Difference u-o, never holding fewer than 0 copies.
func (u *Bag[T]) Difference(o *Bag[T]) (*Bag[T], error) {
	return u.of(o, difference[T])
}

// SymmetricDifferenceWith keeps as many copies of every element as the difference between
// the numbers in u and o.
func (u *Bag[T]) SymmetricDifferenceWith(o *Bag[T]) error {
	return u.with(o, symmetricDifference[T])
}

// SymmetricDifference of u and o.
func (u *Bag[T]) SymmetricDifference(o *Bag[T]) (*Bag[T], error) {
	return u.of(o, symmetricDifference[T])
}

// IsSubsetOf reports whether o has at least as many copies of every element as u.
func (u *Bag[T]) IsSubsetOf(o *Bag[T]) (bool, error) {
	return u.isSubsetOf(o.base())
}

// IsProperSubsetOf reports whether u is a subset of o and o has more elements.
func (u *Bag[T]) IsProperSubsetOf(o *Bag[T]) (bool, error) {
	return u.isProperSubsetOf(o.base())
}

// IsSupersetOf reports whether o is a subset of u.
func (u *Bag[T]) IsSupersetOf(o *Bag[T]) (bool, error) {
	if o == nil {
		return false, errors.Wrap(Go_Collections.ErrNilArgument, "nil operand")
	}
	return o.isSubsetOf(u.base())
}

// IsProperSupersetOf reports whether o is a proper subset of u.
func (u *Bag[T]) IsProperSupersetOf(o *Bag[T]) (bool, error) {
	if o == nil {
		return false, errors.Wrap(Go_Collections.ErrNilArgument, "nil operand")
	}
	return o.isProperSubsetOf(u.base())
}

// IsDisjointFrom reports whether u and o have no element in common.
func (u *Bag[T]) IsDisjointFrom(o *Bag[T]) (bool, error) {
	return u.isDisjointFrom(o.base())
}

// IsEqualTo reports whether u and o have the same number of copies of every element.
func (u *Bag[T]) IsEqualTo(o *Bag[T]) (bool, error) {
	return u.isEqualTo(o.base())
}

// Clone u. The elements themselves are copied by assignment.
func (u *Bag[T]) Clone() *Bag[T] {
	return &Bag[T]{core[T]{u.t.Clone(), u.c, u.policy}}
}

// CloneContents clones u and every element in it, see Go_Collections.CloneFunc. Fails with
// ErrNotCloneable before anything is built if an element can't be cloned.
func (u *Bag[T]) CloneContents() (*Bag[T], error) {
	s, err := cloneContents(&u.core)
	if err != nil {
		return nil, err
	}
	r := newBag(u.c)
	r.load(s)
	return r, nil
}

// CloneBagContents is CloneContents for element types known to be Cloners.
func CloneBagContents[T Go_Collections.Cloner[T]](u *Bag[T]) *Bag[T] {
	r := u.Clone()
	r.t.InOrder(func(v *T) bool {
		*v = (*v).Clone()
		return true
	})
	return r
}
