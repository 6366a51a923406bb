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

// Set is a sorted collection of distinct elements. Adding an element equivalent to one
// already in the Set replaces it.
type Set[T any] struct {
	core[T]
}

func newSet[T any](c *Comparers.Comparer[T]) *Set[T] {
	return &Set[T]{newCore(c, Trees.Replace)}
}

// NewSet ordered by the natural order of T.
func NewSet[T cmp.Ordered]() *Set[T] {
	return newSet(Comparers.Natural[T]())
}

// NewSetWith ordered by c.
func NewSetWith[T any](c *Comparers.Comparer[T]) (*Set[T], error) {
	if err := checkComparer(c); err != nil {
		return nil, err
	}
	return newSet(c), nil
}

// NewSetFunc ordered by a new Comparer wrapping f.
func NewSetFunc[T any](f func(a, b T) int) (*Set[T], error) {
	c, err := Comparers.FromFunc(f)
	if err != nil {
		return nil, err
	}
	return newSet(c), nil
}

// NewSetDefault ordered by Comparers.Default, failing with ErrUnorderableType when T has no
// natural order.
func NewSetDefault[T any]() (*Set[T], error) {
	c, err := Comparers.Default[T]()
	if err != nil {
		return nil, err
	}
	return newSet(c), nil
}

// SetFrom builds a Set ordered by c holding the elements of seq. Of equivalent elements the
// last one wins, as if they were added one by one.
func SetFrom[T any](c *Comparers.Comparer[T], seq iter.Seq[T]) (*Set[T], error) {
	if err := checkComparer(c); err != nil {
		return nil, err
	}
	s, err := collect(seq)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(s, c.Func())
	u := newSet(c)
	u.load(distinct(c.Func(), s))
	return u, nil
}

// distinct keeps the last element of every run of equivalent elements of the sorted s.
func distinct[T any](cmp func(a, b T) int, s []T) []T {
	r := s[:0]
	for _, v := range s {
		if n := len(r); n > 0 && cmp(r[n-1], v) == 0 {
			r[n-1] = v
		} else {
			r = append(r, v)
		}
	}
	return r
}

func (u *Set[T]) base() *core[T] {
	if u == nil {
		return nil
	}
	return &u.core
}

// Add v, replacing an equivalent element. Returns whether there was one.
func (u *Set[T]) Add(v T) bool {
	_, replaced := u.t.Insert(v, Trees.Replace)
	return replaced
}

// AddMany adds every element of seq.
func (u *Set[T]) AddMany(seq iter.Seq[T]) error {
	s, err := collect(seq)
	if err != nil {
		return err
	}
	for _, v := range s {
		u.t.Insert(v, Trees.Replace)
	}
	return nil
}

// Remove the element equivalent to v. Returns false if there's none.
func (u *Set[T]) Remove(v T) bool {
	return u.t.Remove(v)
}

// RemoveMany removes every element of seq and returns how many were in u.
func (u *Set[T]) RemoveMany(seq iter.Seq[T]) (int, error) {
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

func (u *Set[T]) with(o *Set[T], rule func(ra, rb []T) []T) error {
	s, err := u.combine(o.base(), rule)
	if err != nil {
		return err
	}
	u.load(s)
	return nil
}

func (u *Set[T]) of(o *Set[T], rule func(ra, rb []T) []T) (*Set[T], error) {
	s, err := u.combine(o.base(), rule)
	if err != nil {
		return nil, err
	}
	r := newSet(u.c)
	r.load(s)
	return r, nil
}

// UnionWith adds the elements of o that aren't in u. Fails with ErrInconsistentComparer,
// leaving u untouched, if o isn't ordered by the same comparer.
func (u *Set[T]) UnionWith(o *Set[T]) error {
	return u.with(o, union[T])
}

// Union of u and o. Where both hold equivalent elements the one from u is kept.
func (u *Set[T]) Union(o *Set[T]) (*Set[T], error) {
	return u.of(o, union[T])
}

// IntersectionWith removes the elements of u that aren't in o.
func (u *Set[T]) IntersectionWith(o *Set[T]) error {
	return u.with(o, intersection[T])
}

// Intersection of u and o, holding the elements from u.
func (u *Set[T]) Intersection(o *Set[T]) (*Set[T], error) {
	return u.of(o, intersection[T])
}

// DifferenceWith removes the elements of u that are in o.
func (u *Set[T]) DifferenceWith(o *Set[T]) error {
	return u.with(o, difference[T])
}

// Difference u-o.
func (u *Set[T]) Difference(o *Set[T]) (*Set[T], error) {
	return u.of(o, difference[T])
}

// SymmetricDifferenceWith keeps the elements in exactly one of u and o.
func (u *Set[T]) SymmetricDifferenceWith(o *Set[T]) error {
	return u.with(o, symmetricDifference[T])
}

// SymmetricDifference of u and o.
func (u *Set[T]) SymmetricDifference(o *Set[T]) (*Set[T], error) {
	return u.of(o, symmetricDifference[T])
}

// IsSubsetOf reports whether every element of u is in o.
func (u *Set[T]) IsSubsetOf(o *Set[T]) (bool, error) {
	return u.isSubsetOf(o.base())
}

// IsProperSubsetOf reports whether u is a subset of o and o has more elements.
func (u *Set[T]) IsProperSubsetOf(o *Set[T]) (bool, error) {
	return u.isProperSubsetOf(o.base())
}

// IsSupersetOf reports whether every element of o is in u.
func (u *Set[T]) IsSupersetOf(o *Set[T]) (bool, error) {
	if o == nil {
		return false, errors.Wrap(Go_Collections.ErrNilArgument, "nil operand")
	}
	return o.isSubsetOf(u.base())
}

// IsProperSupersetOf reports whether u is a superset of o and u has more elements.
func (u *Set[T]) IsProperSupersetOf(o *Set[T]) (bool, error) {
	if o == nil {
		return false, errors.Wrap(Go_Collections.ErrNilArgument, "nil operand")
	}
	return o.isProperSubsetOf(u.base())
}

// IsDisjointFrom reports whether u and o have no element in common.
func (u *Set[T]) IsDisjointFrom(o *Set[T]) (bool, error) {
	return u.isDisjointFrom(o.base())
}

// IsEqualTo reports whether u and o hold equivalent elements.
func (u *Set[T]) IsEqualTo(o *Set[T]) (bool, error) {
	return u.isEqualTo(o.base())
}

// Clone u. The elements themselves are copied by assignment.
func (u *Set[T]) Clone() *Set[T] {
	return &Set[T]{core[T]{u.t.Clone(), u.c, u.policy}}
}

// CloneContents clones u and every element in it, see Go_Collections.CloneFunc. Fails with
// ErrNotCloneable before anything is built if an element can't be cloned.
func (u *Set[T]) CloneContents() (*Set[T], error) {
	s, err := cloneContents(&u.core)
	if err != nil {
		return nil, err
	}
	r := newSet(u.c)
	r.load(s)
	return r, nil
}

// CloneSetContents is CloneContents for element types known to be Cloners.
func CloneSetContents[T Go_Collections.Cloner[T]](u *Set[T]) *Set[T] {
	r := u.Clone()
	r.t.InOrder(func(v *T) bool {
		*v = (*v).Clone()
		return true
	})
	return r
}
