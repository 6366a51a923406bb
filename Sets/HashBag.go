package Sets

import (
	"iter"

	"github.com/cornelk/hashmap"
	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Comparers"
	"github.com/pkg/errors"
)

// group holds every copy of one element, in the order they were added.
type group[E any] []E

// bucket holds the groups whose elements share a hash.
type bucket[E any] struct {
	groups []group[E]
}

func (b *bucket[E]) find(eq *Comparers.Equality[E], e E) int {
	for i, g := range b.groups {
		if eq.Equal(g[0], e) {
			return i
		}
	}
	return -1
}

// HashBag is an unordered bag. Elements are matched by a Comparers.Equality and every copy
// is kept.
type HashBag[E any] struct {
	m       *hashmap.Map[uint64, *bucket[E]]
	eq      *Comparers.Equality[E]
	sz, dsz int
	version uint64
}

// NewHashBag using eq to match elements.
func NewHashBag[E any](eq *Comparers.Equality[E]) (*HashBag[E], error) {
	if eq == nil {
		return nil, errors.Wrap(Go_Collections.ErrNilArgument, "nil equality")
	}
	return &HashBag[E]{m: hashmap.New[uint64, *bucket[E]](), eq: eq}, nil
}

// Equality used to match elements.
func (u *HashBag[E]) Equality() *Comparers.Equality[E] {
	return u.eq
}

// Len is the number of elements, counting every copy.
func (u *HashBag[E]) Len() int {
	return u.sz
}

// DistinctLen is the number of distinct elements.
func (u *HashBag[E]) DistinctLen() int {
	return u.dsz
}

// Add a copy of e.
func (u *HashBag[E]) Add(e E) {
	h := u.eq.Hash(e)
	b, ok := u.m.Get(h)
	if !ok {
		b = new(bucket[E])
		u.m.Set(h, b)
	}
	if i := b.find(u.eq, e); i >= 0 {
		b.groups[i] = append(b.groups[i], e)
	} else {
		b.groups = append(b.groups, group[E]{e})
		u.dsz++
	}
	u.sz++
	u.version++
}

// AddMany adds every element of seq.
func (u *HashBag[E]) AddMany(seq iter.Seq[E]) error {
	if seq == nil {
		return errors.Wrap(Go_Collections.ErrNilArgument, "nil sequence")
	}
	var s []E
	for e := range seq {
		s = append(s, e)
	}
	for _, e := range s {
		u.Add(e)
	}
	return nil
}

// Remove the last copy of e. Returns false if there's none.
func (u *HashBag[E]) Remove(e E) bool {
	h := u.eq.Hash(e)
	b, ok := u.m.Get(h)
	if !ok {
		return false
	}
	i := b.find(u.eq, e)
	if i < 0 {
		return false
	}
	if g := b.groups[i]; len(g) > 1 {
		b.groups[i] = g[:len(g)-1]
	} else {
		u.drop(h, b, i)
	}
	u.sz--
	u.version++
	return true
}

// drop group i of the bucket at h.
func (u *HashBag[E]) drop(h uint64, b *bucket[E], i int) {
	b.groups = append(b.groups[:i], b.groups[i+1:]...)
	if len(b.groups) == 0 {
		u.m.Del(h)
	}
	u.dsz--
}

// RemoveAllCopies of e and returns how many there were.
func (u *HashBag[E]) RemoveAllCopies(e E) int {
	h := u.eq.Hash(e)
	b, ok := u.m.Get(h)
	if !ok {
		return 0
	}
	i := b.find(u.eq, e)
	if i < 0 {
		return 0
	}
	n := len(b.groups[i])
	u.drop(h, b, i)
	u.sz -= n
	u.version++
	return n
}

// NumberOfCopies of e.
func (u *HashBag[E]) NumberOfCopies(e E) int {
	if b, ok := u.m.Get(u.eq.Hash(e)); ok {
		if i := b.find(u.eq, e); i >= 0 {
			return len(b.groups[i])
		}
	}
	return 0
}

// Contains a copy of e.
func (u *HashBag[E]) Contains(e E) bool {
	return u.NumberOfCopies(e) > 0
}

// Clear removes every element.
func (u *HashBag[E]) Clear() {
	u.m = hashmap.New[uint64, *bucket[E]]()
	u.sz, u.dsz = 0, 0
	u.version++
}

// each yields every group until f returns false, panicking with ErrCollectionModified once
// u is modified.
func (u *HashBag[E]) each(f func(group[E]) bool) {
	version := u.version
	u.m.Range(func(_ uint64, b *bucket[E]) bool {
		for _, g := range b.groups {
			if !f(g) {
				return false
			}
			if u.version != version {
				panic(errors.Wrapf(Go_Collections.ErrCollectionModified, "version %d, iteration started at %d", u.version, version))
			}
		}
		return true
	})
}

// All copies of all elements, the copies of an element next to each other. The order of
// distinct elements is unspecified.
func (u *HashBag[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		u.each(func(g group[E]) bool {
			for _, e := range g {
				if !yield(e) {
					return false
				}
			}
			return true
		})
	}
}

// Distinct yields the first copy of every element.
func (u *HashBag[E]) Distinct() iter.Seq[E] {
	return func(yield func(E) bool) {
		u.each(func(g group[E]) bool {
			return yield(g[0])
		})
	}
}

// Clone u. The elements themselves are copied by assignment.
func (u *HashBag[E]) Clone() *HashBag[E] {
	c := &HashBag[E]{m: hashmap.New[uint64, *bucket[E]](), eq: u.eq, sz: u.sz, dsz: u.dsz}
	u.m.Range(func(h uint64, b *bucket[E]) bool {
		nb := &bucket[E]{groups: make([]group[E], len(b.groups))}
		for i, g := range b.groups {
			nb.groups[i] = append(group[E](nil), g...)
		}
		c.m.Set(h, nb)
		return true
	})
	return c
}

// IsEqualTo reports whether u and o have the same number of copies of every element. Fails
// with ErrInconsistentComparer if they don't use the same Equality.
func (u *HashBag[E]) IsEqualTo(o *HashBag[E]) (bool, error) {
	if o == nil {
		return false, errors.Wrap(Go_Collections.ErrNilArgument, "nil operand")
	}
	if !u.eq.Equivalent(o.eq) {
		return false, errors.Wrap(Go_Collections.ErrInconsistentComparer, "different equalities")
	}
	if u.sz != o.sz || u.dsz != o.dsz {
		return false, nil
	}
	eq := true
	u.each(func(g group[E]) bool {
		eq = o.NumberOfCopies(g[0]) == len(g)
		return eq
	})
	return eq, nil
}

func (u *HashBag[E]) String() string {
	return ToString(u.All())
}
