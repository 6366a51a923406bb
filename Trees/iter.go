package Trees

import (
	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Iter is a cursor over a window of a Tree. It remembers the Version of the tree when it
// was created, and the first call to Next after the tree changed fails with
// ErrCollectionModified. Reading the tree never invalidates an Iter.
type Iter[T any, S constraints.Unsigned] struct {
	u       *Tree[T, S]
	version uint64
	st      []nodePtr[T, S]
	left    int
	reverse bool
	cur     *T
	err     error
}

// Iter over n elements starting at index from. When reverse is true the elements are visited
// in descending order, so from is the index of the largest one visited.
// from and n must describe a valid window.
// Time: O(D) to create, amortized O(1) for each call to Next.
func (u *Tree[T, S]) Iter(from, n int, reverse bool) *Iter[T, S] {
	it := &Iter[T, S]{u: u, version: u.version, left: n, reverse: reverse}
	if n <= 0 {
		return it
	}
	it.st = make([]nodePtr[T, S], 0, 32)
	k := S(from)
	for cur := u.root; cur != u.nilPtr; {
		if ls := cur.l.sz; k < ls {
			if !reverse {
				it.st = append(it.st, cur)
			}
			cur = cur.l
		} else if k > ls {
			if reverse {
				it.st = append(it.st, cur)
			}
			k -= ls + 1
			cur = cur.r
		} else {
			it.st = append(it.st, cur)
			break
		}
	}
	return it
}

// Next advances to the next element. Returns false when the window is exhausted or when the
// tree has been modified, in which case Err is set.
func (u *Iter[T, S]) Next() bool {
	if u.err != nil {
		return false
	}
	if u.version != u.u.version {
		u.err = errors.Wrapf(Go_Collections.ErrCollectionModified, "version %d, iterator created at %d", u.u.version, u.version)
		u.cur, u.st = nil, nil
		return false
	}
	if u.left <= 0 || len(u.st) == 0 {
		u.cur = nil
		return false
	}
	top := u.st[len(u.st)-1]
	u.st = u.st[:len(u.st)-1]
	u.cur = &top.v
	u.left--
	if u.left > 0 {
		if u.reverse {
			for cur := top.l; cur != u.u.nilPtr; cur = cur.r {
				u.st = append(u.st, cur)
			}
		} else {
			for cur := top.r; cur != u.u.nilPtr; cur = cur.l {
				u.st = append(u.st, cur)
			}
		}
	}
	return true
}

// Value at the current position. Only meaningful after Next returned true.
func (u *Iter[T, S]) Value() T {
	if u.cur == nil {
		return *new(T)
	}
	return *u.cur
}

// Err is non-nil if the iteration stopped because the tree was modified.
func (u *Iter[T, S]) Err() error {
	return u.err
}
