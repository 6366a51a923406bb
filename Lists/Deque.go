package Lists

import (
	"iter"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/pkg/errors"
)

// Deque is a List stored in a circular array. Pushing and popping at either end is amortized
// O(1), Insert and RemoveAt move the elements of the shorter side.
type Deque[T any] struct {
	content  []T
	head, sz int
	version  uint64
}

// NewDeque with room for initCap elements.
func NewDeque[T any](initCap int) *Deque[T] {
	return &Deque[T]{content: make([]T, max(initCap, 1))}
}

// pos of index i in content.
func (u *Deque[T]) pos(i int) int {
	return (u.head + i) % len(u.content)
}

func (u *Deque[T]) resize(newLen int) {
	nc := make([]T, newLen)
	if end := u.head + u.sz; end <= len(u.content) {
		copy(nc, u.content[u.head:end])
	} else {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:end-len(u.content)])
	}
	u.content, u.head = nc, 0
}

func (u *Deque[T]) grow() {
	if u.sz == len(u.content) {
		u.resize(max(u.sz*3/2, u.sz+1))
	}
}

// Shrink the buffer to the number of elements.
func (u *Deque[T]) Shrink() {
	u.resize(max(u.sz, 1))
}

// Clear removes every element and keeps the buffer.
func (u *Deque[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
	u.version++
}

// Len is the number of elements.
func (u *Deque[T]) Len() int {
	return u.sz
}

// Cap is the size of the buffer.
func (u *Deque[T]) Cap() int {
	return len(u.content)
}

// At returns element i.
func (u *Deque[T]) At(i int) (T, error) {
	if err := Go_Collections.CheckIndex(i, u.sz); err != nil {
		return *new(T), err
	}
	return u.content[u.pos(i)], nil
}

// Set element i to v.
func (u *Deque[T]) Set(i int, v T) error {
	if err := Go_Collections.CheckIndex(i, u.sz); err != nil {
		return err
	}
	u.content[u.pos(i)] = v
	u.version++
	return nil
}

// Insert v at index i, 0<=i<=Len.
func (u *Deque[T]) Insert(i int, v T) error {
	if err := Go_Collections.CheckIndex(i, u.sz+1); err != nil {
		return err
	}
	u.grow()
	if i < u.sz/2 {
		u.head = (u.head + len(u.content) - 1) % len(u.content)
		for j := 0; j < i; j++ {
			u.content[u.pos(j)] = u.content[u.pos(j+1)]
		}
	} else {
		for j := u.sz; j > i; j-- {
			u.content[u.pos(j)] = u.content[u.pos(j-1)]
		}
	}
	u.content[u.pos(i)] = v
	u.sz++
	u.version++
	return nil
}

// RemoveAt removes and returns element i.
func (u *Deque[T]) RemoveAt(i int) (T, error) {
	if err := Go_Collections.CheckIndex(i, u.sz); err != nil {
		return *new(T), err
	}
	v := u.content[u.pos(i)]
	if i < u.sz/2 {
		for j := i; j > 0; j-- {
			u.content[u.pos(j)] = u.content[u.pos(j-1)]
		}
		u.content[u.head] = *new(T)
		u.head = (u.head + 1) % len(u.content)
	} else {
		for j := i; j < u.sz-1; j++ {
			u.content[u.pos(j)] = u.content[u.pos(j+1)]
		}
		u.content[u.pos(u.sz-1)] = *new(T)
	}
	u.sz--
	u.version++
	return v, nil
}

// PushBack adds v after the last element.
func (u *Deque[T]) PushBack(v T) {
	u.grow()
	u.content[u.pos(u.sz)] = v
	u.sz++
	u.version++
}

// PushFront adds v before the first element.
func (u *Deque[T]) PushFront(v T) {
	u.grow()
	u.head = (u.head + len(u.content) - 1) % len(u.content)
	u.content[u.head] = v
	u.sz++
	u.version++
}

// PopFront removes and returns the first element.
func (u *Deque[T]) PopFront() (T, error) {
	if u.sz == 0 {
		return *new(T), errors.Wrap(Go_Collections.ErrEmpty, "PopFront")
	}
	return u.RemoveAt(0)
}

// PopBack removes and returns the last element.
func (u *Deque[T]) PopBack() (T, error) {
	if u.sz == 0 {
		return *new(T), errors.Wrap(Go_Collections.ErrEmpty, "PopBack")
	}
	return u.RemoveAt(u.sz - 1)
}

// PeekFront returns the first element.
func (u *Deque[T]) PeekFront() (T, error) {
	if u.sz == 0 {
		return *new(T), errors.Wrap(Go_Collections.ErrEmpty, "PeekFront")
	}
	return u.content[u.head], nil
}

// PeekBack returns the last element.
func (u *Deque[T]) PeekBack() (T, error) {
	if u.sz == 0 {
		return *new(T), errors.Wrap(Go_Collections.ErrEmpty, "PeekBack")
	}
	return u.content[u.pos(u.sz-1)], nil
}

// All elements from front to back. The sequence panics with ErrCollectionModified if u is
// modified before it's exhausted.
func (u *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		version := u.version
		for i := 0; i < u.sz; i++ {
			if u.version != version {
				panic(errors.Wrapf(Go_Collections.ErrCollectionModified, "version %d, iteration started at %d", u.version, version))
			}
			if !yield(u.content[u.pos(i)]) {
				return
			}
		}
		if u.version != version {
			panic(errors.Wrapf(Go_Collections.ErrCollectionModified, "version %d, iteration started at %d", u.version, version))
		}
	}
}

func (u *Deque[T]) String() string {
	return ToString[T](u)
}
