// Package Lists defines the list capabilities and the operations derived from them.
//
// A type only has to provide Len and At to be a ReadOnly list; Set, Insert and RemoveAt make
// it a List. Everything else (searching, windows, reversing) is a free function working
// through those methods, so it's available to the Deque, to the views of the ordered
// containers, and to any other implementation.
package Lists

import (
	"fmt"
	"iter"
	"strings"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/pkg/errors"
)

// ReadOnly is an indexable sequence. At fails with ErrOutOfRange for i outside of [0, Len).
type ReadOnly[T any] interface {
	Len() int
	At(i int) (T, error)
}

// List is a ReadOnly that can also be modified by index. Insert accepts i==Len to append.
type List[T any] interface {
	ReadOnly[T]
	Set(i int, v T) error
	Insert(i int, v T) error
	RemoveAt(i int) (T, error)
}

// Queue is first in first out.
type Queue[T any] interface {
	PushBack(v T)
	PopFront() (T, error)
	PeekFront() (T, error)
	Len() int
}

// at reads index i, which the caller has checked.
func at[T any](l ReadOnly[T], i int) T {
	v, _ := l.At(i)
	return v
}

// FindIndex of the first element satisfying f, -1 if there's none.
func FindIndex[T any](l ReadOnly[T], f func(T) bool) int {
	for i, n := 0, l.Len(); i < n; i++ {
		if f(at(l, i)) {
			return i
		}
	}
	return -1
}

// FindLastIndex of the last element satisfying f, -1 if there's none.
func FindLastIndex[T any](l ReadOnly[T], f func(T) bool) int {
	for i := l.Len() - 1; i >= 0; i-- {
		if f(at(l, i)) {
			return i
		}
	}
	return -1
}

// Find the first element satisfying f.
func Find[T any](l ReadOnly[T], f func(T) bool) (T, bool) {
	if i := FindIndex(l, f); i >= 0 {
		return at(l, i), true
	}
	return *new(T), false
}

// IndexOf the first element equal to v, -1 if there's none.
func IndexOf[T comparable](l ReadOnly[T], v T) int {
	return FindIndex(l, func(e T) bool { return e == v })
}

// LastIndexOf the last element equal to v, -1 if there's none.
func LastIndexOf[T comparable](l ReadOnly[T], v T) int {
	return FindLastIndex(l, func(e T) bool { return e == v })
}

// Contains an element equal to v.
func Contains[T comparable](l ReadOnly[T], v T) bool {
	return IndexOf(l, v) >= 0
}

// ToSlice copies the elements of l.
func ToSlice[T any](l ReadOnly[T]) []T {
	s := make([]T, l.Len())
	for i := range s {
		s[i] = at(l, i)
	}
	return s
}

// All yields the indexes and elements of l. Elements are read by index, so it's up to the
// caller not to change the length of l meanwhile.
func All[T any](l ReadOnly[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.Len(); i++ {
			if !yield(i, at(l, i)) {
				return
			}
		}
	}
}

// ToString renders l as [a, b, c].
func ToString[T any](l ReadOnly[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range All(l) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Reverse l in place. Stops at the first failing Set and returns its error.
func Reverse[T any](l List[T]) error {
	for i, j := 0, l.Len()-1; i < j; i, j = i+1, j-1 {
		a, b := at[T](l, i), at[T](l, j)
		if err := l.Set(i, b); err != nil {
			return err
		}
		if err := l.Set(j, a); err != nil {
			return err
		}
	}
	return nil
}

// Fill every position of l with v. Stops at the first failing Set and returns its error.
func Fill[T any](l List[T], v T) error {
	for i, n := 0, l.Len(); i < n; i++ {
		if err := l.Set(i, v); err != nil {
			return err
		}
	}
	return nil
}

// RemoveAll removes the elements satisfying f and returns how many were removed. Stops at
// the first failing RemoveAt; n counts only the elements removed before it.
func RemoveAll[T any](l List[T], f func(T) bool) (n int, err error) {
	for i := l.Len() - 1; i >= 0; i-- {
		if f(at[T](l, i)) {
			if _, err = l.RemoveAt(i); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}

// Window is a live range of indexes of another list. Changes made through the Window move its
// end; changes made to the list directly aren't tracked.
type Window[T any] struct {
	l            ReadOnly[T]
	start, count int
}

// Range is the Window of count elements of l starting at index start. Fails with
// ErrOutOfRange unless [start, start+count) lies within [0, l.Len()].
func Range[T any](l ReadOnly[T], start, count int) (*Window[T], error) {
	if err := Go_Collections.CheckRange(start, count, l.Len()); err != nil {
		return nil, err
	}
	return &Window[T]{l, start, count}, nil
}

func (u *Window[T]) list(op string) (List[T], error) {
	if m, ok := u.l.(List[T]); ok {
		return m, nil
	}
	return nil, errors.Wrapf(Go_Collections.ErrReadOnly, "%s on a window of %T", op, u.l)
}

// Len of the window.
func (u *Window[T]) Len() int {
	return u.count
}

// At returns element i of the window.
func (u *Window[T]) At(i int) (T, error) {
	if err := Go_Collections.CheckIndex(i, u.count); err != nil {
		return *new(T), err
	}
	return u.l.At(u.start + i)
}

// Set element i of the window. Fails with ErrReadOnly if the list is a ReadOnly.
func (u *Window[T]) Set(i int, v T) error {
	m, err := u.list("Set")
	if err != nil {
		return err
	}
	if err = Go_Collections.CheckIndex(i, u.count); err != nil {
		return err
	}
	return m.Set(u.start+i, v)
}

// Insert v at index i of the window, growing it.
func (u *Window[T]) Insert(i int, v T) error {
	m, err := u.list("Insert")
	if err != nil {
		return err
	}
	if err = Go_Collections.CheckIndex(i, u.count+1); err != nil {
		return err
	}
	if err = m.Insert(u.start+i, v); err == nil {
		u.count++
	}
	return err
}

// RemoveAt removes element i of the window, shrinking it.
func (u *Window[T]) RemoveAt(i int) (T, error) {
	m, err := u.list("RemoveAt")
	if err != nil {
		return *new(T), err
	}
	if err = Go_Collections.CheckIndex(i, u.count); err != nil {
		return *new(T), err
	}
	v, err := m.RemoveAt(u.start + i)
	if err == nil {
		u.count--
	}
	return v, err
}

func (u *Window[T]) String() string {
	return ToString[T](u)
}
