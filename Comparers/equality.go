package Comparers

import (
	"hash/maphash"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/pkg/errors"
)

var seed = maphash.MakeSeed()

// Equality is an equivalence relation with a matching hash, used by hash based containers.
// Equal(a, b) must imply Hash(a)==Hash(b).
type Equality[T any] struct {
	id   uint64
	eq   func(a, b T) bool
	hash func(T) uint64
}

// NewEquality builds an Equality from eq and hash.
func NewEquality[T any](eq func(a, b T) bool, hash func(T) uint64) (*Equality[T], error) {
	if eq == nil || hash == nil {
		return nil, errors.Wrap(Go_Collections.ErrNilArgument, "equality needs both eq and hash")
	}
	return &Equality[T]{ids.Add(1), eq, hash}, nil
}

// EqualityOf derives an Equality from an ordering: values are equal when c compares them as 0.
// hash must agree with c.
func EqualityOf[T any](c *Comparer[T], hash func(T) uint64) (*Equality[T], error) {
	if c == nil {
		return nil, errors.Wrap(Go_Collections.ErrNilArgument, "nil comparer")
	}
	return NewEquality(c.Equal, hash)
}

// Equal reports whether a and b are equal.
func (u *Equality[T]) Equal(a, b T) bool {
	return u.eq(a, b)
}

// Hash of v.
func (u *Equality[T]) Hash(v T) uint64 {
	return u.hash(v)
}

// Equivalent reports whether u and o are the same equality.
func (u *Equality[T]) Equivalent(o *Equality[T]) bool {
	return u == o || (u != nil && o != nil && u.id == o.id)
}

// NaturalEquality is == with the runtime hash of T. One instance per T.
func NaturalEquality[T comparable]() *Equality[T] {
	v, _ := registry.GetOrCompute("equality/"+naturalKey[T](), func() any {
		return &Equality[T]{ids.Add(1), func(a, b T) bool {
			return a == b
		}, func(v T) uint64 {
			return maphash.Comparable(seed, v)
		}}
	})
	return v.(*Equality[T])
}

var caseInsensitiveEquality = sync.OnceValue(func() *Equality[string] {
	return &Equality[string]{ids.Add(1), func(a, b string) bool {
		return strings.ToLower(a) == strings.ToLower(b)
	}, func(s string) uint64 {
		return xxhash.Sum64String(strings.ToLower(s))
	}}
})

// CaseInsensitiveEquality treats strings differing only in case as equal.
func CaseInsensitiveEquality() *Equality[string] {
	return caseInsensitiveEquality()
}
