package Ordered

import (
	"cmp"
	"fmt"
	"iter"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Comparers"
	"github.com/g-m-twostay/go-collections/Sets"
	"github.com/g-m-twostay/go-collections/Trees"
)

// Entry is a key and its value.
type Entry[K, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}

// Dictionary maps keys sorted by a Comparer to values.
type Dictionary[K, V any] struct {
	entries core[Entry[K, V]]
	keys    *Comparers.Comparer[K]
}

func newDictionary[K, V any](c *Comparers.Comparer[K]) *Dictionary[K, V] {
	return &Dictionary[K, V]{
		newCore(Comparers.By(c, func(e Entry[K, V]) K { return e.Key }), Trees.Replace),
		c,
	}
}

// NewDictionary ordered by the natural order of K.
func NewDictionary[K cmp.Ordered, V any]() *Dictionary[K, V] {
	return newDictionary[K, V](Comparers.Natural[K]())
}

// NewDictionaryWith ordered by c.
func NewDictionaryWith[K, V any](c *Comparers.Comparer[K]) (*Dictionary[K, V], error) {
	if err := checkComparer(c); err != nil {
		return nil, err
	}
	return newDictionary[K, V](c), nil
}

// NewDictionaryFunc ordered by a new Comparer wrapping f.
func NewDictionaryFunc[K, V any](f func(a, b K) int) (*Dictionary[K, V], error) {
	c, err := Comparers.FromFunc(f)
	if err != nil {
		return nil, err
	}
	return newDictionary[K, V](c), nil
}

// NewDictionaryDefault ordered by Comparers.Default, failing with ErrUnorderableType when K
// has no natural order.
func NewDictionaryDefault[K, V any]() (*Dictionary[K, V], error) {
	c, err := Comparers.Default[K]()
	if err != nil {
		return nil, err
	}
	return newDictionary[K, V](c), nil
}

func key[K, V any](k K) Entry[K, V] {
	return Entry[K, V]{Key: k}
}

// Len is the number of keys.
func (u *Dictionary[K, V]) Len() int {
	return u.entries.Len()
}

// Comparer that orders the keys.
func (u *Dictionary[K, V]) Comparer() *Comparers.Comparer[K] {
	return u.keys
}

// Set the value of k.
func (u *Dictionary[K, V]) Set(k K, v V) {
	u.entries.t.Insert(Entry[K, V]{k, v}, Trees.Replace)
}

// Add k with v, replacing the value if k is present. Returns whether k was present.
func (u *Dictionary[K, V]) Add(k K, v V) bool {
	_, replaced := u.entries.t.Insert(Entry[K, V]{k, v}, Trees.Replace)
	return replaced
}

// TryAdd k with v only if k isn't present. Returns whether it was added.
func (u *Dictionary[K, V]) TryAdd(k K, v V) bool {
	inserted, _ := u.entries.t.Insert(Entry[K, V]{k, v}, Trees.Reject)
	return inserted
}

// Get the value of k.
func (u *Dictionary[K, V]) Get(k K) (V, bool) {
	if p := u.entries.t.Find(key[K, V](k)); p != nil {
		return p.Value, true
	}
	return *new(V), false
}

// ContainsKey reports whether k is present.
func (u *Dictionary[K, V]) ContainsKey(k K) bool {
	return u.entries.t.Has(key[K, V](k))
}

// Remove k. Returns false if it isn't present.
func (u *Dictionary[K, V]) Remove(k K) bool {
	return u.entries.t.Remove(key[K, V](k))
}

// At returns the key and value at index i.
func (u *Dictionary[K, V]) At(i int) (K, V, error) {
	e, err := u.entries.At(i)
	return e.Key, e.Value, err
}

// IndexOf k, -1 if it isn't present.
func (u *Dictionary[K, V]) IndexOf(k K) int {
	return u.entries.t.IndexOf(key[K, V](k))
}

// RemoveAt removes the entry at index i.
func (u *Dictionary[K, V]) RemoveAt(i int) (Entry[K, V], error) {
	return u.entries.RemoveAt(i)
}

// First is the entry with the smallest key.
func (u *Dictionary[K, V]) First() (Entry[K, V], error) {
	return u.entries.First()
}

// Last is the entry with the largest key.
func (u *Dictionary[K, V]) Last() (Entry[K, V], error) {
	return u.entries.Last()
}

// Clear removes every entry.
func (u *Dictionary[K, V]) Clear() {
	u.entries.Clear()
}

// All entries in key order. Like every sequence of the containers it panics with
// ErrCollectionModified if u is modified before it's exhausted.
func (u *Dictionary[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range u.entries.All() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Entries in key order.
func (u *Dictionary[K, V]) Entries() iter.Seq[Entry[K, V]] {
	return u.entries.All()
}

// Keys in order.
func (u *Dictionary[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range u.entries.All() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values in the order of their keys.
func (u *Dictionary[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range u.entries.All() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Iterator over the entries in key order.
func (u *Dictionary[K, V]) Iterator() Iterator[Entry[K, V]] {
	return u.entries.Iterator()
}

// Range is the View of the entries with keys between lo and hi.
func (u *Dictionary[K, V]) Range(lo K, loInc bool, hi K, hiInc bool) *View[Entry[K, V]] {
	return u.entries.Range(key[K, V](lo), loInc, key[K, V](hi), hiInc)
}

// RangeFrom is the View of the entries with keys greater than lo, or equivalent to it if inc.
func (u *Dictionary[K, V]) RangeFrom(lo K, inc bool) *View[Entry[K, V]] {
	return u.entries.RangeFrom(key[K, V](lo), inc)
}

// RangeTo is the View of the entries with keys less than hi, or equivalent to it if inc.
func (u *Dictionary[K, V]) RangeTo(hi K, inc bool) *View[Entry[K, V]] {
	return u.entries.RangeTo(key[K, V](hi), inc)
}

// Reversed is the View of every entry in descending key order.
func (u *Dictionary[K, V]) Reversed() *View[Entry[K, V]] {
	return u.entries.Reversed()
}

// Clone u. Keys and values are copied by assignment.
func (u *Dictionary[K, V]) Clone() *Dictionary[K, V] {
	return &Dictionary[K, V]{core[Entry[K, V]]{u.entries.t.Clone(), u.entries.c, u.entries.policy}, u.keys}
}

// CloneContents clones u and every key and value in it, see Go_Collections.CloneFunc.
// Fails with ErrNotCloneable before anything is built if a key or a value can't be cloned.
func (u *Dictionary[K, V]) CloneContents() (*Dictionary[K, V], error) {
	fk, err := Go_Collections.CloneFunc[K]()
	if err != nil {
		return nil, err
	}
	fv, err := Go_Collections.CloneFunc[V]()
	if err != nil {
		return nil, err
	}
	s := u.entries.t.Slice()
	for i := range s {
		if s[i].Key, err = fk(s[i].Key); err != nil {
			return nil, err
		}
		if s[i].Value, err = fv(s[i].Value); err != nil {
			return nil, err
		}
	}
	r := &Dictionary[K, V]{core[Entry[K, V]]{Trees.New[Entry[K, V], uint](u.entries.c.Func()), u.entries.c, u.entries.policy}, u.keys}
	r.entries.load(s)
	return r, nil
}

func (u *Dictionary[K, V]) String() string {
	return Sets.ToString(u.entries.All())
}
