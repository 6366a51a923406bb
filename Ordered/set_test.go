package Ordered

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Comparers"
	"github.com/g-m-twostay/go-collections/Sets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rg = rand.New(rand.NewSource(0))

func randomSet(n, valRange int) *Set[int] {
	s := NewSet[int]()
	for range n {
		s.Add(rg.Intn(valRange))
	}
	return s
}

func TestSet_RedBlackOracle(t *testing.T) {
	s := NewSet[int]()
	oracle := redblacktree.NewWithIntComparator()
	for range 20000 {
		v := rg.Intn(2000)
		if rg.Intn(3) == 0 {
			_, found := oracle.Get(v)
			require.Equal(t, found, s.Remove(v), "remove %d", v)
			oracle.Remove(v)
		} else {
			_, found := oracle.Get(v)
			require.Equal(t, found, s.Add(v), "add %d", v)
			oracle.Put(v, struct{}{})
		}
	}
	require.Equal(t, oracle.Size(), s.Len())
	keys := oracle.Keys()
	for i, v := range s.ToSlice() {
		require.Equal(t, keys[i], v)
	}
	for i := range s.Len() {
		v, err := s.At(i)
		require.NoError(t, err)
		assert.Equal(t, i, s.IndexOf(v))
		assert.Equal(t, i, s.LastIndexOf(v))
	}
	first, err := s.First()
	require.NoError(t, err)
	assert.Equal(t, oracle.Left().Key, first)
	last, err := s.Last()
	require.NoError(t, err)
	assert.Equal(t, oracle.Right().Key, last)
}

func TestSet_AddReplaces(t *testing.T) {
	s, err := NewSetWith(Comparers.CaseInsensitive())
	require.NoError(t, err)
	assert.False(t, s.Add("hello"))
	assert.True(t, s.Add("HELLO"))
	assert.Equal(t, 1, s.Len())
	v, ok := s.Find("Hello")
	assert.True(t, ok)
	assert.Equal(t, "HELLO", v)
	assert.True(t, s.Contains("hElLo"))
	assert.True(t, s.Remove("hello"))
	assert.False(t, s.Remove("hello"))
}

func TestSet_Constructors(t *testing.T) {
	_, err := NewSetWith[int](nil)
	assert.ErrorIs(t, err, Go_Collections.ErrNilArgument)
	_, err = NewSetFunc[int](nil)
	assert.ErrorIs(t, err, Go_Collections.ErrUnorderableType)
	_, err = NewSetDefault[struct{ a []int }]()
	assert.ErrorIs(t, err, Go_Collections.ErrUnorderableType)

	type celsius float64
	d, err := NewSetDefault[celsius]()
	require.NoError(t, err)
	for _, v := range []celsius{3.5, -1, 2} {
		d.Add(v)
	}
	assert.Equal(t, []celsius{-1, 2, 3.5}, d.ToSlice())

	s, err := SetFrom(Comparers.CaseInsensitive(), slices.Values([]string{"b", "A", "a", "B", "c"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "B", "c"}, s.ToSlice())
	_, err = SetFrom[string](Comparers.CaseInsensitive(), nil)
	assert.ErrorIs(t, err, Go_Collections.ErrNilArgument)
}

func TestSet_Empty(t *testing.T) {
	s := NewSet[int]()
	_, err := s.First()
	assert.ErrorIs(t, err, Go_Collections.ErrEmpty)
	_, err = s.Last()
	assert.ErrorIs(t, err, Go_Collections.ErrEmpty)
	_, err = s.RemoveFirst()
	assert.ErrorIs(t, err, Go_Collections.ErrEmpty)
	_, err = s.RemoveLast()
	assert.ErrorIs(t, err, Go_Collections.ErrEmpty)
	for _, i := range []int{-1, 0, 1, int(^uint(0) >> 1), -int(^uint(0)>>1) - 1} {
		_, err = s.At(i)
		assert.ErrorIs(t, err, Go_Collections.ErrOutOfRange, "index %d", i)
	}
	assert.Equal(t, "{}", s.String())
}

func TestSet_Indexing(t *testing.T) {
	s := NewSet[int]()
	require.NoError(t, s.AddMany(slices.Values([]int{5, 1, 9, 3, 7})))
	assert.Equal(t, "{1, 3, 5, 7, 9}", s.String())
	v, err := s.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	_, err = s.RemoveAt(4)
	assert.ErrorIs(t, err, Go_Collections.ErrOutOfRange)
	v, _ = s.RemoveFirst()
	assert.Equal(t, 1, v)
	v, _ = s.RemoveLast()
	assert.Equal(t, 9, v)
	assert.Equal(t, []int{3, 7}, s.ToSlice())
	p, ok := s.Predecessor(7, true)
	assert.True(t, ok)
	assert.Equal(t, 3, p)
	_, ok = s.Successor(7, true)
	assert.False(t, ok)
	assert.ErrorIs(t, s.RemoveRange(1, 2), Go_Collections.ErrOutOfRange)
	require.NoError(t, s.RemoveRange(0, 2))
	assert.Equal(t, 0, s.Len())
	assert.ErrorIs(t, s.AddMany(nil), Go_Collections.ErrNilArgument)
}

func TestSet_AddManySelf(t *testing.T) {
	s := randomSet(100, 1000)
	n := s.Len()
	require.NoError(t, s.AddMany(s.All()))
	assert.Equal(t, n, s.Len())
	removed, err := s.RemoveMany(s.All())
	require.NoError(t, err)
	assert.Equal(t, n, removed)
	assert.Equal(t, 0, s.Len())
}

func TestSet_AlgebraLaws(t *testing.T) {
	for range 50 {
		a, b := randomSet(200, 400), randomSet(200, 400)
		union, err := a.Union(b)
		require.NoError(t, err)
		inter, err := a.Intersection(b)
		require.NoError(t, err)
		assert.Equal(t, a.Len()+b.Len()-inter.Len(), union.Len())

		ab, err := a.Difference(b)
		require.NoError(t, err)
		ba, err := b.Difference(a)
		require.NoError(t, err)
		sym, err := a.SymmetricDifference(b)
		require.NoError(t, err)
		disjoint, err := ab.IsDisjointFrom(ba)
		require.NoError(t, err)
		assert.True(t, disjoint)
		both, err := ab.Union(ba)
		require.NoError(t, err)
		eq, err := both.IsEqualTo(sym)
		require.NoError(t, err)
		assert.True(t, eq)

		sub, err := inter.IsSubsetOf(a)
		require.NoError(t, err)
		assert.True(t, sub)
		sup, err := union.IsSupersetOf(b)
		require.NoError(t, err)
		assert.True(t, sup)

		for v := range union.All() {
			assert.True(t, a.Contains(v) || b.Contains(v))
		}
		for v := range inter.All() {
			assert.True(t, a.Contains(v) && b.Contains(v))
		}
		for v := range sym.All() {
			assert.True(t, a.Contains(v) != b.Contains(v))
		}

		// in place variants agree with the copying ones.
		c := a.Clone()
		require.NoError(t, c.UnionWith(b))
		assert.Equal(t, union.ToSlice(), c.ToSlice())
		c = a.Clone()
		require.NoError(t, c.IntersectionWith(b))
		assert.Equal(t, inter.ToSlice(), c.ToSlice())
		c = a.Clone()
		require.NoError(t, c.DifferenceWith(b))
		assert.Equal(t, ab.ToSlice(), c.ToSlice())
		c = a.Clone()
		require.NoError(t, c.SymmetricDifferenceWith(b))
		assert.Equal(t, sym.ToSlice(), c.ToSlice())
	}
}

func TestSet_UnionKeepsOwnElements(t *testing.T) {
	a, _ := SetFrom(Comparers.CaseInsensitive(), slices.Values([]string{"a", "B"}))
	b, _ := SetFrom(Comparers.CaseInsensitive(), slices.Values([]string{"b", "c"}))
	u, err := a.Union(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "B", "c"}, u.ToSlice())
	i, err := b.Intersection(a)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, i.ToSlice())
}

func TestSet_Predicates(t *testing.T) {
	a, b := NewSet[int](), NewSet[int]()
	a.AddMany(slices.Values([]int{1, 2, 3}))
	b.AddMany(slices.Values([]int{1, 2, 3, 4}))
	check := func(want bool, f func(*Set[int]) (bool, error), o *Set[int]) {
		t.Helper()
		got, err := f(o)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	check(true, a.IsSubsetOf, b)
	check(true, a.IsProperSubsetOf, b)
	check(true, a.IsSubsetOf, a)
	check(false, a.IsProperSubsetOf, a)
	check(true, b.IsProperSupersetOf, a)
	check(false, a.IsSupersetOf, b)
	check(false, a.IsDisjointFrom, b)
	check(false, a.IsEqualTo, b)
	b.Remove(4)
	check(true, a.IsEqualTo, b)
	c := NewSet[int]()
	c.Add(10)
	check(true, a.IsDisjointFrom, c)

	_, err := a.IsSubsetOf(nil)
	assert.ErrorIs(t, err, Go_Collections.ErrNilArgument)
	_, err = a.IsSupersetOf(nil)
	assert.ErrorIs(t, err, Go_Collections.ErrNilArgument)
}

func TestSet_InconsistentComparer(t *testing.T) {
	a := randomSet(10, 100)
	b, err := NewSetFunc(func(x, y int) int { return x - y })
	require.NoError(t, err)
	b.Add(1)
	before := a.ToSlice()
	assert.ErrorIs(t, a.UnionWith(b), Go_Collections.ErrInconsistentComparer)
	_, err = a.Intersection(b)
	assert.ErrorIs(t, err, Go_Collections.ErrInconsistentComparer)
	_, err = a.IsEqualTo(b)
	assert.ErrorIs(t, err, Go_Collections.ErrInconsistentComparer)
	assert.Equal(t, before, a.ToSlice())
	assert.Equal(t, []int{1}, b.ToSlice())

	// sets built independently with the natural order agree.
	c, err := NewSetWith(Comparers.Natural[int]())
	require.NoError(t, err)
	c.Add(1)
	require.NoError(t, a.UnionWith(c))
	assert.True(t, a.Contains(1))
	assert.True(t, a.Comparer().Equivalent(c.Comparer()))
}

type box struct {
	s []int
}

func (b *box) Clone() *box {
	return &box{slices.Clone(b.s)}
}

func TestSet_Clone(t *testing.T) {
	a := randomSet(100, 1000)
	c := a.Clone()
	assert.Equal(t, a.ToSlice(), c.ToSlice())
	c.Add(-1)
	assert.False(t, a.Contains(-1))
	cc, err := a.CloneContents()
	require.NoError(t, err)
	assert.Equal(t, a.ToSlice(), cc.ToSlice())
	assert.True(t, cc.Comparer().Equivalent(a.Comparer()))

	byLen := Comparers.By(Comparers.Natural[int](), func(b *box) int { return len(b.s) })
	boxes, err := NewSetWith(byLen)
	require.NoError(t, err)
	orig := &box{[]int{1}}
	boxes.Add(orig)
	clone, err := boxes.CloneContents()
	require.NoError(t, err)
	v, _ := clone.First()
	assert.NotSame(t, orig, v)
	assert.Equal(t, orig.s, v.s)
	v = CloneSetContents(boxes).ToSlice()[0]
	assert.NotSame(t, orig, v)

	type shared struct{ p *int }
	sh, err := NewSetFunc(func(a, b shared) int { return 0 })
	require.NoError(t, err)
	sh.Add(shared{new(int)})
	_, err = sh.CloneContents()
	assert.ErrorIs(t, err, Go_Collections.ErrNotCloneable)
	assert.Equal(t, 1, sh.Len())
}

func TestSet_Collection(t *testing.T) {
	var c Sets.Collection[string]
	s, _ := SetFrom(Comparers.CaseInsensitive(), slices.Values([]string{"Go", "rust", "GO", "zig"}))
	c = s
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 1, Sets.Count(c, func(v string) bool { return strings.HasPrefix(v, "G") }))
	assert.True(t, Sets.ContainsAll(c, slices.Values([]string{"go", "ZIG"})))
}
