package Sets

import (
	"math/rand"
	"slices"
	"testing"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Comparers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Collection[int] = (*HashBag[int])(nil)

func newInts(t *testing.T) *HashBag[int] {
	b, err := NewHashBag(Comparers.NaturalEquality[int]())
	require.NoError(t, err)
	return b
}

func TestHashBag_MapOracle(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	b := newInts(t)
	oracle := make(map[int]int)
	n := 0
	for range 20000 {
		v := rg.Intn(500)
		switch rg.Intn(5) {
		case 0:
			assert.Equal(t, oracle[v] > 0, b.Remove(v))
			if oracle[v] > 0 {
				oracle[v]--
				n--
			}
		case 1:
			assert.Equal(t, oracle[v], b.RemoveAllCopies(v))
			n -= oracle[v]
			oracle[v] = 0
		default:
			b.Add(v)
			oracle[v]++
			n++
		}
		require.Equal(t, n, b.Len())
	}
	distinct := 0
	for v, c := range oracle {
		assert.Equal(t, c, b.NumberOfCopies(v))
		assert.Equal(t, c > 0, b.Contains(v))
		if c > 0 {
			distinct++
		}
	}
	assert.Equal(t, distinct, b.DistinctLen())
	assert.Len(t, slices.Collect(b.All()), n)
	assert.Len(t, slices.Collect(b.Distinct()), distinct)
}

func TestHashBag_CaseInsensitive(t *testing.T) {
	b, err := NewHashBag(Comparers.CaseInsensitiveEquality())
	require.NoError(t, err)
	require.NoError(t, b.AddMany(slices.Values([]string{"Go", "GO", "go", "rust", "Rust"})))
	assert.Equal(t, 5, b.Len())
	assert.Equal(t, 2, b.DistinctLen())
	assert.Equal(t, 3, b.NumberOfCopies("gO"))
	// copies are kept in the order they were added.
	assert.True(t, b.Remove("go"))
	var gos []string
	for s := range b.All() {
		if b.Equality().Equal(s, "go") {
			gos = append(gos, s)
		}
	}
	assert.Equal(t, []string{"Go", "GO"}, gos)
	assert.Equal(t, 2, b.RemoveAllCopies("RUST"))
	assert.False(t, b.Contains("rust"))
	assert.Equal(t, "{Go, GO}", b.String())

	assert.Equal(t, 1, Count[string](b, func(s string) bool { return s == "GO" }))
	assert.True(t, ContainsAll[string](b, slices.Values([]string{"go", "gO"})))
	assert.False(t, ContainsAll[string](b, slices.Values([]string{"go", "rust"})))

	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.DistinctLen())
	assert.Equal(t, "{}", b.String())
}

func TestHashBag_Collisions(t *testing.T) {
	// every element lands in the same bucket.
	eq, err := Comparers.NewEquality(func(a, b int) bool { return a == b }, func(int) uint64 { return 7 })
	require.NoError(t, err)
	b, err := NewHashBag(eq)
	require.NoError(t, err)
	for i := range 10 {
		b.Add(i)
		b.Add(i)
	}
	assert.Equal(t, 10, b.DistinctLen())
	for i := range 10 {
		assert.Equal(t, 2, b.NumberOfCopies(i))
	}
	for i := range 5 {
		assert.Equal(t, 2, b.RemoveAllCopies(i*2))
	}
	assert.Equal(t, 5, b.DistinctLen())
	got := slices.Sorted(b.Distinct())
	assert.Equal(t, []int{1, 3, 5, 7, 9}, got)
}

func TestHashBag_Equal(t *testing.T) {
	a, c := newInts(t), newInts(t)
	for _, v := range []int{1, 1, 2, 3} {
		a.Add(v)
	}
	for _, v := range []int{3, 2, 1} {
		c.Add(v)
	}
	eq, err := a.IsEqualTo(c)
	require.NoError(t, err)
	assert.False(t, eq)
	c.Add(1)
	eq, err = a.IsEqualTo(c)
	require.NoError(t, err)
	assert.True(t, eq)
	c.Remove(2)
	c.Add(3)
	eq, _ = a.IsEqualTo(c)
	assert.False(t, eq)

	d := a.Clone()
	eq, _ = a.IsEqualTo(d)
	assert.True(t, eq)
	d.Add(4)
	d.Remove(1)
	assert.Equal(t, 2, a.NumberOfCopies(1))
	assert.False(t, a.Contains(4))

	other, err := Comparers.NewEquality(func(a, b int) bool { return a == b }, func(v int) uint64 { return uint64(v) })
	require.NoError(t, err)
	o, _ := NewHashBag(other)
	_, err = a.IsEqualTo(o)
	assert.ErrorIs(t, err, Go_Collections.ErrInconsistentComparer)
	_, err = a.IsEqualTo(nil)
	assert.ErrorIs(t, err, Go_Collections.ErrNilArgument)
	_, err = NewHashBag[int](nil)
	assert.ErrorIs(t, err, Go_Collections.ErrNilArgument)
	assert.ErrorIs(t, a.AddMany(nil), Go_Collections.ErrNilArgument)
}

func TestHashBag_FailFast(t *testing.T) {
	b := newInts(t)
	for i := range 50 {
		b.Add(i)
	}
	steps := 0
	func() {
		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, Go_Collections.ErrCollectionModified)
		}()
		for range b.Distinct() {
			steps++
			if steps == 3 {
				b.Add(100)
			}
		}
	}()
	assert.Equal(t, 3, steps)

	for v := range b.All() {
		if v >= 0 {
			break
		}
	}
	b.Add(101)
	assert.Equal(t, 52, b.Len())
}
