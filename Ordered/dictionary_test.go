package Ordered

import (
	"maps"
	"slices"
	"testing"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Comparers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionary_MapOracle(t *testing.T) {
	d := NewDictionary[int, int]()
	oracle := make(map[int]int)
	for i := range 10000 {
		k := rg.Intn(1000)
		switch rg.Intn(4) {
		case 0:
			_, in := oracle[k]
			assert.Equal(t, in, d.Remove(k))
			delete(oracle, k)
		case 1:
			_, in := oracle[k]
			assert.Equal(t, !in, d.TryAdd(k, i))
			if !in {
				oracle[k] = i
			}
		default:
			_, in := oracle[k]
			assert.Equal(t, in, d.Add(k, i))
			oracle[k] = i
		}
	}
	require.Equal(t, len(oracle), d.Len())
	keys := slices.Sorted(maps.Keys(oracle))
	assert.Equal(t, keys, slices.Collect(d.Keys()))
	for i, k := range keys {
		v, ok := d.Get(k)
		assert.True(t, ok)
		assert.Equal(t, oracle[k], v)
		assert.True(t, d.ContainsKey(k))
		assert.Equal(t, i, d.IndexOf(k))
		ak, av, err := d.At(i)
		require.NoError(t, err)
		assert.Equal(t, k, ak)
		assert.Equal(t, v, av)
	}
	for k, v := range d.All() {
		assert.Equal(t, oracle[k], v)
	}
	_, ok := d.Get(-1)
	assert.False(t, ok)
	_, _, err := d.At(d.Len())
	assert.ErrorIs(t, err, Go_Collections.ErrOutOfRange)
}

func TestDictionary_Ranges(t *testing.T) {
	d, err := NewDictionaryWith[string, int](Comparers.CaseInsensitive())
	require.NoError(t, err)
	for i, k := range []string{"delta", "alpha", "Charlie", "bravo", "echo"} {
		d.Set(k, i)
	}
	d.Set("CHARLIE", 10)
	assert.Equal(t, 5, d.Len())
	v, _ := d.Get("charlie")
	assert.Equal(t, 10, v)
	assert.Equal(t, []string{"alpha", "bravo", "CHARLIE", "delta", "echo"}, slices.Collect(d.Keys()))
	assert.Equal(t, []int{1, 3, 10, 0, 4}, slices.Collect(d.Values()))

	r := d.Range("b", true, "d", true)
	assert.Equal(t, "{bravo: 3, CHARLIE: 10}", r.String())
	_, err = r.Add(Entry[string, int]{"Cobalt", 7})
	require.NoError(t, err)
	_, err = r.Add(Entry[string, int]{"zulu", 7})
	assert.ErrorIs(t, err, Go_Collections.ErrOutOfBounds)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 4, d.RangeFrom("CHARLIE", true).Len())
	assert.Equal(t, 2, d.RangeTo("bravo", true).Len())
	e, err := d.Reversed().First()
	require.NoError(t, err)
	assert.Equal(t, "echo", e.Key)

	assert.Equal(t, 3, r.Clear())
	assert.Equal(t, "{alpha: 1, delta: 0, echo: 4}", d.String())
	first, _ := d.First()
	last, _ := d.Last()
	assert.Equal(t, "alpha", first.Key)
	assert.Equal(t, "echo", last.Key)
	e, err = d.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, Entry[string, int]{"delta", 0}, e)
}

type counter struct {
	n *int
}

func (c counter) Clone() counter {
	n := *c.n
	return counter{&n}
}

func TestDictionary_Clone(t *testing.T) {
	d := NewDictionary[string, counter]()
	d.Set("a", counter{new(int)})
	c := d.Clone()
	cc, err := d.CloneContents()
	require.NoError(t, err)
	v, _ := d.Get("a")
	*v.n = 5
	cv, _ := c.Get("a")
	ccv, _ := cc.Get("a")
	assert.Equal(t, 5, *cv.n)
	assert.Equal(t, 0, *ccv.n)
	c.Remove("a")
	assert.True(t, d.ContainsKey("a"))

	p := NewDictionary[int, *int]()
	p.Set(1, new(int))
	_, err = p.CloneContents()
	assert.ErrorIs(t, err, Go_Collections.ErrNotCloneable)

	_, err = NewDictionaryDefault[[]int, int]()
	assert.ErrorIs(t, err, Go_Collections.ErrUnorderableType)
	_, err = NewDictionaryFunc[int, int](nil)
	assert.ErrorIs(t, err, Go_Collections.ErrUnorderableType)
}

func TestDictionary_FailFast(t *testing.T) {
	d := NewDictionary[int, string]()
	for i := range 50 {
		d.Set(i, "x")
	}
	steps := 0
	modified(t, func() {
		for k := range d.All() {
			steps++
			if steps == 3 {
				d.Set(k, "y")
			}
		}
	})
	assert.Equal(t, 3, steps)
	it := d.Iterator()
	it.Next()
	d.Remove(0)
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), Go_Collections.ErrCollectionModified)
}
