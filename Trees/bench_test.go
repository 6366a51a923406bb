package Trees

import (
	"cmp"
	"slices"
	"testing"
)

var (
	bAddN uint32 = 1000000
	bQryN uint32 = bAddN / 2
)

func BenchmarkInsert(b *testing.B) {
	for range b.N {
		tree := New[int, uint32](cmp.Compare[int])
		for range bAddN {
			tree.Insert(rg.Int(), Duplicate)
		}
	}
}

func create(b *testing.B) (*Tree[int, uint32], []int) {
	b.Helper()
	all := make([]int, bAddN)
	for i := range all {
		all[i] = rg.Int()
	}
	slices.Sort(all)
	return Build[int, uint32](all, cmp.Compare[int], false), all
}

func BenchmarkRemove(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree, all := create(b)
		rg.Shuffle(len(all), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
		b.StartTimer()
		for _, v := range all {
			tree.Remove(v)
		}
	}
}

var sideEff *int

func BenchmarkFind(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree, all := create(b)
		rg.Shuffle(int(bQryN), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
		m := slices.Max(all[bQryN:])
		b.StartTimer()
		for _, v := range all[:bQryN] {
			sideEff = tree.Find(v)
		}
		for range bAddN - bQryN {
			sideEff = tree.Find(rg.Intn(m))
		}
	}
}

func BenchmarkAt(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree, _ := create(b)
		b.StartTimer()
		for range bQryN {
			sideEff = tree.At(rg.Intn(tree.Len()))
		}
	}
}
