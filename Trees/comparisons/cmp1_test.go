package comparisons

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/sevagh/red-black-tree/Trees"
)

// compares the two in-repo trees with https://github.com/emirpasic/gods,
// https://github.com/petar/GoLLRB, and https://github.com/google/btree
// on identical bulk-insertion and full-traversal workloads.
// GoLLRB's InsertNoReplace has the same repeat semantics as the trees
// here; gods' Put and btree's ReplaceOrInsert overwrite repeats, so on
// this workload (distinct random ints are overwhelmingly likely) the
// numbers stay comparable.

var _R rand.Rand = *rand.New(rand.NewSource(0))

const cAddN = 1000000

var vals = func() []int {
	a := make([]int, cAddN)
	for i := range a {
		a[i] = _R.Int()
	}
	return a
}()

func BenchmarkInsertSlab(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		tree := Trees.New[int, uint32](cAddN)
		for _, v := range vals {
			tree.Insert(v)
		}
	}
}
func BenchmarkInsertPtr(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		tree := Trees.MakeRBTree[int]()
		for _, v := range vals {
			tree.Insert(v)
		}
	}
}
func BenchmarkInsertGods(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		tree := redblacktree.NewWithIntComparator()
		for _, v := range vals {
			tree.Put(v, nil)
		}
	}
}
func BenchmarkInsertLLRB(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		tree := llrb.New()
		for _, v := range vals {
			tree.InsertNoReplace(llrb.Int(v))
		}
	}
}
func BenchmarkInsertBTree(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		tree := btree.NewOrderedG[int](32)
		for _, v := range vals {
			tree.ReplaceOrInsert(v)
		}
	}
}

var sideEff int

func BenchmarkAscendSlab(b *testing.B) {
	tree := Trees.New[int, uint32](cAddN)
	for _, v := range vals {
		tree.Insert(v)
	}
	b.ResetTimer()
	for bi := 0; bi < b.N; bi++ {
		tree.InOrder(func(v *int) bool {
			sideEff += *v
			return true
		})
	}
}
func BenchmarkAscendGods(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	for _, v := range vals {
		tree.Put(v, nil)
	}
	b.ResetTimer()
	for bi := 0; bi < b.N; bi++ {
		for it := tree.Iterator(); it.Next(); {
			sideEff += it.Key().(int)
		}
	}
}
func BenchmarkAscendLLRB(b *testing.B) {
	tree := llrb.New()
	for _, v := range vals {
		tree.InsertNoReplace(llrb.Int(v))
	}
	b.ResetTimer()
	for bi := 0; bi < b.N; bi++ {
		tree.AscendGreaterOrEqual(llrb.Int(0), func(i llrb.Item) bool {
			sideEff += int(i.(llrb.Int))
			return true
		})
	}
}
func BenchmarkAscendBTree(b *testing.B) {
	tree := btree.NewOrderedG[int](32)
	for _, v := range vals {
		tree.ReplaceOrInsert(v)
	}
	b.ResetTimer()
	for bi := 0; bi < b.N; bi++ {
		tree.Ascend(func(v int) bool {
			sideEff += v
			return true
		})
	}
}
