package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const benchmarkItemCount = 1 << 14

// keys are shuffled so that the unbalanced tree has a logarithmic expected height.
var keys = rand.New(rand.NewSource(0)).Perm(benchmarkItemCount)

// compares the point lookups of the BSTree with ordered containers: https://github.com/google/btree,
// https://github.com/petar/GoLLRB and https://github.com/emirpasic/gods; and with the hash maps
// https://github.com/alphadose/haxmap and https://github.com/cornelk/hashmap as the lower bound.
func setupBSTree(b testing.TB) *Trees.BSTree[int, uint32] {
	b.Helper()
	t := Trees.NewOrdered[int](uint32(benchmarkItemCount))
	for _, k := range keys {
		if _, err := t.Insert(k); err != nil {
			b.Fatal(err)
		}
	}
	return t
}

func setupBTree(b testing.TB) *btree.BTreeG[int] {
	b.Helper()
	t := btree.NewOrderedG[int](32)
	for _, k := range keys {
		t.ReplaceOrInsert(k)
	}
	return t
}

func setupLLRB(b testing.TB) *llrb.LLRB {
	b.Helper()
	t := llrb.New()
	for _, k := range keys {
		t.ReplaceOrInsert(llrb.Int(k))
	}
	return t
}

func setupRBTree(b testing.TB) *redblacktree.Tree {
	b.Helper()
	t := redblacktree.NewWithIntComparator()
	for _, k := range keys {
		t.Put(k, struct{}{})
	}
	return t
}

func setupHaxMap(b testing.TB) *haxmap.Map[int, struct{}] {
	b.Helper()
	m := haxmap.New[int, struct{}]()
	for _, k := range keys {
		m.Set(k, struct{}{})
	}
	return m
}

func setupHashMap(b testing.TB) *hashmap.Map[int, struct{}] {
	b.Helper()
	m := hashmap.New[int, struct{}]()
	for _, k := range keys {
		m.Set(k, struct{}{})
	}
	return m
}

// TestAgree checks that every container answers the same lookups before they are timed.
func TestAgree(t *testing.T) {
	bst, bt, lr, rb, hx, hm := setupBSTree(t), setupBTree(t), setupLLRB(t), setupRBTree(t), setupHaxMap(t), setupHashMap(t)
	for k := -benchmarkItemCount / 4; k < benchmarkItemCount+benchmarkItemCount/4; k++ {
		want := k >= 0 && k < benchmarkItemCount
		_, rbHas := rb.Get(k)
		_, hxHas := hx.Get(k)
		_, hmHas := hm.Get(k)
		for name, got := range map[string]bool{
			"bstree":  bst.Has(k),
			"btree":   bt.Has(k),
			"llrb":    lr.Has(llrb.Int(k)),
			"rbtree":  rbHas,
			"haxmap":  hxHas,
			"hashmap": hmHas,
		} {
			if got != want {
				t.Errorf("%s has %d: %v, want %v", name, k, got, want)
			}
		}
	}
	var in []int
	bst.InOrder(func(u *Trees.BSTree[int, uint32], n Trees.Node[uint32], _ any) bool {
		v, _ := u.Element(n)
		in = append(in, v)
		return false
	}, nil)
	i := 0
	bt.Ascend(func(v int) bool {
		if v != in[i] {
			t.Errorf("in-order element %d is %d, btree has %d", i, in[i], v)
		}
		i++
		return true
	})
}

func BenchmarkInsertBSTree(b *testing.B) {
	for range b.N {
		setupBSTree(b)
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	for range b.N {
		setupBTree(b)
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	for range b.N {
		setupLLRB(b)
	}
}

func BenchmarkInsertRBTree(b *testing.B) {
	for range b.N {
		setupRBTree(b)
	}
}

func BenchmarkReadBSTree(b *testing.B) {
	t := setupBSTree(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if !t.Has(k) {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if !t.Has(k) {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if !t.Has(llrb.Int(k)) {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadRBTree(b *testing.B) {
	t := setupRBTree(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if _, ok := t.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if _, ok := m.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if _, ok := m.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkAscendBSTree(b *testing.B) {
	t := setupBSTree(b)
	b.ResetTimer()
	for range b.N {
		t.InOrder(func(*Trees.BSTree[int, uint32], Trees.Node[uint32], any) bool { return false }, nil)
	}
}

func BenchmarkAscendBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		t.Ascend(func(int) bool { return true })
	}
}

func BenchmarkAscendLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		t.AscendGreaterOrEqual(t.Min(), func(llrb.Item) bool { return true })
	}
}
