package Trees

import (
	"math/rand"
	"testing"
)

const bAddN = 1 << 17

var sideEff *int

func BenchmarkRB_Insert(b *testing.B) {
	var tree *RBTree[int, uint32]
	for range b.N {
		tree = NewRB[int, uint32](bAddN)
		for _, v := range rand.Perm(bAddN) {
			tree.Insert(v)
		}
	}
	b.Log(tree.height(tree.root))
}

func BenchmarkRB_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := NewRB[int, uint32](bAddN)
		for _, v := range rand.Perm(bAddN) {
			tree.Insert(v)
		}
		b.StartTimer()
		for v := range bAddN {
			tree.Remove(v)
		}
	}
}

func BenchmarkRB_Get(b *testing.B) {
	tree := NewRB[int, uint32](bAddN)
	for _, v := range rand.Perm(bAddN) {
		tree.Insert(v)
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff = tree.Get(i & (bAddN - 1))
	}
}

func BenchmarkRB_All(b *testing.B) {
	var tree *RBTree[int, uint32]
	for range b.N {
		tree = NewRB[int, uint32](bAddN / 2)
		for _, v := range rand.Perm(bAddN / 2) {
			tree.Insert(v)
		}
		for v, k := range rand.Perm(bAddN / 2) {
			if k&1 == 1 {
				tree.Remove(v)
			}
		}
		for _, v := range rand.Perm(bAddN / 2) {
			tree.Insert(v + bAddN)
		}
	}
	b.Log(tree.height(tree.root))
}

func BenchmarkBST_Insert(b *testing.B) {
	var tree *BSTree[int]
	for range b.N {
		tree = NewBST[int]()
		for _, v := range rand.Perm(bAddN) {
			tree.Insert(v)
		}
	}
}

func BenchmarkB_Insert(b *testing.B) {
	var tree *BTree[int]
	for range b.N {
		tree = NewB[int](8)
		for _, v := range rand.Perm(bAddN) {
			tree.Insert(v)
		}
	}
	b.Log(tree.depth())
}

func BenchmarkRB_InOrder(b *testing.B) {
	tree := NewRB[int, uint32](bAddN)
	for _, v := range rand.Perm(bAddN) {
		tree.Insert(v)
	}
	b.ResetTimer()
	for range b.N {
		for next := tree.InOrder(); ; {
			if _, ok := next(); !ok {
				break
			}
		}
	}
}
