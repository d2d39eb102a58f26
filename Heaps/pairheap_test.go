package Heaps

import (
	"slices"
	"testing"
)

func TestPair_PushPop(t *testing.T) {
	h := NewPair(intLess)
	if _, ok := h.Pop(); ok {
		t.Error("empty heap popped a value")
	}
	if _, ok := h.Peek(); ok {
		t.Error("empty heap peeked a value")
	}
	a := make([]int, hAddN)
	lo := int(^uint(0) >> 1)
	for i := range a {
		a[i] = rg.Intn(hAddN)
		h.Push(a[i])
		lo = min(lo, a[i])
		if v, ok := h.Peek(); !ok || v != lo {
			t.Fatalf("wrong peek %v, want %v", v, lo)
		}
	}
	slices.Sort(a)
	if got := popAll[int](h); !slices.Equal(got, a) {
		t.Errorf("wrong pop order")
	}
	if !h.Empty() || h.Size() != 0 {
		t.Error("drained heap isn't empty")
	}
}

func TestPair_Meld(t *testing.T) {
	h1 := NewPair(intLess)
	h2 := NewPair(intLess)
	h1.Meld(h2) //both empty
	if !h1.Empty() {
		t.Error("meld of empty heaps isn't empty")
	}
	const n = 3000
	for i := range n {
		h1.Push(i * 2)
		h2.Push(i*2 + 1)
	}
	h1.Meld(h2)
	if h1.Size() != 2*n {
		t.Fatalf("heap size is %d, want %d", h1.Size(), 2*n)
	}
	if !h2.Empty() || h2.Size() != 0 {
		t.Error("drained source isn't empty")
	}
	for i := range 2 * n {
		if v, ok := h1.Pop(); !ok || v != i {
			t.Fatalf("wrong value %v, want %v", v, i)
		}
	}

	h3 := NewPair(intLess)
	h3.Push(7)
	h4 := NewPair(intLess)
	h4.Meld(h3) //empty destination
	if v, ok := h4.Pop(); !ok || v != 7 {
		t.Fatalf("wrong value %v", v)
	}
}

// PairHeap and BinaryHeap fed the same interleaved operations must always
// agree.
func TestPair_Mixed(t *testing.T) {
	bh := NewMin[int](0)
	ph := NewPair(intLess)
	for range 100000 {
		if rg.Intn(3) != 0 {
			v := rg.Intn(1 << 15)
			bh.Push(v)
			ph.Push(v)
		} else {
			v1, ok1 := bh.Pop()
			v2, ok2 := ph.Pop()
			if v1 != v2 || ok1 != ok2 {
				t.Fatalf("pop diverged: %v %v vs %v %v", v1, ok1, v2, ok2)
			}
		}
		if bh.Size() != ph.Size() {
			t.Fatalf("size diverged: %d vs %d", bh.Size(), ph.Size())
		}
	}
}
