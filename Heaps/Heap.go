package Heaps

import "golang.org/x/exp/constraints"

// BinaryHeap is an implicit binary tree in a slice, ordered so that a parent
// never comes after its children per the less function it was built with.
// The zero value isn't usable; the less function must be set.
type BinaryHeap[T any] struct {
	vs   []T
	less func(a, b T) bool
}

// New returns an empty BinaryHeap ordered by less with room for hint
// elements before growing.
func New[T any](less func(a, b T) bool, hint uint) *BinaryHeap[T] {
	return &BinaryHeap[T]{make([]T, 0, hint), less}
}

// NewMin returns an empty BinaryHeap popping the smallest element first.
func NewMin[T constraints.Ordered](hint uint) *BinaryHeap[T] {
	return New[T](func(a, b T) bool { return a < b }, hint)
}

// NewMax returns an empty BinaryHeap popping the largest element first.
func NewMax[T constraints.Ordered](hint uint) *BinaryHeap[T] {
	return New[T](func(a, b T) bool { return a > b }, hint)
}

// From heapifies vs in place and returns a BinaryHeap ordered by less that
// owns it. The caller shouldn't touch vs afterwards.
// Time: O(n)
func From[T any](less func(a, b T) bool, vs []T) *BinaryHeap[T] {
	u := &BinaryHeap[T]{vs, less}
	for i := len(vs)/2 - 1; i >= 0; i-- {
		u.down(i)
	}
	return u
}

// up moves vs[i] towards the root until its parent doesn't come after it.
func (u *BinaryHeap[T]) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !u.less(u.vs[i], u.vs[p]) {
			break
		}
		u.vs[i], u.vs[p] = u.vs[p], u.vs[i]
		i = p
	}
}

// down moves vs[i] towards the leaves until neither child comes before it.
func (u *BinaryHeap[T]) down(i int) {
	for {
		m := i*2 + 1
		if m >= len(u.vs) {
			break
		}
		if r := m + 1; r < len(u.vs) && u.less(u.vs[r], u.vs[m]) {
			m = r
		}
		if !u.less(u.vs[m], u.vs[i]) {
			break
		}
		u.vs[i], u.vs[m] = u.vs[m], u.vs[i]
		i = m
	}
}

// Push [Heap.Push]
// Time: O(log(n)); Space: O(1)
func (u *BinaryHeap[T]) Push(v T) {
	u.vs = append(u.vs, v)
	u.up(len(u.vs) - 1)
}

// Pop [Heap.Pop]
// Time: O(log(n)); Space: O(1)
func (u *BinaryHeap[T]) Pop() (T, bool) {
	if len(u.vs) == 0 {
		return *new(T), false
	}
	r := u.vs[0]
	last := len(u.vs) - 1
	u.vs[0] = u.vs[last]
	u.vs[last] = *new(T)
	u.vs = u.vs[:last]
	u.down(0)
	return r, true
}

// Peek [Heap.Peek]
// Time: O(1)
func (u *BinaryHeap[T]) Peek() (T, bool) {
	if len(u.vs) == 0 {
		return *new(T), false
	}
	return u.vs[0], true
}

// Size [Heap.Size]
func (u *BinaryHeap[T]) Size() uint {
	return uint(len(u.vs))
}

// Empty [Heap.Empty]
func (u *BinaryHeap[T]) Empty() bool {
	return len(u.vs) == 0
}
