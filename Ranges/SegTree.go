package Ranges

import "fmt"

// SegTree folds an associative operation over a fixed length collection of
// elements 0..Len()-1. Any monoid serves: op must be associative and
// identity its neutral element; folds always combine left to right, so op
// need not commute. Point assignments and inclusive range folds both run
// in logarithmic time. Indices outside the collection panic.
type SegTree[T any] struct {
	tree     []T
	op       func(T, T) T
	identity T
	n        int
}

// NewSeg returns a SegTree holding data, folding with op. identity must
// satisfy op(identity, x) == op(x, identity) == x. The data slice isn't
// retained.
func NewSeg[T any](data []T, op func(T, T) T, identity T) *SegTree[T] {
	u := &SegTree[T]{make([]T, 4*len(data)), op, identity, len(data)}
	if u.n > 0 {
		u.build(data, 0, 0, u.n-1)
	}
	return u
}

// NewSum is a SegTree folding addition, the common case.
func NewSum[T Number](data []T) *SegTree[T] {
	return NewSeg(data, func(a, b T) T { return a + b }, *new(T))
}

func (u *SegTree[T]) build(data []T, node, start, end int) {
	if start == end {
		u.tree[node] = data[start]
		return
	}
	mid := (start + end) / 2
	u.build(data, 2*node+1, start, mid)
	u.build(data, 2*node+2, mid+1, end)
	u.tree[node] = u.op(u.tree[2*node+1], u.tree[2*node+2])
}

func (u *SegTree[T]) check(i int) {
	if i < 0 || i >= u.n {
		panic(fmt.Sprintf("SegTree: index %d out of range [0, %d)", i, u.n))
	}
}

// Update assigns v to element i.
// Time: O(log(n))
func (u *SegTree[T]) Update(i int, v T) {
	u.check(i)
	u.update(i, v, 0, 0, u.n-1)
}

func (u *SegTree[T]) update(i int, v T, node, start, end int) {
	if start == end {
		u.tree[node] = v
		return
	}
	mid := (start + end) / 2
	if i <= mid {
		u.update(i, v, 2*node+1, start, mid)
	} else {
		u.update(i, v, 2*node+2, mid+1, end)
	}
	u.tree[node] = u.op(u.tree[2*node+1], u.tree[2*node+2])
}

// Query folds the elements l..r inclusive.
// Time: O(log(n))
func (u *SegTree[T]) Query(l, r int) T {
	u.check(l)
	u.check(r)
	if r < l {
		panic(fmt.Sprintf("SegTree: backwards range [%d, %d]", l, r))
	}
	return u.query(l, r, 0, 0, u.n-1)
}

func (u *SegTree[T]) query(l, r, node, start, end int) T {
	if r < start || end < l {
		return u.identity
	}
	if l <= start && end <= r {
		return u.tree[node]
	}
	mid := (start + end) / 2
	return u.op(u.query(l, r, 2*node+1, start, mid), u.query(l, r, 2*node+2, mid+1, end))
}

// Len is the number of elements.
func (u *SegTree[T]) Len() int {
	return u.n
}
