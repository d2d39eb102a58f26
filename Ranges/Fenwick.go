package Ranges

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is anything the sum structures can total: the built in integer
// and floating point types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Fenwick is a tree of partial sums over a fixed collection of elements
// 1..Len(), all starting at zero. Updates add a delta to one element; the
// sum of any prefix or range comes back in logarithmic time. Indexing is
// 1 based, the form the parent arithmetic i&-i wants. Indices outside the
// collection are a programmer error and panic.
type Fenwick[T Number] struct {
	tree []T
}

// NewFenwick returns a Fenwick tree over the elements 1..size, all zero.
func NewFenwick[T Number](size int) *Fenwick[T] {
	if size < 0 {
		panic(fmt.Sprintf("Fenwick: negative size %d", size))
	}
	return &Fenwick[T]{make([]T, size+1)}
}

func (u *Fenwick[T]) check(i, lo int) {
	if i < lo || i >= len(u.tree) {
		panic(fmt.Sprintf("Fenwick: index %d out of range [%d, %d]", i, lo, len(u.tree)-1))
	}
}

// Update adds delta to element i.
// Time: O(log(n))
func (u *Fenwick[T]) Update(i int, delta T) {
	u.check(i, 1)
	for ; i < len(u.tree); i += i & -i {
		u.tree[i] += delta
	}
}

// Prefix sums the elements 1..i. An i of 0 names the empty prefix.
// Time: O(log(n))
func (u *Fenwick[T]) Prefix(i int) T {
	u.check(i, 0)
	var s T
	for ; i > 0; i -= i & -i {
		s += u.tree[i]
	}
	return s
}

// Range sums the elements l..r inclusive.
// Time: O(log(n))
func (u *Fenwick[T]) Range(l, r int) T {
	u.check(l, 1)
	u.check(r, l)
	return u.Prefix(r) - u.Prefix(l-1)
}

// Len is the number of elements.
func (u *Fenwick[T]) Len() int {
	return len(u.tree) - 1
}
