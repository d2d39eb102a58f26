package Heaps

// A node in a PairHeap holding its first child and next sibling.
type pairNode[T any] struct {
	v    T
	c, s *pairNode[T]
}

// PairHeap is a pairing heap: one heap-ordered multi-way tree where melding
// attaches the root that orders later under the other. Push and Meld are a
// single comparison; Pop melds the orphaned children pairwise left to right
// and then folds the pairs back right to left, which is what keeps the
// amortized cost logarithmic.
type PairHeap[T any] struct {
	root *pairNode[T]
	sz   uint
	less func(a, b T) bool
}

// NewPair returns an empty PairHeap ordered by less.
func NewPair[T any](less func(a, b T) bool) *PairHeap[T] {
	return &PairHeap[T]{less: less}
}

// meld two trees into one; either may be nil.
func (u *PairHeap[T]) meld(a, b *pairNode[T]) *pairNode[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if u.less(b.v, a.v) {
		a, b = b, a
	}
	b.s = a.c
	a.c = b
	return a
}

// mergePairs rebuilds one tree from a sibling list.
func (u *PairHeap[T]) mergePairs(n *pairNode[T]) *pairNode[T] {
	var pairs []*pairNode[T]
	for n != nil {
		a, b := n, n.s
		if b == nil {
			a.s = nil
			pairs = append(pairs, a)
			break
		}
		n = b.s
		a.s, b.s = nil, nil
		pairs = append(pairs, u.meld(a, b))
	}
	var r *pairNode[T]
	for i := len(pairs) - 1; i >= 0; i-- {
		r = u.meld(pairs[i], r)
	}
	return r
}

// Push [Heap.Push]
// Time: O(1)
func (u *PairHeap[T]) Push(v T) {
	u.root = u.meld(u.root, &pairNode[T]{v: v})
	u.sz++
}

// Pop [Heap.Pop]
// Time: amortized O(log(n))
func (u *PairHeap[T]) Pop() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	r := u.root.v
	u.root = u.mergePairs(u.root.c)
	u.sz--
	return r, true
}

// Peek [Heap.Peek]
// Time: O(1)
func (u *PairHeap[T]) Peek() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.v, true
}

// Meld moves every element of o into u, leaving o empty. Both heaps must
// use the same ordering.
// Time: O(1)
func (u *PairHeap[T]) Meld(o *PairHeap[T]) {
	u.root = u.meld(u.root, o.root)
	u.sz += o.sz
	o.root, o.sz = nil, 0
}

// Size [Heap.Size]
func (u *PairHeap[T]) Size() uint {
	return u.sz
}

// Empty [Heap.Empty]
func (u *PairHeap[T]) Empty() bool {
	return u.root == nil
}
