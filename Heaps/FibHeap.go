package Heaps

import "math/bits"

// A node in a FibHeap holding one value. Siblings form a circular doubly
// linked ring through l and r; c points at any one child. A node stays
// valid as a handle until it is popped or removed from its heap.
type FibNode[T any] struct {
	v      T
	p, c   *FibNode[T]
	l, r   *FibNode[T]
	deg    int
	marked bool
}

// Value held by the node.
func (n *FibNode[T]) Value() T {
	return n.v
}

// FibHeap is a Fibonacci heap: a ring of heap-ordered multi-way trees
// merged only lazily, which makes Push, Union and DecreaseKey constant time
// (the latter amortized) at the price of a costlier PopMin. Unlike
// [BinaryHeap] it hands back a node per pushed value, so an element in the
// middle can be decreased or removed without searching for it.
type FibHeap[T any] struct {
	min  *FibNode[T]
	sz   uint
	less func(a, b T) bool
}

// NewFib returns an empty FibHeap ordered by less.
func NewFib[T any](less func(a, b T) bool) *FibHeap[T] {
	return &FibHeap[T]{less: less}
}

// pushRoot splices n into the root ring next to min without updating min.
func (u *FibHeap[T]) pushRoot(n *FibNode[T]) {
	if u.min == nil {
		n.l, n.r = n, n
		u.min = n
	} else {
		n.r = u.min.r
		n.l = u.min
		u.min.r.l = n
		u.min.r = n
	}
}

// Push v onto the heap. The returned node is the handle to pass to
// [FibHeap.DecreaseKey] and [FibHeap.Remove].
// Time: O(1)
func (u *FibHeap[T]) Push(v T) *FibNode[T] {
	n := &FibNode[T]{v: v}
	u.pushRoot(n)
	if u.less(n.v, u.min.v) {
		u.min = n
	}
	u.sz++
	return n
}

// Min peeks at the least element. Returning false if the heap is empty.
// Time: O(1)
func (u *FibHeap[T]) Min() (T, bool) {
	if u.min == nil {
		return *new(T), false
	}
	return u.min.v, true
}

// link detaches y from the root ring and makes it a child of x.
func (u *FibHeap[T]) link(y, x *FibNode[T]) {
	y.l.r = y.r
	y.r.l = y.l
	y.p = x
	if x.c == nil {
		y.l, y.r = y, y
		x.c = y
	} else {
		y.r = x.c.r
		y.l = x.c
		x.c.r.l = y
		x.c.r = y
	}
	x.deg++
	y.marked = false
}

// consolidate links roots of equal degree under each other until all root
// degrees are distinct, then locates the new min among them.
func (u *FibHeap[T]) consolidate() {
	roots := make([]*FibNode[T], 0, bits.Len(u.sz)*2)
	for x, stop := u.min, u.min; ; {
		roots = append(roots, x)
		if x = x.r; x == stop {
			break
		}
	}
	deg := make([]*FibNode[T], bits.Len(u.sz)*2+1)
	for _, x := range roots {
		d := x.deg
		for {
			for d >= len(deg) {
				deg = append(deg, nil)
			}
			if deg[d] == nil {
				break
			}
			y := deg[d]
			if u.less(y.v, x.v) {
				x, y = y, x
			}
			u.link(y, x)
			deg[d] = nil
			d++
		}
		deg[d] = x
	}
	u.min = nil
	for _, x := range deg {
		if x != nil && (u.min == nil || u.less(x.v, u.min.v)) {
			u.min = x
		}
	}
}

// PopMin removes and returns the least element. Returning false if the heap
// is empty. The popped node's children join the root ring and the ring is
// then consolidated, which is where the deferred Push work gets paid.
// Time: amortized O(log(n))
func (u *FibHeap[T]) PopMin() (T, bool) {
	z := u.min
	if z == nil {
		return *new(T), false
	}
	if z.c != nil {
		for x, stop := z.c, z.c; ; {
			next := x.r
			x.p = nil
			u.pushRoot(x)
			if next == stop {
				break
			}
			x = next
		}
		z.c = nil
	}
	z.l.r = z.r
	z.r.l = z.l
	if z == z.r {
		u.min = nil
	} else {
		u.min = z.r
		u.consolidate()
	}
	u.sz--
	z.l, z.r = nil, nil
	return z.v, true
}

// cut detaches n from its parent p and promotes it to a root.
func (u *FibHeap[T]) cut(n, p *FibNode[T]) {
	if n.r == n {
		p.c = nil
	} else {
		n.l.r = n.r
		n.r.l = n.l
		if p.c == n {
			p.c = n.r
		}
	}
	p.deg--
	n.p = nil
	n.marked = false
	u.pushRoot(n)
}

// cascadingCut climbs from a node that just lost a child, cutting every
// already marked ancestor and marking the first unmarked one.
func (u *FibHeap[T]) cascadingCut(n *FibNode[T]) {
	for p := n.p; p != nil; p = n.p {
		if !n.marked {
			n.marked = true
			return
		}
		u.cut(n, p)
		n = p
	}
}

// DecreaseKey moves n to value v, which must not order after n's current
// value. Returning false and changing nothing if it does. n must belong to
// this heap.
// Time: amortized O(1)
func (u *FibHeap[T]) DecreaseKey(n *FibNode[T], v T) bool {
	if u.less(n.v, v) {
		return false
	}
	n.v = v
	if p := n.p; p != nil && u.less(n.v, p.v) {
		u.cut(n, p)
		u.cascadingCut(p)
	}
	if u.less(n.v, u.min.v) {
		u.min = n
	}
	return true
}

// Remove n from the heap regardless of its value, returning the value. n
// must belong to this heap and becomes invalid as a handle.
// Time: amortized O(log(n))
func (u *FibHeap[T]) Remove(n *FibNode[T]) T {
	if p := n.p; p != nil {
		u.cut(n, p)
		u.cascadingCut(p)
	}
	u.min = n //pretend n is the least so PopMin takes it out
	v, _ := u.PopMin()
	return v
}

// Union moves every element of o into u, leaving o empty. Both heaps must
// use the same ordering; handles into o keep working and now belong to u.
// Time: O(1)
func (u *FibHeap[T]) Union(o *FibHeap[T]) {
	if o.min == nil {
		return
	}
	if u.min == nil {
		u.min = o.min
	} else {
		u.min.r.l = o.min.l
		o.min.l.r = u.min.r
		u.min.r = o.min
		o.min.l = u.min
		if u.less(o.min.v, u.min.v) {
			u.min = o.min
		}
	}
	u.sz += o.sz
	o.min, o.sz = nil, 0
}

// Size of the heap.
// Time: O(1)
func (u *FibHeap[T]) Size() uint {
	return u.sz
}

// Empty reports whether the heap holds no elements.
func (u *FibHeap[T]) Empty() bool {
	return u.min == nil
}
