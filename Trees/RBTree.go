package Trees

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// RBTree is a binary search tree with no repeated values. It maintains
// balance through recoloring and rotations so that the following always
// hold between operations:
//  1. every node is red or black;
//  2. the root is black;
//  3. every leaf (the sentinel) is black;
//  4. a red node never has a red child;
//  5. every path from a node down to a leaf passes the same number of
//     black nodes.
//
// Together these bound the height D of the tree by 2*log2(n+1).
// T is the type of values it will hold, S is the type of the arena indices.
// Nodes live in a growable arena addressed by S instead of pointers; index 0
// is the shared sentinel, so the zero value of a slot is "no node". Removed
// slots are recycled through a free list threaded through the left child
// field. Values sit in a parallel array: vs[i] corresponds to the node at
// arena index i+1.
// Note that due to the way uint works in Go, and that the Tree interface
// defines the return value of Size to be uint, S shouldn't be any type that
// will cause overflow when converted to uint. Generally, you should let S be
// a wide upperbound for the size of the tree.
type RBTree[T constraints.Ordered, S constraints.Unsigned] struct {
	arena      []rbNode[S]
	vs         []T
	root, free S
	sz         S
}

// NewRB returns an empty RBTree whose arena can hold hint values before
// growing.
func NewRB[T constraints.Ordered, S constraints.Unsigned](hint S) *RBTree[T, S] {
	return &RBTree[T, S]{arena: make([]rbNode[S], 1, hint+1), vs: make([]T, 0, hint)}
}

// addFree index once.
func (u *RBTree[T, S]) addFree(a S) {
	u.arena[a].c[left] = u.free
	u.free = a
}

// popFree index once. Returns 0 when there's no free index.
func (u *RBTree[T, S]) popFree() S {
	b := u.free
	u.free = u.arena[b].c[left]
	return b
}

// rotate the subtree rooting at xi towards d: the child on the side opposite
// to d is promoted into xi's place and xi becomes its d-side child. The
// moved middle subtree and the tree root reference are relinked accordingly.
// Writing the sentinel's parent field is harmless as it is never read
// outside an in-flight removal.
// Time: O(1); Space: O(1)
func (u *RBTree[T, S]) rotate(xi S, d side) {
	o := d.opposite()
	yi := u.arena[xi].c[o]
	u.arena[xi].c[o] = u.arena[yi].c[d]
	if ci := u.arena[yi].c[d]; ci != 0 {
		u.arena[ci].p = xi
	}
	pi := u.arena[xi].p
	u.arena[yi].p = pi
	if pi == 0 {
		u.root = yi
	} else if xi == u.arena[pi].c[left] {
		u.arena[pi].c[left] = yi
	} else {
		u.arena[pi].c[right] = yi
	}
	u.arena[yi].c[d] = xi
	u.arena[xi].p = yi
}

// Insert [Tree.Insert]. Returns false and changes nothing if v is already
// present. The new node starts red and fixInsert restores properties 2 and 4.
// Time: O(D)
func (u *RBTree[T, S]) Insert(v T) bool {
	var pi S
	d := left
	for curI := u.root; curI != 0; {
		if v < u.vs[curI-1] {
			pi, d, curI = curI, left, u.arena[curI].c[left]
		} else if v > u.vs[curI-1] {
			pi, d, curI = curI, right, u.arena[curI].c[right]
		} else {
			return false
		}
	}
	zi := u.popFree()
	if zi == 0 {
		zi = S(len(u.arena))
		u.arena = append(u.arena, rbNode[S]{p: pi, red: true})
		u.vs = append(u.vs, v)
	} else {
		u.arena[zi] = rbNode[S]{p: pi, red: true}
		u.vs[zi-1] = v
	}
	if pi == 0 {
		u.root = zi
	} else {
		u.arena[pi].c[d] = zi
	}
	u.sz++
	u.fixInsert(zi)
	return true
}

// fixInsert repairs a possible red-red violation between zi and its parent.
// Case 1 (uncle red): recolor and continue from the grandparent.
// Case 2 (zi is the inner child, uncle black): rotate the parent away from
// zi, reducing to case 3.
// Case 3 (zi is the outer child, uncle black): recolor and rotate the
// grandparent towards the uncle, terminating the loop.
// d is the side of the parent within the grandparent; the mirrored cases
// share one body through it.
func (u *RBTree[T, S]) fixInsert(zi S) {
	for u.arena[u.arena[zi].p].red {
		pi := u.arena[zi].p
		gi := u.arena[pi].p
		var d side
		if pi == u.arena[gi].c[right] {
			d = right
		}
		if yi := u.arena[gi].c[d.opposite()]; u.arena[yi].red {
			u.arena[pi].red, u.arena[yi].red, u.arena[gi].red = false, false, true
			zi = gi
		} else {
			if zi == u.arena[pi].c[d.opposite()] {
				zi = pi
				u.rotate(zi, d)
			}
			pi = u.arena[zi].p
			gi = u.arena[pi].p
			u.arena[pi].red, u.arena[gi].red = false, true
			u.rotate(gi, d.opposite())
		}
	}
	u.arena[u.root].red = false
}

// transplant replaces the subtree rooting at ui with the one rooting at vi
// in ui's parent. vi may be the sentinel; its parent field is still written
// so that fixRemove can climb from it.
func (u *RBTree[T, S]) transplant(ui, vi S) {
	if pi := u.arena[ui].p; pi == 0 {
		u.root = vi
	} else if ui == u.arena[pi].c[left] {
		u.arena[pi].c[left] = vi
	} else {
		u.arena[pi].c[right] = vi
	}
	u.arena[vi].p = u.arena[ui].p
}

// Remove [Tree.Remove]. An absent v returns false and changes nothing.
// A node with two children swaps values with its in-order successor and the
// successor's slot is spliced out instead, so the structural removal always
// happens at a node with at most one child. Removing a black node breaks
// property 5 and fixRemove repairs it. The freed slot goes on the free list.
// Time: O(D)
func (u *RBTree[T, S]) Remove(v T) bool {
	zi := u.root
	for zi != 0 {
		if v < u.vs[zi-1] {
			zi = u.arena[zi].c[left]
		} else if v > u.vs[zi-1] {
			zi = u.arena[zi].c[right]
		} else {
			break
		}
	}
	if zi == 0 {
		return false
	}
	yi := zi
	if n := u.arena[zi]; n.c[left] != 0 && n.c[right] != 0 {
		for yi = n.c[right]; u.arena[yi].c[left] != 0; {
			yi = u.arena[yi].c[left]
		}
		u.vs[zi-1] = u.vs[yi-1]
	}
	xi := u.arena[yi].c[left] //yi has at most one child
	if xi == 0 {
		xi = u.arena[yi].c[right]
	}
	u.transplant(yi, xi)
	if !u.arena[yi].red {
		u.fixRemove(xi)
	}
	u.vs[yi-1] = *new(T)
	u.addFree(yi)
	u.sz--
	return true
}

// fixRemove compensates the missing black on every path through xi.
// Case 1 (sibling red): rotate the parent towards xi so the sibling becomes
// black, then continue with the new sibling.
// Case 2 (sibling black with two black children): recolor the sibling red
// and move the deficit up to the parent.
// Case 3 (sibling black, far child black, near child red): rotate the
// sibling away from xi, reducing to case 4.
// Case 4 (sibling black, far child red): recolor and rotate the parent
// towards xi, terminating the loop.
// d is the side of xi within its parent. When xi is the sentinel the side
// is still unambiguous because the sibling of a just-removed black node can
// never be the sentinel (property 5).
func (u *RBTree[T, S]) fixRemove(xi S) {
	for xi != u.root && !u.arena[xi].red {
		pi := u.arena[xi].p
		var d side
		if xi == u.arena[pi].c[right] {
			d = right
		}
		wi := u.arena[pi].c[d.opposite()]
		if u.arena[wi].red {
			u.arena[wi].red, u.arena[pi].red = false, true
			u.rotate(pi, d)
			wi = u.arena[pi].c[d.opposite()]
		}
		if w := u.arena[wi]; !u.arena[w.c[left]].red && !u.arena[w.c[right]].red {
			u.arena[wi].red = true
			xi = pi
		} else {
			if !u.arena[w.c[d.opposite()]].red {
				u.arena[w.c[d]].red, u.arena[wi].red = false, true
				u.rotate(wi, d.opposite())
				wi = u.arena[pi].c[d.opposite()]
			}
			u.arena[wi].red = u.arena[pi].red
			u.arena[pi].red = false
			u.arena[u.arena[wi].c[d.opposite()]].red = false
			u.rotate(pi, d)
			xi = u.root
		}
	}
	u.arena[xi].red = false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Has(v T) bool {
	for curI := u.root; curI != 0; {
		if v < u.vs[curI-1] {
			curI = u.arena[curI].c[left]
		} else if v > u.vs[curI-1] {
			curI = u.arena[curI].c[right]
		} else {
			return true
		}
	}
	return false
}

// Get the pointer to the element that's equal to v in the tree, nil if v
// isn't present. The pointer aims into the value arena, so any later Insert,
// Remove or Clear invalidates it; don't hold it across mutations.
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Get(v T) *T {
	for curI := u.root; curI != 0; {
		if v < u.vs[curI-1] {
			curI = u.arena[curI].c[left]
		} else if v > u.vs[curI-1] {
			curI = u.arena[curI].c[right]
		} else {
			return &u.vs[curI-1]
		}
	}
	return nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Minimum() (T, bool) {
	if curI := u.root; curI != 0 {
		for u.arena[curI].c[left] != 0 {
			curI = u.arena[curI].c[left]
		}
		return u.vs[curI-1], true
	}
	return *new(T), false
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Maximum() (T, bool) {
	if curI := u.root; curI != 0 {
		for u.arena[curI].c[right] != 0 {
			curI = u.arena[curI].c[right]
		}
		return u.vs[curI-1], true
	}
	return *new(T), false
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Predecessor(v T) (T, bool) {
	var pi S
	for curI := u.root; curI != 0; {
		if v <= u.vs[curI-1] {
			curI = u.arena[curI].c[left]
		} else {
			pi = curI
			curI = u.arena[curI].c[right]
		}
	}
	if pi == 0 {
		return *new(T), false
	}
	return u.vs[pi-1], true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Successor(v T) (T, bool) {
	var pi S
	for curI := u.root; curI != 0; {
		if v < u.vs[curI-1] {
			pi = curI
			curI = u.arena[curI].c[left]
		} else {
			curI = u.arena[curI].c[right]
		}
	}
	if pi == 0 {
		return *new(T), false
	}
	return u.vs[pi-1], true
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *RBTree[T, S]) Size() uint {
	return uint(u.sz)
}

// InOrder [Tree.InOrder]. The closure keeps its own descent stack; unlike a
// threaded traversal it never writes to the tree, so abandoning it half way
// is fine.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *RBTree[T, S]) InOrder() func() (T, bool) {
	st := make([]S, 0, bits.Len(uint(u.sz)))
	for curI := u.root; curI != 0; curI = u.arena[curI].c[left] {
		st = append(st, curI)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		r, has = u.vs[curI-1], true
		for curI = u.arena[curI].c[right]; curI != 0; curI = u.arena[curI].c[left] {
			st = append(st, curI)
		}
		return
	}
}

// Clear the tree, also resets memory of the underlying value array if reset
// is true. O(1) if reset==false. O(size) if reset==true. Doesn't allocate
// new arrays.
func (u *RBTree[T, S]) Clear(reset bool) {
	if reset {
		for i := range u.vs {
			u.vs[i] = *new(T)
		}
	}
	u.arena = u.arena[:1]
	u.arena[0] = rbNode[S]{}
	u.vs = u.vs[:0]
	u.root, u.free, u.sz = 0, 0, 0
}

// Corrupt [Tree.Corrupt]. Walks the whole tree and reports whether any of
// the red-black properties, the strict ordering, or the parent links are
// violated.
// Time: O(n)
func (u *RBTree[T, S]) Corrupt() bool {
	if u.arena[u.root].red {
		return true
	}
	if u.root != 0 && u.arena[u.root].p != 0 {
		return true
	}
	_, ok := u.audit(u.root, nil, nil)
	return !ok
}

// audit checks the subtree rooting at i: values strictly inside (lo, hi), no
// red node with a red child, children pointing back at i, and equal black
// counts on every path down to a leaf. Returns the black height of the
// subtree. Recursive.
func (u *RBTree[T, S]) audit(i S, lo, hi *T) (int, bool) {
	if i == 0 {
		return 1, true
	}
	n := u.arena[i]
	if lo != nil && u.vs[i-1] <= *lo {
		return 0, false
	}
	if hi != nil && u.vs[i-1] >= *hi {
		return 0, false
	}
	if n.red && (u.arena[n.c[left]].red || u.arena[n.c[right]].red) {
		return 0, false
	}
	if (n.c[left] != 0 && u.arena[n.c[left]].p != i) || (n.c[right] != 0 && u.arena[n.c[right]].p != i) {
		return 0, false
	}
	lb, lok := u.audit(n.c[left], lo, &u.vs[i-1])
	rb, rok := u.audit(n.c[right], &u.vs[i-1], hi)
	if !lok || !rok || lb != rb {
		return 0, false
	}
	if !n.red {
		lb++
	}
	return lb, true
}
