package Trees

import "golang.org/x/exp/constraints"

// BSTree is a plain binary search tree with no repeated values and no
// rebalancing: the depth D depends entirely on the insertion order and
// degrades to n on sorted input. Use [RBTree] when that matters.
// All absent children point at a shared self-looping sentinel node instead
// of nil, so descents never branch on nil. Insert and Remove recurse with a
// pointer to the child link so relinking happens in place.
type BSTree[T constraints.Ordered] struct {
	nilPtr bstPtr[T]
	root   bstPtr[T]
	sz     uint
}

// NewBST returns an empty BSTree.
func NewBST[T constraints.Ordered]() *BSTree[T] {
	n := &bstNode[T]{}
	n.l, n.r = n, n
	return &BSTree[T]{nilPtr: n, root: n}
}

func (u *BSTree[T]) insert(curPtr *bstPtr[T], v T) bool {
	if cur := *curPtr; cur == u.nilPtr {
		*curPtr = &bstNode[T]{v: v, l: u.nilPtr, r: u.nilPtr}
		u.sz++
		return true
	} else if v < cur.v {
		return u.insert(&cur.l, v)
	} else if v > cur.v {
		return u.insert(&cur.r, v)
	} else {
		return false
	}
}

// Insert [Tree.Insert]
// Time: O(D); Space: O(D)
func (u *BSTree[T]) Insert(v T) bool {
	return u.insert(&u.root, v)
}

func (u *BSTree[T]) remove(curPtr *bstPtr[T], v T) bool {
	cur := *curPtr
	if cur == u.nilPtr {
		return false
	}
	if v < cur.v {
		return u.remove(&cur.l, v)
	}
	if v > cur.v {
		return u.remove(&cur.r, v)
	}
	if cur.l != u.nilPtr && cur.r != u.nilPtr {
		t := &cur.r //leftmost node of the right subtree replaces cur
		for (*t).l != u.nilPtr {
			t = &(*t).l
		}
		cur.v = (*t).v
		*t = (*t).r
	} else if cur.l != u.nilPtr {
		*curPtr = cur.l
	} else {
		*curPtr = cur.r
	}
	u.sz--
	return true
}

// Remove [Tree.Remove]. A node with two children takes over the value of
// its in-order successor and the successor node is unlinked in its place.
// Time: O(D); Space: O(D)
func (u *BSTree[T]) Remove(v T) bool {
	return u.remove(&u.root, v)
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u BSTree[T]) Has(v T) bool {
	for cur := u.root; cur != u.nilPtr; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u BSTree[T]) Minimum() (T, bool) {
	if cur := u.root; cur != u.nilPtr {
		for cur.l != u.nilPtr {
			cur = cur.l
		}
		return cur.v, true
	}
	return *new(T), false
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u BSTree[T]) Maximum() (T, bool) {
	if cur := u.root; cur != u.nilPtr {
		for cur.r != u.nilPtr {
			cur = cur.r
		}
		return cur.v, true
	}
	return *new(T), false
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u BSTree[T]) Predecessor(v T) (T, bool) {
	p := u.nilPtr
	for cur := u.root; cur != u.nilPtr; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == u.nilPtr {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u BSTree[T]) Successor(v T) (T, bool) {
	p := u.nilPtr
	for cur := u.root; cur != u.nilPtr; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == u.nilPtr {
		return *new(T), false
	}
	return p.v, true
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u BSTree[T]) Size() uint {
	return u.sz
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u BSTree[T]) InOrder() func() (T, bool) {
	var st []bstPtr[T]
	for cur := u.root; cur != u.nilPtr; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		r, has = cur.v, true
		for cur = cur.r; cur != u.nilPtr; cur = cur.l {
			st = append(st, cur)
		}
		return
	}
}

// PreOrder returns all values in the tree in root-left-right order as a
// function iterator.
// Time: f(): O(1) at each call. Space: O(D)
func (u BSTree[T]) PreOrder() func() (T, bool) {
	var st []bstPtr[T]
	if u.root != u.nilPtr {
		st = append(st, u.root)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		r, has = cur.v, true
		if cur.r != u.nilPtr {
			st = append(st, cur.r)
		}
		if cur.l != u.nilPtr {
			st = append(st, cur.l)
		}
		return
	}
}

// PostOrder returns all values in the tree in left-right-root order as a
// function iterator. A node is yielded once its right subtree is exhausted,
// tracked by the last yielded node.
// Time: f(): amortized O(1) at each call. Space: O(D)
func (u BSTree[T]) PostOrder() func() (T, bool) {
	var st []bstPtr[T]
	for cur := u.root; cur != u.nilPtr; cur = cur.l {
		st = append(st, cur)
	}
	last := u.nilPtr
	return func() (r T, has bool) {
		for len(st) > 0 {
			cur := st[len(st)-1]
			if cur.r != u.nilPtr && last != cur.r {
				for c := cur.r; c != u.nilPtr; c = c.l {
					st = append(st, c)
				}
				continue
			}
			st = st[:len(st)-1]
			last = cur
			return cur.v, true
		}
		return
	}
}

// Corrupt [Tree.Corrupt]. Reports whether the ordering is violated anywhere
// or the node count disagrees with Size.
// Time: O(n)
func (u BSTree[T]) Corrupt() bool {
	n, ok := u.audit(u.root, nil, nil)
	return !ok || n != u.sz
}

func (u BSTree[T]) audit(cur bstPtr[T], lo, hi *T) (uint, bool) {
	if cur == u.nilPtr {
		return 0, true
	}
	if lo != nil && cur.v <= *lo {
		return 0, false
	}
	if hi != nil && cur.v >= *hi {
		return 0, false
	}
	ln, lok := u.audit(cur.l, lo, &cur.v)
	rn, rok := u.audit(cur.r, &cur.v, hi)
	return ln + rn + 1, lok && rok
}
