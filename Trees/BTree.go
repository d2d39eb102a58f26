package Trees

import "golang.org/x/exp/constraints"

// BTree is a B-tree of minimum degree t with no repeated values: every node
// except the root holds between t-1 and 2t-1 keys and all leaves sit at the
// same depth, giving a height within O(log_t(n)). Insertion splits every
// full node on the way down, so a split never has to propagate back up.
// It only grows; removal is not supported.
type BTree[T constraints.Ordered] struct {
	root *bNode[T]
	t    int
	sz   uint
}

// NewB returns an empty BTree of minimum degree t. Panics if t < 2, as a
// node must be able to hold at least one key after a split.
func NewB[T constraints.Ordered](t int) *BTree[T] {
	if t < 2 {
		panic("BTree: minimum degree must be at least 2")
	}
	return &BTree[T]{root: &bNode[T]{}, t: t}
}

// splitChild splits the full child x.cs[i] around its median key, which
// moves up into x. x itself is known to have room.
func (u *BTree[T]) splitChild(x *bNode[T], i int) {
	y := x.cs[i]
	z := &bNode[T]{ks: append([]T(nil), y.ks[u.t:]...)}
	if len(y.cs) > 0 {
		z.cs = append([]*bNode[T](nil), y.cs[u.t:]...)
		y.cs = y.cs[:u.t]
	}
	mid := y.ks[u.t-1]
	y.ks = y.ks[:u.t-1]
	x.ks = append(x.ks, *new(T))
	copy(x.ks[i+1:], x.ks[i:])
	x.ks[i] = mid
	x.cs = append(x.cs, nil)
	copy(x.cs[i+2:], x.cs[i+1:])
	x.cs[i+1] = z
}

func (u *BTree[T]) insertNonFull(x *bNode[T], v T) {
	i := len(x.ks) - 1
	if len(x.cs) == 0 {
		x.ks = append(x.ks, *new(T))
		for ; i >= 0 && v < x.ks[i]; i-- {
			x.ks[i+1] = x.ks[i]
		}
		x.ks[i+1] = v
		return
	}
	for ; i >= 0 && v < x.ks[i]; i-- {
	}
	i++
	if len(x.cs[i].ks) == 2*u.t-1 {
		u.splitChild(x, i)
		if v > x.ks[i] {
			i++
		}
	}
	u.insertNonFull(x.cs[i], v)
}

// Insert v into the tree. Returning true if v isn't already in it. A full
// root splits first, growing the tree by one level; every other full node
// on the descent path splits before it is entered.
// Time: O(t*log_t(n))
func (u *BTree[T]) Insert(v T) bool {
	if u.Has(v) {
		return false
	}
	if len(u.root.ks) == 2*u.t-1 {
		r := u.root
		u.root = &bNode[T]{cs: []*bNode[T]{r}}
		u.splitChild(u.root, 0)
	}
	u.insertNonFull(u.root, v)
	u.sz++
	return true
}

// Has reports whether v is in the tree.
// Time: O(t*log_t(n)); Space: O(1)
func (u *BTree[T]) Has(v T) bool {
	for x := u.root; ; {
		i := 0
		for i < len(x.ks) && v > x.ks[i] {
			i++
		}
		if i < len(x.ks) && v == x.ks[i] {
			return true
		}
		if len(x.cs) == 0 {
			return false
		}
		x = x.cs[i]
	}
}

// Minimum element in the tree; false if the tree is empty.
// Time: O(log_t(n)); Space: O(1)
func (u *BTree[T]) Minimum() (T, bool) {
	if u.sz == 0 {
		return *new(T), false
	}
	x := u.root
	for len(x.cs) > 0 {
		x = x.cs[0]
	}
	return x.ks[0], true
}

// Maximum element in the tree; false if the tree is empty.
// Time: O(log_t(n)); Space: O(1)
func (u *BTree[T]) Maximum() (T, bool) {
	if u.sz == 0 {
		return *new(T), false
	}
	x := u.root
	for len(x.cs) > 0 {
		x = x.cs[len(x.cs)-1]
	}
	return x.ks[len(x.ks)-1], true
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *BTree[T]) Size() uint {
	return u.sz
}

// InOrder returns all values in the tree in sorted order as a function
// iterator. The closure resumes mid-node, alternating between a key and the
// subtree after it.
// Time: f(): amortized O(1) at each call. Space: O(log_t(n))
func (u *BTree[T]) InOrder() func() (T, bool) {
	var st []bPos[T]
	if u.sz > 0 {
		for x := u.root; ; x = x.cs[0] {
			st = append(st, bPos[T]{x, 0})
			if len(x.cs) == 0 {
				break
			}
		}
	}
	return func() (r T, has bool) {
		for len(st) > 0 {
			top := &st[len(st)-1]
			if top.i == len(top.n.ks) {
				st = st[:len(st)-1]
				continue
			}
			r, has = top.n.ks[top.i], true
			top.i++
			if len(top.n.cs) > 0 {
				for x := top.n.cs[top.i]; ; x = x.cs[0] {
					st = append(st, bPos[T]{x, 0})
					if len(x.cs) == 0 {
						break
					}
				}
			}
			return
		}
		return
	}
}

// Corrupt reports whether any B-tree property is violated: a node outside
// its key-count bounds, keys out of order or out of their separator range,
// an internal node without exactly one more child than keys, leaves at
// unequal depths, or a key count disagreeing with Size.
// Time: O(n)
func (u *BTree[T]) Corrupt() bool {
	leafDepth := -1
	n, ok := u.audit(u.root, nil, nil, 0, &leafDepth)
	return !ok || n != u.sz
}

func (u *BTree[T]) audit(x *bNode[T], lo, hi *T, d int, leafDepth *int) (uint, bool) {
	if len(x.ks) > 2*u.t-1 || (x != u.root && len(x.ks) < u.t-1) {
		return 0, false
	}
	for i := range x.ks {
		if lo != nil && x.ks[i] <= *lo {
			return 0, false
		}
		if hi != nil && x.ks[i] >= *hi {
			return 0, false
		}
		if i > 0 && x.ks[i] <= x.ks[i-1] {
			return 0, false
		}
	}
	if len(x.cs) == 0 {
		if *leafDepth == -1 {
			*leafDepth = d
		}
		return uint(len(x.ks)), *leafDepth == d
	}
	if len(x.cs) != len(x.ks)+1 {
		return 0, false
	}
	total := uint(len(x.ks))
	for i, c := range x.cs {
		clo, chi := lo, hi
		if i > 0 {
			clo = &x.ks[i-1]
		}
		if i < len(x.ks) {
			chi = &x.ks[i]
		}
		n, ok := u.audit(c, clo, chi, d+1, leafDepth)
		if !ok {
			return 0, false
		}
		total += n
	}
	return total, true
}
