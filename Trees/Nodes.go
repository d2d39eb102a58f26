package Trees

import "golang.org/x/exp/constraints"

// side of a child within its parent.
type side byte

const (
	left side = iota
	right
)

// opposite side, left<->right.
func (d side) opposite() side {
	return d ^ 1
}

// A node slot in the RBTree arena.
// The zero value is meaningful: slot 0 is the shared sentinel standing in for
// every absent leaf and the parent of the root. Its children and parent loop
// back to itself (index 0) and it is permanently black (red==false).
type rbNode[S constraints.Unsigned] struct {
	c   [2]S //children, indexed by side
	p   S
	red bool
}

// A node in the BSTree
// The zero value is meaningless.
type bstNode[T any] struct {
	v    T
	l, r bstPtr[T]
}

// Pointer to a bstNode
// nil Pointer is meaningless. A bstPtr is considered to be nil if the
// pointer is equal to the nilPtr in BSTree. The value of this node has
// both l, r = itself and v = the zero value of T.
type bstPtr[T any] *bstNode[T]

// A node in the BTree holding up to 2t-1 keys in sorted order. Leaves have
// no children; internal nodes have len(ks)+1 of them, cs[i] holding the
// keys strictly between ks[i-1] and ks[i].
type bNode[T constraints.Ordered] struct {
	ks []T
	cs []*bNode[T]
}

// bPos is a resume point inside a bNode for the InOrder closure: the next
// thing to do at n is yield ks[i].
type bPos[T constraints.Ordered] struct {
	n *bNode[T]
	i int
}
