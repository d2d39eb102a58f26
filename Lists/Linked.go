package Lists

type lNode[T comparable] struct {
	v  T
	nx *lNode[T]
}

// Linked is a singly linked list keeping only a head pointer: front
// operations are constant time, back operations walk the whole chain.
type Linked[T comparable] struct {
	head *lNode[T]
	sz   uint
}

// NewLinked returns an empty Linked list.
func NewLinked[T comparable]() *Linked[T] {
	return &Linked[T]{}
}

// PushFront prepends v.
// Time: O(1)
func (u *Linked[T]) PushFront(v T) {
	u.head = &lNode[T]{v, u.head}
	u.sz++
}

// PushBack appends v.
// Time: O(n)
func (u *Linked[T]) PushBack(v T) {
	n := &lNode[T]{v: v}
	if u.head == nil {
		u.head = n
	} else {
		cur := u.head
		for cur.nx != nil {
			cur = cur.nx
		}
		cur.nx = n
	}
	u.sz++
}

// PopFront removes and returns the first value. Returning false if the list
// is empty.
// Time: O(1)
func (u *Linked[T]) PopFront() (T, bool) {
	if u.head == nil {
		return *new(T), false
	}
	n := u.head
	u.head = n.nx
	n.nx = nil
	u.sz--
	return n.v, true
}

// PopBack removes and returns the last value. Returning false if the list
// is empty.
// Time: O(n)
func (u *Linked[T]) PopBack() (T, bool) {
	if u.head == nil {
		return *new(T), false
	}
	if u.head.nx == nil {
		v := u.head.v
		u.head = nil
		u.sz--
		return v, true
	}
	cur := u.head
	for cur.nx.nx != nil {
		cur = cur.nx
	}
	v := cur.nx.v
	cur.nx = nil
	u.sz--
	return v, true
}

// Has reports whether v is in the list.
// Time: O(n)
func (u *Linked[T]) Has(v T) bool {
	for cur := u.head; cur != nil; cur = cur.nx {
		if cur.v == v {
			return true
		}
	}
	return false
}

// Size of the list.
func (u *Linked[T]) Size() uint {
	return u.sz
}

// Values copies the list front to back into a new slice.
func (u *Linked[T]) Values() []T {
	s := make([]T, 0, u.sz)
	for cur := u.head; cur != nil; cur = cur.nx {
		s = append(s, cur.v)
	}
	return s
}

// Each calls f on every value front to back, stopping early when f returns
// false.
func (u *Linked[T]) Each(f func(v T) bool) {
	for cur := u.head; cur != nil; cur = cur.nx {
		if !f(cur.v) {
			return
		}
	}
}
