package Sets

import "fmt"

// DisjointSet tracks a partition of the elements 0..n-1 into mergeable
// groups. Find flattens every chain it walks, and merges attach the
// shallower tree under the deeper, so repeated queries approach constant
// time. Elements outside the universe are a programmer error and panic.
type DisjointSet struct {
	parent []int
	rank   []byte
	count  int
}

// NewDisjointSet returns a DisjointSet of n singleton groups.
func NewDisjointSet(n int) *DisjointSet {
	u := &DisjointSet{make([]int, n), make([]byte, n), n}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

func (u *DisjointSet) check(a int) {
	if a < 0 || a >= len(u.parent) {
		panic(fmt.Sprintf("DisjointSet: element %d out of range [0, %d)", a, len(u.parent)))
	}
}

// Find the representative of a's group. Two elements are in one group
// exactly when their representatives are equal.
// Time: amortized near O(1)
func (u *DisjointSet) Find(a int) int {
	u.check(a)
	r := a
	for u.parent[r] != r {
		r = u.parent[r]
	}
	for u.parent[a] != r {
		a, u.parent[a] = u.parent[a], r
	}
	return r
}

// Union merges the groups of a and b. Returning false if they already were
// one group.
// Time: amortized near O(1)
func (u *DisjointSet) Union(a, b int) bool {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return false
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
	u.count--
	return true
}

// Connected reports whether a and b are in one group.
// Time: amortized near O(1)
func (u *DisjointSet) Connected(a, b int) bool {
	return u.Find(a) == u.Find(b)
}

// Count of groups left.
func (u *DisjointSet) Count() int {
	return u.count
}

// Len of the universe.
func (u *DisjointSet) Len() int {
	return len(u.parent)
}
