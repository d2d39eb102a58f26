package Spatial

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Rect is the axis aligned rectangle [X, X+W) x [Y, Y+H). W and H must not
// be negative.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies in u. Low edges are inclusive, high edges
// exclusive, so the four quadrants of a split tile their parent exactly.
func (u Rect) Contains(p Point) bool {
	return u.X <= p.X && p.X < u.X+u.W && u.Y <= p.Y && p.Y < u.Y+u.H
}

// Intersects reports whether u and o overlap, touching edges included.
func (u Rect) Intersects(o Rect) bool {
	return !(o.X > u.X+u.W || o.X+o.W < u.X || o.Y > u.Y+u.H || o.Y+o.H < u.Y)
}

// Quadrant names follow screen coordinates: y grows downward, so north is
// the low y half. A node is split exactly when nw isn't nil.
type qtNode struct {
	bound          Rect
	points         []Point
	nw, ne, sw, se *qtNode
}

func (u *qtNode) subdivide() {
	hw, hh := u.bound.W/2, u.bound.H/2
	u.nw = &qtNode{bound: Rect{u.bound.X, u.bound.Y, hw, hh}}
	u.ne = &qtNode{bound: Rect{u.bound.X + hw, u.bound.Y, hw, hh}}
	u.sw = &qtNode{bound: Rect{u.bound.X, u.bound.Y + hh, hw, hh}}
	u.se = &qtNode{bound: Rect{u.bound.X + hw, u.bound.Y + hh, hw, hh}}
}

func (u *qtNode) insert(p Point, capacity int) bool {
	if !u.bound.Contains(p) {
		return false
	}
	if len(u.points) < capacity {
		u.points = append(u.points, p)
		return true
	}
	if u.nw == nil {
		u.subdivide()
	}
	return u.nw.insert(p, capacity) || u.ne.insert(p, capacity) ||
		u.sw.insert(p, capacity) || u.se.insert(p, capacity)
}

func (u *qtNode) query(r Rect, found *[]Point) {
	if !u.bound.Intersects(r) {
		return
	}
	for _, p := range u.points {
		if r.Contains(p) {
			*found = append(*found, p)
		}
	}
	if u.nw != nil {
		u.nw.query(r, found)
		u.ne.query(r, found)
		u.sw.query(r, found)
		u.se.query(r, found)
	}
}

// QuadTree partitions a rectangle of the plane for region queries. A node
// buckets up to capacity points; one more splits it into four quadrant
// children that take the overflow, while the points already bucketed stay
// where they are. Repeated points are kept, so it behaves as a multiset.
type QuadTree struct {
	root     *qtNode
	capacity int
	sz       int
}

// NewQuad returns an empty QuadTree over the boundary b bucketing up to
// capacity points per node. Capacity below 1 panics.
func NewQuad(b Rect, capacity int) *QuadTree {
	if capacity < 1 {
		panic("QuadTree: capacity must be at least 1")
	}
	return &QuadTree{&qtNode{bound: b}, capacity, 0}
}

// Insert adds p, returning false when p lies outside the boundary.
// Time: O(D)
func (u *QuadTree) Insert(p Point) bool {
	if !u.root.insert(p, u.capacity) {
		return false
	}
	u.sz++
	return true
}

// Query lists the points lying in r, in no particular order.
// Time: O(D+K) for K reported points
func (u *QuadTree) Query(r Rect) []Point {
	var found []Point
	u.root.query(r, &found)
	return found
}

// Len is the number of points held.
func (u *QuadTree) Len() int {
	return u.sz
}
