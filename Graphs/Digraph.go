package Graphs

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// adjacency is the vertex and edge bookkeeping shared by [Digraph] and
// [Graph]: a set of arcs keyed by their tail. An undirected graph is the
// special case where every arc has a mirror.
//
// V is constrained to an ordered type so that Vertices, Neighbors, and the
// traversals can report in sorted order and stay deterministic between runs.
type adjacency[V constraints.Ordered] struct {
	adj map[V]map[V]struct{}
}

// AddVertex makes v a vertex with no edges. Returning false if it already
// was one.
// Time: O(1)
func (u *adjacency[V]) AddVertex(v V) bool {
	if _, ok := u.adj[v]; ok {
		return false
	}
	u.adj[v] = make(map[V]struct{})
	return true
}

// HasVertex reports whether v is a vertex.
// Time: O(1)
func (u *adjacency[V]) HasVertex(v V) bool {
	_, ok := u.adj[v]
	return ok
}

// HasEdge reports whether the edge from->to is present.
// Time: O(1)
func (u *adjacency[V]) HasEdge(from, to V) bool {
	_, ok := u.adj[from][to]
	return ok
}

// Vertices in sorted order.
// Time: O(V*log(V))
func (u *adjacency[V]) Vertices() []V {
	vs := make([]V, 0, len(u.adj))
	for v := range u.adj {
		vs = append(vs, v)
	}
	slices.Sort(vs)
	return vs
}

// Neighbors of v in sorted order, nil when v isn't a vertex. For a
// [Digraph] these are the heads of v's outgoing edges.
// Time: O(d*log(d))
func (u *adjacency[V]) Neighbors(v V) []V {
	es, ok := u.adj[v]
	if !ok {
		return nil
	}
	ns := make([]V, 0, len(es))
	for w := range es {
		ns = append(ns, w)
	}
	slices.Sort(ns)
	return ns
}

// Order is the number of vertices.
func (u *adjacency[V]) Order() int {
	return len(u.adj)
}

// BFS lists the vertices reachable from src in breadth first order, ties
// broken by expanding neighbors in sorted order. Nil when src isn't a
// vertex.
// Time: O(V*log(V)+E)
func (u *adjacency[V]) BFS(src V) []V {
	if _, ok := u.adj[src]; !ok {
		return nil
	}
	seen := map[V]struct{}{src: {}}
	order := make([]V, 0, len(u.adj))
	for queue := []V{src}; len(queue) > 0; {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, w := range u.Neighbors(v) {
			if _, ok := seen[w]; !ok {
				seen[w] = struct{}{}
				queue = append(queue, w)
			}
		}
	}
	return order
}

// DFS lists the vertices reachable from src in depth first preorder, ties
// broken by expanding neighbors in sorted order. Nil when src isn't a
// vertex.
// Time: O(V*log(V)+E)
func (u *adjacency[V]) DFS(src V) []V {
	if _, ok := u.adj[src]; !ok {
		return nil
	}
	seen := make(map[V]struct{}, len(u.adj))
	order := make([]V, 0, len(u.adj))
	for st := []V{src}; len(st) > 0; {
		v := st[len(st)-1]
		st = st[:len(st)-1]
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		order = append(order, v)
		ns := u.Neighbors(v)
		for i := len(ns) - 1; i > -1; i-- { //reversed so the least unseen neighbor pops first
			if _, ok := seen[ns[i]]; !ok {
				st = append(st, ns[i])
			}
		}
	}
	return order
}

func (u *adjacency[V]) addArc(from, to V) bool {
	if _, ok := u.adj[from][to]; ok {
		return false
	}
	u.adj[from][to] = struct{}{}
	return true
}

func (u *adjacency[V]) removeArc(from, to V) bool {
	if _, ok := u.adj[from][to]; !ok {
		return false
	}
	delete(u.adj[from], to)
	return true
}

func (u *adjacency[V]) dropVertex(v V) bool {
	if _, ok := u.adj[v]; !ok {
		return false
	}
	delete(u.adj, v)
	for _, es := range u.adj {
		delete(es, v)
	}
	return true
}

// Digraph is a directed graph whose edges live in adjacency sets, so
// parallel edges collapse and edge lookups cost O(1).
type Digraph[V constraints.Ordered] struct {
	adjacency[V]
}

// NewDigraph returns an empty directed graph.
func NewDigraph[V constraints.Ordered]() *Digraph[V] {
	return &Digraph[V]{adjacency[V]{make(map[V]map[V]struct{})}}
}

// AddEdge inserts the edge from->to, adding either endpoint that isn't a
// vertex yet. Returning false if the edge already existed.
// Time: O(1)
func (u *Digraph[V]) AddEdge(from, to V) bool {
	u.AddVertex(from)
	u.AddVertex(to)
	return u.addArc(from, to)
}

// RemoveEdge deletes the edge from->to, returning false if it wasn't
// present. The endpoints stay vertices.
// Time: O(1)
func (u *Digraph[V]) RemoveEdge(from, to V) bool {
	return u.removeArc(from, to)
}

// RemoveVertex deletes v and every edge into or out of it, returning false
// if v wasn't a vertex.
// Time: O(V)
func (u *Digraph[V]) RemoveVertex(v V) bool {
	return u.dropVertex(v)
}

// TopoSort orders the vertices so every edge points from an earlier one to
// a later one. The order is the lexicographically determined one a sorted
// depth first sweep produces; ok is false when a cycle makes the ordering
// impossible, and the partial order is withheld.
// Time: O(V*log(V)+E)
func (u *Digraph[V]) TopoSort() ([]V, bool) {
	const (
		white = byte(iota) //never seen
		gray               //on the stack
		black              //finished
	)
	color := make(map[V]byte, len(u.adj))
	order := make([]V, 0, len(u.adj))
	type frame struct {
		v    V
		next []V //successors not yet expanded
	}
	for _, s := range u.Vertices() {
		if color[s] != white {
			continue
		}
		color[s] = gray
		for st := []frame{{s, u.Neighbors(s)}}; len(st) > 0; {
			top := &st[len(st)-1]
			if len(top.next) == 0 {
				color[top.v] = black
				order = append(order, top.v)
				st = st[:len(st)-1]
				continue
			}
			w := top.next[0]
			top.next = top.next[1:] //before the push below moves the frame
			switch color[w] {
			case gray: //back edge
				return nil, false
			case white:
				color[w] = gray
				st = append(st, frame{w, u.Neighbors(w)})
			}
		}
	}
	slices.Reverse(order)
	return order, true
}
