package Graphs

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Graph is an undirected graph. Every edge is stored as a pair of mirrored
// arcs, so the directed plumbing serves unchanged and HasEdge is symmetric.
type Graph[V constraints.Ordered] struct {
	adjacency[V]
}

// NewGraph returns an empty undirected graph.
func NewGraph[V constraints.Ordered]() *Graph[V] {
	return &Graph[V]{adjacency[V]{make(map[V]map[V]struct{})}}
}

// AddEdge inserts the edge between a and b, adding either endpoint that
// isn't a vertex yet. Returning false if the edge already existed.
// Time: O(1)
func (u *Graph[V]) AddEdge(a, b V) bool {
	u.AddVertex(a)
	u.AddVertex(b)
	if !u.addArc(a, b) {
		return false
	}
	u.addArc(b, a) //no-op for a self loop
	return true
}

// RemoveEdge deletes the edge between a and b, returning false if it wasn't
// present. The endpoints stay vertices.
// Time: O(1)
func (u *Graph[V]) RemoveEdge(a, b V) bool {
	if !u.removeArc(a, b) {
		return false
	}
	u.removeArc(b, a)
	return true
}

// RemoveVertex deletes v, unlinking it from the neighbor sets of every
// adjacent vertex. Returning false if v wasn't a vertex.
// Time: O(V)
func (u *Graph[V]) RemoveVertex(v V) bool {
	return u.dropVertex(v)
}

// ConnectedComponents partitions the vertices by reachability. Components
// come out ordered by their least vertex and sorted within.
// Time: O(V*log(V)+E)
func (u *Graph[V]) ConnectedComponents() [][]V {
	seen := make(map[V]struct{}, len(u.adj))
	var comps [][]V
	for _, s := range u.Vertices() {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		comp := []V{s}
		for queue := []V{s}; len(queue) > 0; {
			v := queue[0]
			queue = queue[1:]
			for _, w := range u.Neighbors(v) {
				if _, ok := seen[w]; !ok {
					seen[w] = struct{}{}
					comp = append(comp, w)
					queue = append(queue, w)
				}
			}
		}
		slices.Sort(comp)
		comps = append(comps, comp)
	}
	return comps
}
