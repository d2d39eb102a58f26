package Graphs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

var rg = *rand.New(rand.NewSource(0))

func TestDigraph_Vertices(t *testing.T) {
	g := NewDigraph[string]()
	assert.Zero(t, g.Order())
	assert.True(t, g.AddVertex("a"))
	assert.False(t, g.AddVertex("a"), "vertex added twice")
	assert.True(t, g.HasVertex("a"))
	assert.False(t, g.HasVertex("b"))
	assert.True(t, g.AddEdge("a", "b"), "edge a->b not added")
	assert.True(t, g.HasVertex("b"), "endpoint b wasn't auto added")
	assert.Equal(t, 2, g.Order())
	assert.True(t, g.RemoveVertex("b"))
	assert.False(t, g.RemoveVertex("b"), "vertex removed twice")
	assert.False(t, g.HasEdge("a", "b"), "edge survived its endpoint")
	assert.Equal(t, []string{"a"}, g.Vertices())
}

func TestDigraph_Edges(t *testing.T) {
	g := NewDigraph[int]()
	assert.True(t, g.AddEdge(1, 2))
	assert.False(t, g.AddEdge(1, 2), "edge added twice")
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1), "directed edge mirrored")
	assert.False(t, g.RemoveEdge(2, 1))
	assert.True(t, g.RemoveEdge(1, 2))
	assert.False(t, g.RemoveEdge(1, 2), "edge removed twice")
	assert.True(t, g.HasVertex(1), "endpoint removed with its edge")
	assert.True(t, g.HasVertex(2), "endpoint removed with its edge")

	g.AddEdge(3, 1)
	g.AddEdge(3, 2)
	g.AddEdge(2, 3)
	assert.Equal(t, []int{1, 2}, g.Neighbors(3))
	assert.Nil(t, g.Neighbors(99), "neighbors of a non vertex")
	assert.True(t, g.RemoveVertex(3))
	assert.False(t, g.HasEdge(2, 3), "incoming edge survived the vertex")
	assert.Empty(t, g.Neighbors(2))
}

func TestDigraph_Traversals(t *testing.T) {
	g := NewDigraph[int]()
	//insertion order must not matter, only the sorted expansion does.
	for _, e := range [][2]int{{3, 4}, {1, 3}, {4, 5}, {1, 2}, {2, 4}} {
		g.AddEdge(e[0], e[1])
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, g.BFS(1))
	assert.Equal(t, []int{1, 2, 4, 5, 3}, g.DFS(1))
	assert.Equal(t, []int{4, 5}, g.BFS(4))
	assert.Nil(t, g.BFS(99), "traversal from a non vertex")
	assert.Nil(t, g.DFS(99), "traversal from a non vertex")
}

func TestDigraph_TopoSort(t *testing.T) {
	g := NewDigraph[int]()
	for _, e := range [][2]int{
		{5, 11}, {7, 11}, {7, 8}, {3, 8}, {3, 10}, {11, 2}, {11, 9}, {11, 10}, {8, 9},
	} {
		g.AddEdge(e[0], e[1])
	}
	order, ok := g.TopoSort()
	assert.True(t, ok)
	assert.Equal(t, []int{7, 5, 11, 3, 10, 8, 9, 2}, order)
	pos := make(map[int]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, from := range g.Vertices() {
		for _, to := range g.Neighbors(from) {
			assert.Less(t, pos[from], pos[to], "edge %d->%d points backwards", from, to)
		}
	}

	g.AddEdge(9, 7) //closes the cycle 7->8->9->7
	order, ok = g.TopoSort()
	assert.False(t, ok, "cycle went unnoticed")
	assert.Nil(t, order)
}

func TestDigraph_TopoSortEdge(t *testing.T) {
	{
		order, ok := NewDigraph[int]().TopoSort()
		assert.True(t, ok)
		assert.Empty(t, order)
	}
	{
		g := NewDigraph[string]()
		g.AddEdge("a", "a")
		_, ok := g.TopoSort()
		assert.False(t, ok, "self loop went unnoticed")
	}
}
