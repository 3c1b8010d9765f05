package basegraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTriangle(t *testing.T) (*Graph, [3]int, [3]int) {
	t.Helper()
	g := NewGraph()
	var nodes [3]int
	for i := range nodes {
		nodes[i] = g.AddNode()
	}
	var edges [3]int
	edges[0] = g.AddEdge(nodes[0], nodes[1])
	edges[1] = g.AddEdge(nodes[1], nodes[2])
	edges[2] = g.AddEdge(nodes[0], nodes[2])
	return g, nodes, edges
}

func TestGraphBasics(t *testing.T) {
	g, _, _ := buildTriangle(t)
	require.Equal(t, 3, g.NumberOfNodes())
	require.Equal(t, 3, g.NumberOfEdges())
	require.Equal(t, 3, g.NodeIDUpperBound())
	require.Equal(t, 3, g.EdgeIDUpperBound())
}

func TestGraphUVOrdering(t *testing.T) {
	g := NewGraph()
	a := g.AddNode()
	b := g.AddNode()
	e := g.AddEdge(b, a)
	u, v := g.UV(e)
	require.Less(t, u, v)
	require.Equal(t, a, u)
	require.Equal(t, b, v)
}

func TestGraphAdjacencySortedByNeighbor(t *testing.T) {
	g := NewGraph()
	for i := 0; i < 4; i++ {
		g.AddNode()
	}
	g.AddEdge(0, 3)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)

	adj := g.Adjacency(0)
	require.Len(t, adj, 3)
	require.Equal(t, 1, adj[0].Node)
	require.Equal(t, 2, adj[1].Node)
	require.Equal(t, 3, adj[2].Node)
}

func TestRemoveNodeLeavesGap(t *testing.T) {
	g, nodes, _ := buildTriangle(t)
	g.RemoveNode(nodes[1])

	require.Equal(t, 2, g.NumberOfNodes())
	require.Equal(t, 3, g.NodeIDUpperBound(), "upper bound must not shrink")
	require.Equal(t, 1, g.NumberOfEdges(), "edge 0-2 should survive")
	require.False(t, g.HasNode(nodes[1]))
}

func TestObjectiveEvalNodeLabels(t *testing.T) {
	g := NewGraph()
	for i := 0; i < 4; i++ {
		g.AddNode()
	}
	e01 := g.AddEdge(0, 1)
	e23 := g.AddEdge(2, 3)
	e02 := g.AddEdge(0, 2)
	e13 := g.AddEdge(1, 3)
	e03 := g.AddEdge(0, 3)
	e12 := g.AddEdge(1, 2)

	weights := NewEdgeMap[float64](g.EdgeIDUpperBound(), 0)
	weights.Set(e01, 5)
	weights.Set(e23, 5)
	weights.Set(e02, -3)
	weights.Set(e13, -3)
	weights.Set(e03, -3)
	weights.Set(e12, -3)

	obj := NewObjective(g, weights)
	labels := []int{0, 0, 0, 0}
	require.InDelta(t, 0, obj.EvalNodeLabels(labels), 1e-9)

	labels = []int{0, 0, 1, 1}
	require.InDelta(t, -12, obj.EvalNodeLabels(labels), 1e-9)
}
