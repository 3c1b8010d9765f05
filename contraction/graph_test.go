package contraction

import (
	"testing"

	"github.com/hmaarrfk/nifty/basegraph"
	"github.com/stretchr/testify/require"
)

// recordingCallback logs every callback invocation, in order, as a string,
// for exact sequencing assertions (S1).
type recordingCallback struct {
	events []string
}

func (r *recordingCallback) ContractEdge(e int) {
	r.events = append(r.events, "contractEdge")
}
func (r *recordingCallback) MergeNodes(alive, dead int) {
	r.events = append(r.events, "mergeNodes")
}
func (r *recordingCallback) MergeEdges(aliveEdge, deadEdge int) {
	r.events = append(r.events, "mergeEdges")
}
func (r *recordingCallback) ContractEdgeDone(e int) {
	r.events = append(r.events, "contractEdgeDone")
}

func buildTriangleBase() (*basegraph.Graph, [3]int, [3]int) {
	g := basegraph.NewGraph()
	var nodes [3]int
	for i := range nodes {
		nodes[i] = g.AddNode()
	}
	var edges [3]int
	edges[0] = g.AddEdge(nodes[0], nodes[1]) // e0
	edges[1] = g.AddEdge(nodes[1], nodes[2]) // e1
	edges[2] = g.AddEdge(nodes[0], nodes[2]) // e2
	return g, nodes, edges
}

// S1: triangle contraction with parallel-edge coalescing.
func TestContractEdgeTriangleS1(t *testing.T) {
	base, _, edges := buildTriangleBase()
	cb := &recordingCallback{}
	cg := New[*basegraph.Graph](base, cb)

	cg.ContractEdge(edges[0]) // contract e0 = {0,1}

	require.Equal(t, 2, cg.NumberOfNodes())
	require.Equal(t, 1, cg.NumberOfEdges())
	require.Equal(t, []string{"contractEdge", "mergeNodes", "mergeEdges", "contractEdgeDone"}, cb.events)

	// smaller root (0) survives, single live edge connects it to node 2.
	require.Equal(t, 0, cg.FindRepresentativeNode(0))
	require.Equal(t, 0, cg.FindRepresentativeNode(1))

	adj := cg.Adjacency(0)
	require.Len(t, adj, 1)
	require.Equal(t, 2, adj[0].Node)
	require.Equal(t, edges[2], adj[0].Edge, "surviving edge must be e2, already present in adj[0]")
}

// S2: chain contraction collapses to one node, zero edges.
func TestContractEdgeChainS2(t *testing.T) {
	base := basegraph.NewGraph()
	for i := 0; i < 4; i++ {
		base.AddNode()
	}
	e0 := base.AddEdge(0, 1)
	e1 := base.AddEdge(1, 2)
	e2 := base.AddEdge(2, 3)

	cg := New[*basegraph.Graph](base, NullCallback{})
	cg.ContractEdge(e1)
	cg.ContractEdge(e0)
	cg.ContractEdge(e2)

	require.Equal(t, 1, cg.NumberOfNodes())
	require.Equal(t, 0, cg.NumberOfEdges())
	require.Equal(t, 0, cg.FindRepresentativeNode(0))
	require.Equal(t, 0, cg.FindRepresentativeNode(1))
	require.Equal(t, 0, cg.FindRepresentativeNode(2))
	require.Equal(t, 0, cg.FindRepresentativeNode(3))
}

// P1/P2: adjacency symmetry and endpoints-adjacency consistency after
// arbitrary contractions.
func TestInvariantsAfterContractions(t *testing.T) {
	base := basegraph.NewGraph()
	for i := 0; i < 5; i++ {
		base.AddNode()
	}
	base.AddEdge(0, 1)
	base.AddEdge(1, 2)
	e2 := base.AddEdge(2, 3)
	base.AddEdge(3, 4)
	base.AddEdge(0, 2) // creates a parallel edge with (0,1)-(1,2) path once contracted

	cg := New[*basegraph.Graph](base, NullCallback{})
	cg.ContractEdge(0) // 0-1
	cg.ContractEdge(e2)

	assertInvariants(t, cg)
}

func assertInvariants[G BaseGraph](t *testing.T, cg *Graph[G]) {
	t.Helper()
	for n := 0; n < cg.NodeIDUpperBound(); n++ {
		if cg.FindRepresentativeNode(n) != n {
			continue // only representative nodes carry adjacency
		}
		for _, nb := range cg.Adjacency(n) {
			// P3: no self-loops among live edges.
			require.NotEqual(t, n, nb.Node)
			// P1: adjacency symmetry.
			_, found := indexOfNeighbor(cg.Adjacency(nb.Node), n)
			require.True(t, found, "adjacency not symmetric for node %d <-> %d", n, nb.Node)
			// P2: endpoints-adjacency consistency.
			u, v := cg.UV(nb.Edge)
			require.True(t, (u == n && v == nb.Node) || (u == nb.Node && v == n))
		}
		// P4: at most one live edge between any pair of representatives.
		seen := map[int]bool{}
		for _, nb := range cg.Adjacency(n) {
			require.False(t, seen[nb.Node], "parallel edge survived between %d and %d", n, nb.Node)
			seen[nb.Node] = true
		}
	}
}

// R1: Reset after arbitrary contractions reproduces the base graph.
func TestResetReproducesBaseGraph(t *testing.T) {
	base, _, edges := buildTriangleBase()
	cg := New[*basegraph.Graph](base, NullCallback{})
	cg.ContractEdge(edges[0])

	cg.Reset()
	require.Equal(t, base.NumberOfNodes(), cg.NumberOfNodes())
	require.Equal(t, base.NumberOfEdges(), cg.NumberOfEdges())
	for n := 0; n < 3; n++ {
		require.Equal(t, n, cg.FindRepresentativeNode(n))
	}
}

// R2: contracting every edge of a connected component leaves one live node
// at the smallest original id.
func TestContractAllEdgesOfComponent(t *testing.T) {
	base, _, edges := buildTriangleBase()
	cg := New[*basegraph.Graph](base, NullCallback{})

	cg.ContractEdge(edges[0])
	remaining := cg.Adjacency(0)
	require.Len(t, remaining, 1)
	cg.ContractEdge(remaining[0].Edge)

	require.Equal(t, 1, cg.NumberOfNodes())
	require.Equal(t, 0, cg.NumberOfEdges())
	require.Equal(t, 0, cg.FindRepresentativeNode(0))
	require.Equal(t, 0, cg.FindRepresentativeNode(1))
	require.Equal(t, 0, cg.FindRepresentativeNode(2))
}

func TestContractEdgeDeadEdgeIsPrecondition(t *testing.T) {
	base, _, edges := buildTriangleBase()
	cg := New[*basegraph.Graph](base, NullCallback{})
	cg.ContractEdge(edges[0])

	require.Panics(t, func() { cg.ContractEdge(edges[0]) })
}

func TestNodeOfDeadEdge(t *testing.T) {
	base, _, edges := buildTriangleBase()
	cg := New[*basegraph.Graph](base, NullCallback{})
	cg.ContractEdge(edges[0]) // merges e1's and e2's shared history

	root := cg.NodeOfDeadEdge(edges[0])
	require.Equal(t, 0, root)

	require.Panics(t, func() { cg.NodeOfDeadEdge(edges[1]) }, "e1 endpoints are not yet in the same dynamic node")
}

func TestWithSetsTracksLiveIDs(t *testing.T) {
	base, _, edges := buildTriangleBase()
	ws := NewWithSets(NullCallback{}, base.NodeIDUpperBound(), base.EdgeIDUpperBound())
	cg := New[*basegraph.Graph](base, ws)

	require.Equal(t, 3, ws.NumberOfLiveNodes())
	require.Equal(t, 3, ws.NumberOfLiveEdges())

	cg.ContractEdge(edges[0])

	require.Equal(t, 2, ws.NumberOfLiveNodes())
	require.Equal(t, 1, ws.NumberOfLiveEdges())
	require.NotContains(t, ws.LiveNodeIDs(), 1)
	require.Contains(t, ws.LiveEdgeIDs(), edges[2])
}
