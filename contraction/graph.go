package contraction

import (
	"sort"

	"github.com/hmaarrfk/nifty/cgcerr"
	"github.com/hmaarrfk/nifty/unionfind"
)

// Reset restores the graph to the base graph's initial state: every node
// and edge the base graph currently reports as live becomes live here, and
// the disjoint-set view is reset to singletons.
func (g *Graph[G]) Reset() {
	nUp := g.base.NodeIDUpperBound()
	eUp := g.base.EdgeIDUpperBound()

	if g.ufd == nil {
		g.ufd = unionfind.New(nUp)
	} else {
		g.ufd.Reset(nUp)
	}

	g.adj = make([][]Neighbor, nUp)
	g.endpoints = make([]endpointPair, eUp)
	g.baseU = make([]int, eUp)
	g.baseV = make([]int, eUp)
	g.edgeDead = make([]bool, eUp)
	for e := range g.edgeDead {
		g.edgeDead[e] = true // not (yet) known live; flipped below
	}

	for _, e := range g.base.Edges() {
		u, v := g.base.UV(e)
		g.baseU[e] = u
		g.baseV[e] = v
		g.endpoints[e] = endpointPair{u: u, v: v}
		g.edgeDead[e] = false
	}

	for _, n := range g.base.Nodes() {
		adj := append([]Neighbor(nil), g.base.Adjacency(n)...)
		sort.Slice(adj, func(i, j int) bool { return adj[i].Node < adj[j].Node })
		g.adj[n] = adj
	}

	g.liveNodeCount = g.base.NumberOfNodes()
	g.liveEdgeCount = g.base.NumberOfEdges()
}

// BaseGraph returns the wrapped static graph.
func (g *Graph[G]) BaseGraph() G { return g.base }

// Ufd returns the disjoint-set view backing node identity. Callers must not
// mutate it directly; it is exposed read-mostly for callers (e.g.
// submodel) that need Find without an extra indirection.
func (g *Graph[G]) Ufd() *unionfind.DisjointSets { return g.ufd }

// NumberOfNodes reports the number of live nodes.
func (g *Graph[G]) NumberOfNodes() int { return g.liveNodeCount }

// NumberOfEdges reports the number of live edges.
func (g *Graph[G]) NumberOfEdges() int { return g.liveEdgeCount }

// NodeIDUpperBound returns one past the largest node id the base graph
// ever allocated.
func (g *Graph[G]) NodeIDUpperBound() int { return len(g.adj) }

// EdgeIDUpperBound returns one past the largest edge id the base graph
// ever allocated.
func (g *Graph[G]) EdgeIDUpperBound() int { return len(g.endpoints) }

// Adjacency returns node's current neighbors, sorted by neighbor id.
func (g *Graph[G]) Adjacency(node int) []Neighbor { return g.adj[node] }

// UV returns the current endpoints of edge. Calling this on a dead edge id
// is a programming error; the returned pair is meaningless (spec.md §3
// invariant 4: "undefined for callers").
func (g *Graph[G]) UV(edge int) (int, int) {
	ep := g.endpoints[edge]
	return ep.u, ep.v
}

// U returns the current u endpoint of edge.
func (g *Graph[G]) U(edge int) int { u, _ := g.UV(edge); return u }

// V returns the current v endpoint of edge.
func (g *Graph[G]) V(edge int) int { _, v := g.UV(edge); return v }

// FindRepresentativeNode returns the current representative (root) of node.
func (g *Graph[G]) FindRepresentativeNode(node int) int {
	return g.ufd.Find(node)
}

// NodeOfDeadEdge returns the representative node into which both original
// (base-graph) endpoints of edge have merged. edge need not itself have
// ever been passed to ContractEdge: it only requires that its two original
// endpoints now belong to the same dynamic node, however that came about.
// Panics with a *cgcerr.PreconditionViolation if they do not.
func (g *Graph[G]) NodeOfDeadEdge(edge int) int {
	ru, rv := g.ufd.Find(g.baseU[edge]), g.ufd.Find(g.baseV[edge])
	if ru != rv {
		cgcerr.NewPrecondition("NodeOfDeadEdge", "edge endpoints are not in the same dynamic node")
	}
	return ru
}

// ContractEdge contracts edge e: merges its two endpoints into one dynamic
// node and coalesces any resulting parallel edges, firing Callback at each
// of the four documented points (spec.md §4.2).
//
// Panics with a *cgcerr.PreconditionViolation if e is not a live edge id,
// or if its endpoints are already in the same dynamic node (which can only
// happen for a dead or self-looped edge — both precondition violations).
func (g *Graph[G]) ContractEdge(e int) {
	if e < 0 || e >= len(g.edgeDead) || g.edgeDead[e] {
		cgcerr.NewPrecondition("ContractEdge", "edge is not live")
	}

	g.callback.ContractEdge(e)
	g.liveEdgeCount--

	u, v := g.endpoints[e].u, g.endpoints[e].v
	if u == v {
		cgcerr.NewPrecondition("ContractEdge", "edge endpoints are equal")
	}
	if g.ufd.Find(u) == g.ufd.Find(v) {
		cgcerr.NewPrecondition("ContractEdge", "edge endpoints already in the same dynamic node")
	}

	g.ufd.Merge(u, v)
	g.liveNodeCount--

	alive := g.ufd.Find(u)
	dead := u
	if alive == u {
		dead = v
	}

	g.callback.MergeNodes(alive, dead)

	g.adj[alive] = removeNeighbor(g.adj[alive], dead)
	g.adj[dead] = removeNeighbor(g.adj[dead], alive)

	deadAdj := g.adj[dead]
	g.adj[dead] = nil
	for _, nb := range deadAdj {
		w, eDead := nb.Node, nb.Edge
		if idx, ok := indexOfNeighbor(g.adj[alive], w); ok {
			eAlive := g.adj[alive][idx].Edge
			g.callback.MergeEdges(eAlive, eDead)
			g.liveEdgeCount--
			g.edgeDead[eDead] = true
			g.adj[w] = removeNeighbor(g.adj[w], dead)
			continue
		}
		g.adj[alive] = insertNeighbor(g.adj[alive], Neighbor{Node: w, Edge: eDead})
		g.adj[w] = removeNeighbor(g.adj[w], dead)
		g.adj[w] = insertNeighbor(g.adj[w], Neighbor{Node: alive, Edge: eDead})
		g.endpoints[eDead] = replaceEndpoint(g.endpoints[eDead], dead, alive)
	}

	g.edgeDead[e] = true

	g.callback.ContractEdgeDone(e)
}

func replaceEndpoint(ep endpointPair, from, to int) endpointPair {
	if ep.u == from {
		ep.u = to
	} else {
		ep.v = to
	}
	return ep
}

func indexOfNeighbor(lst []Neighbor, node int) (int, bool) {
	i := sort.Search(len(lst), func(i int) bool { return lst[i].Node >= node })
	if i < len(lst) && lst[i].Node == node {
		return i, true
	}
	return 0, false
}

func insertNeighbor(lst []Neighbor, n Neighbor) []Neighbor {
	i := sort.Search(len(lst), func(i int) bool { return lst[i].Node >= n.Node })
	lst = append(lst, Neighbor{})
	copy(lst[i+1:], lst[i:])
	lst[i] = n
	return lst
}

func removeNeighbor(lst []Neighbor, node int) []Neighbor {
	i, ok := indexOfNeighbor(lst, node)
	if !ok {
		return lst
	}
	return append(lst[:i], lst[i+1:]...)
}
