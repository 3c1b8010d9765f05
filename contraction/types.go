package contraction

import (
	"github.com/hmaarrfk/nifty/basegraph"
	"github.com/hmaarrfk/nifty/unionfind"
)

// Neighbor is re-exported from basegraph so callers of this package never
// need to import basegraph themselves just to read an adjacency entry.
type Neighbor = basegraph.Neighbor

// BaseGraph is the static graph capability this package consumes, per
// spec.md §6 — the basegraph.Reader capability set, named locally so the
// dependency this package actually needs ("something BaseGraph-shaped") is
// visible at the point of use, per Go convention of small consumer-defined
// interfaces.
type BaseGraph = basegraph.Reader

type endpointPair struct {
	u, v int
}

// Graph is the dynamic edge-contraction view over a BaseGraph G.
type Graph[G BaseGraph] struct {
	base     G
	callback Callback

	ufd *unionfind.DisjointSets

	adj       [][]Neighbor   // adj[node], kept sorted by Neighbor.Node
	endpoints []endpointPair // endpoints[edge], representative ids while alive
	baseU     []int          // original (base-graph) endpoints, used by
	baseV     []int          // NodeOfDeadEdge regardless of how contraction proceeded
	edgeDead  []bool

	liveNodeCount int
	liveEdgeCount int
}

// New constructs a Graph wrapping base, observed by callback (use
// NullCallback{} if no observer is needed), and resets it to the base
// graph's initial state.
func New[G BaseGraph](base G, callback Callback) *Graph[G] {
	g := &Graph[G]{base: base, callback: callback}
	g.Reset()
	return g
}
