package cgc

import (
	"github.com/hmaarrfk/nifty/basegraph"
	"github.com/hmaarrfk/nifty/unionfind"
)

// densifyLabels implements spec.md §4.5 cutPhase step 1: union every pair
// of adjacent nodes sharing a label, then overwrite nodeLabels with a
// contiguous [0, k) relabeling of the resulting components, where k is
// returned. This both splits any input where disconnected groups of nodes
// share a label into separate components (defensive against an arbitrary
// starting NodeLabels) and guarantees P5's densification invariant.
//
// Assumes g's node id space has no gaps (Driver's base graph is built once
// from an edge list and never has nodes removed from under it).
func densifyLabels(g basegraph.Reader, nodeLabels []int, scratch *unionfind.DisjointSets) int {
	n := g.NodeIDUpperBound()
	scratch.Reset(n)

	for _, e := range g.Edges() {
		u, v := g.UV(e)
		if nodeLabels[u] == nodeLabels[v] {
			scratch.Merge(u, v)
		}
	}

	mapping := make([]int, n)
	scratch.RepresentativeLabeling(mapping)

	for _, node := range g.Nodes() {
		nodeLabels[node] = mapping[scratch.Find(node)]
	}
	return scratch.NumberOfSets()
}
