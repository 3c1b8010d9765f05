package basegraph

import "sync"

// Neighbor is one entry of a node's adjacency: the far endpoint and the
// edge id connecting to it.
type Neighbor struct {
	Node int
	Edge int
}

type edgeRecord struct {
	u, v  int
	alive bool
}

// Graph is a dense, gap-tolerant, integer-indexed undirected multigraph:
// the concrete BaseGraph of spec.md §6.
type Graph struct {
	mu sync.RWMutex

	nodeAlive []bool
	adj       [][]Neighbor // adj[node], kept sorted by Neighbor.Node
	numNodes  int

	edges    []edgeRecord
	numEdges int
}

// NewGraph constructs an empty Graph.
func NewGraph() *Graph {
	return &Graph{}
}
