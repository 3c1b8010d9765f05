package basegraph

// Reader is the BaseGraph capability set required by spec.md §6: node/edge
// counts and upper bounds, iteration, endpoint lookup, and adjacency.
// contraction.Graph is generic over any type satisfying Reader, so the
// wider codebase can plug in a different static graph representation
// without contraction or submodel caring which one.
type Reader interface {
	NumberOfNodes() int
	NumberOfEdges() int
	NodeIDUpperBound() int
	EdgeIDUpperBound() int
	Nodes() []int
	Edges() []int
	UV(edge int) (int, int)
	Adjacency(node int) []Neighbor
}

var _ Reader = (*Graph)(nil)
