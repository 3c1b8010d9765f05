package mincut

// Edge is one edge of a local (dense-indexed) submodel graph.
type Edge struct {
	U, V int
}

// SubGraph is the dense local graph a Solver partitions: n local nodes in
// [0, n), plus a list of edges connecting them. Edge ids are implied by
// position in Edges; SubObjective.Weights is indexed the same way.
type SubGraph struct {
	NumNodes int
	Edges    []Edge
}

// NewSubGraph constructs an empty SubGraph over n local nodes.
func NewSubGraph(n int) *SubGraph {
	return &SubGraph{NumNodes: n}
}

// AddEdge appends an edge and returns its local edge id.
func (s *SubGraph) AddEdge(u, v int) int {
	id := len(s.Edges)
	s.Edges = append(s.Edges, Edge{U: u, V: v})
	return id
}

// SubObjective pairs a SubGraph with edge weights, indexed the same way as
// SubGraph.Edges.
type SubObjective struct {
	Graph   *SubGraph
	Weights []float64
}

// NewSubObjective builds a SubObjective over g with the given weights
// (len(weights) must equal len(g.Edges)).
func NewSubObjective(g *SubGraph, weights []float64) *SubObjective {
	return &SubObjective{Graph: g, Weights: weights}
}

// CutValue computes Σ w(e)·[labels[u] ≠ labels[v]] for a given labeling.
func (o *SubObjective) CutValue(labels []int) float64 {
	var total float64
	for i, e := range o.Graph.Edges {
		if labels[e.U] != labels[e.V] {
			total += o.Weights[i]
		}
	}
	return total
}

// Solver is a two-way partitioner over one SubObjective, consumed exactly
// once (per spec.md §6: "The solver is consumed per invocation").
type Solver interface {
	// Optimize returns a {0,1} label per local node.
	Optimize() ([]int, error)
}

// Factory constructs a Solver for a given submodel. Called once per
// submodel.Optimizer.Optimize1/Optimize2 invocation.
type Factory func(*SubGraph, *SubObjective) (Solver, error)
