package basegraph

// Objective holds a BaseGraph reference and an edge-indexed weights map, and
// evaluates the multicut objective for a given node labeling:
// Σ w(e)·[labels[u(e)] ≠ labels[v(e)]], per spec.md §6.
type Objective struct {
	Graph   Reader
	Weights *EdgeMap[float64]
}

// NewObjective builds an Objective over g with the given edge weights.
func NewObjective(g Reader, weights *EdgeMap[float64]) *Objective {
	return &Objective{Graph: g, Weights: weights}
}

// EvalNodeLabels computes Σ w(e)·[labels[u(e)] ≠ labels[v(e)]] over every
// live edge of the underlying graph.
func (o *Objective) EvalNodeLabels(labels []int) float64 {
	var energy float64
	for _, e := range o.Graph.Edges() {
		u, v := o.Graph.UV(e)
		if labels[u] != labels[v] {
			energy += o.Weights.Get(e)
		}
	}
	return energy
}
