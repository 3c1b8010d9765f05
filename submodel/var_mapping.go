package submodel

// varMapping implements spec.md §4.4.1: selects every base-graph node
// whose label equals nodeLabels[a0] or nodeLabels[a1] (pass a1 == a0 for
// the single-anchor case), assigns contiguous local ids in base-graph
// node-iteration order, recomputes insideEdges/borderEdges, marks every
// inside edge clean, and returns maxNodeLabel — the maximum label value
// observed across the *entire* graph, not just the submodel.
func (o *Optimizer) varMapping(nodeLabels []int, a0, a1 int) (maxNodeLabel int) {
	o.epoch++
	labelA0, labelA1 := nodeLabels[a0], nodeLabels[a1]

	o.localToGlobal = o.localToGlobal[:0]
	o.nLocalNodes = 0

	for _, n := range o.base.Nodes() {
		if nodeLabels[n] > maxNodeLabel {
			maxNodeLabel = nodeLabels[n]
		}
		if nodeLabels[n] != labelA0 && nodeLabels[n] != labelA1 {
			continue
		}
		o.globalToLocal[n] = o.nLocalNodes
		o.stamp[n] = o.epoch
		o.localToGlobal = append(o.localToGlobal, n)
		o.nLocalNodes++
	}

	o.insideEdges = o.insideEdges[:0]
	o.borderEdges = o.borderEdges[:0]
	for _, e := range o.base.Edges() {
		u, v := o.base.UV(e)
		uIn := o.stamp[u] == o.epoch
		vIn := o.stamp[v] == o.epoch
		switch {
		case uIn && vIn:
			o.insideEdges = append(o.insideEdges, e)
			o.dirty[e] = false
		case uIn != vIn:
			o.borderEdges = append(o.borderEdges, e)
		}
	}
	o.nLocalEdges = len(o.insideEdges)

	return maxNodeLabel
}

// inSubmodel reports whether global node n was selected by the most recent
// varMapping call.
func (o *Optimizer) inSubmodel(n int) bool {
	return o.stamp[n] == o.epoch
}
