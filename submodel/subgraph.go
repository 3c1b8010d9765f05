package submodel

import "github.com/hmaarrfk/nifty/mincut"

// buildSubGraph builds the dense local SubGraph and matching SubObjective
// for the submodel most recently selected by varMapping. It iterates
// insideEdges twice in identical order — once to insert edges, once to
// read weights — so the resulting mincut.SubGraph.Edges order and
// SubObjective.Weights order always agree, per spec.md §4.4.2 step 1.
func (o *Optimizer) buildSubGraph() (*mincut.SubGraph, *mincut.SubObjective) {
	sub := mincut.NewSubGraph(o.nLocalNodes)
	for _, e := range o.insideEdges {
		u, v := o.base.UV(e)
		sub.AddEdge(o.globalToLocal[u], o.globalToLocal[v])
	}

	if cap(o.subWeights) < len(o.insideEdges) {
		o.subWeights = make([]float64, len(o.insideEdges))
	}
	o.subWeights = o.subWeights[:len(o.insideEdges)]
	for i, e := range o.insideEdges {
		o.subWeights[i] = o.weights.Get(e)
	}

	return sub, mincut.NewSubObjective(sub, o.subWeights)
}

// relabel runs the fresh-label-minting step shared by Optimize1 and
// Optimize2 (spec.md §4.4.2 steps 4-5 / §4.4.3 step 1): for each inside
// edge whose two local endpoints received the same mincut label, union
// them via a fresh local DisjointSets; compute a dense
// representative-labeling; write maxNodeLabel+1+label into nodeLabels for
// every submodel node; and record, per fresh subcomponent, its size and
// the last-visited global node (spec.md §4.4.2 step 6's "last-visited
// global node" anchor choice).
func (o *Optimizer) relabel(nodeLabels []int, sub *mincut.SubGraph, mincutLabels []int, maxNodeLabel int) (sizes []int, lastGlobal []int) {
	o.scratch.Reset(o.nLocalNodes)
	for _, e := range sub.Edges {
		if mincutLabels[e.U] == mincutLabels[e.V] {
			o.scratch.Merge(e.U, e.V)
		}
	}

	mapping := make([]int, o.nLocalNodes)
	o.scratch.RepresentativeLabeling(mapping)
	k := o.scratch.NumberOfSets()

	sizes = make([]int, k)
	lastGlobal = make([]int, k)
	for local := 0; local < o.nLocalNodes; local++ {
		global := o.localToGlobal[local]
		compID := mapping[o.scratch.Find(local)]
		nodeLabels[global] = compID + maxNodeLabel + 1
		sizes[compID]++
		lastGlobal[compID] = global
	}

	o.lastSplitSizes = sizes
	return sizes, lastGlobal
}

// markAllInsideAndBorderDirty marks every edge recorded by the most recent
// varMapping call (both inside and border) dirty.
func (o *Optimizer) markAllInsideAndBorderDirty() {
	for _, e := range o.insideEdges {
		o.dirty[e] = true
	}
	o.markAllBorderDirty()
}

// markAllBorderDirty marks every border edge recorded by the most recent
// varMapping call dirty.
func (o *Optimizer) markAllBorderDirty() {
	for _, e := range o.borderEdges {
		o.dirty[e] = true
	}
}
