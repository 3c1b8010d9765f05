package submodel

import (
	"fmt"

	"github.com/hmaarrfk/nifty/cgcerr"
)

// Optimize2 implements spec.md §4.4.3: tests whether the union of the two
// (generally distinct) components containing a0 and a1 should be re-cut.
// Unlike Optimize1 it compares the mincut's value against the *current*
// cut value across the submodel's inside edges, not against zero, since the
// submodel may already be split across the a0/a1 boundary.
//
// A non-nil error is always a *cgcerr.ExternalSolverFailure, surfaced
// unchanged to the caller of cgc.Driver.Optimize per spec.md §7.
func (o *Optimizer) Optimize2(nodeLabels []int, a0, a1 int) (Optimize2Result, error) {
	maxNodeLabel := o.varMapping(nodeLabels, a0, a1)
	if o.nLocalNodes < 2 {
		return Optimize2Result{Improvement: false, ImprovedBy: 0}, nil
	}

	sub, obj := o.buildSubGraph()

	var currentCutValue float64
	for i, e := range o.insideEdges {
		u, v := o.base.UV(e)
		if nodeLabels[u] != nodeLabels[v] {
			currentCutValue += o.subWeights[i]
		}
	}

	solver, err := o.factory(sub, obj)
	if err != nil {
		return Optimize2Result{}, cgcerr.NewSolverFailure("Optimize2", err)
	}
	mincutLabels, err := solver.Optimize()
	if err != nil {
		return Optimize2Result{}, cgcerr.NewSolverFailure("Optimize2", err)
	}
	if len(mincutLabels) != o.nLocalNodes {
		return Optimize2Result{}, cgcerr.NewSolverFailure("Optimize2",
			fmt.Errorf("solver returned %d labels, want %d", len(mincutLabels), o.nLocalNodes))
	}

	minCutValue := obj.CutValue(mincutLabels)
	if !(minCutValue+1e-7 < currentCutValue) {
		return Optimize2Result{Improvement: false, ImprovedBy: 0}, nil
	}

	sizes, _ := o.relabel(nodeLabels, sub, mincutLabels, maxNodeLabel)
	if len(sizes) <= 2 {
		o.markAllBorderDirty()
	} else {
		o.markAllInsideAndBorderDirty()
	}

	return Optimize2Result{Improvement: true, ImprovedBy: currentCutValue - minCutValue}, nil
}
