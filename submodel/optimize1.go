package submodel

import (
	"fmt"

	"github.com/hmaarrfk/nifty/cgcerr"
)

// Optimize1 implements spec.md §4.4.2: tests whether the single component
// containing anchorNode should be split. Newly created subcomponents of
// size >= 2 have their anchor (the last-visited global node for that
// subcomponent) pushed onto anchorQueue.
//
// A non-nil error is always a *cgcerr.ExternalSolverFailure: the pluggable
// MincutSolver either failed to construct or returned the wrong number of
// labels. Per spec.md §7 this is surfaced to the caller of
// cgc.Driver.Optimize, never panicked.
func (o *Optimizer) Optimize1(nodeLabels []int, anchorNode int, anchorQueue AnchorQueue) (Optimize1Result, error) {
	maxNodeLabel := o.varMapping(nodeLabels, anchorNode, anchorNode)
	if o.nLocalNodes < 2 {
		return Optimize1Result{Improvement: false, MinCutValue: 0}, nil
	}

	sub, obj := o.buildSubGraph()
	solver, err := o.factory(sub, obj)
	if err != nil {
		return Optimize1Result{}, cgcerr.NewSolverFailure("Optimize1", err)
	}
	mincutLabels, err := solver.Optimize()
	if err != nil {
		return Optimize1Result{}, cgcerr.NewSolverFailure("Optimize1", err)
	}
	if len(mincutLabels) != o.nLocalNodes {
		return Optimize1Result{}, cgcerr.NewSolverFailure("Optimize1",
			fmt.Errorf("solver returned %d labels, want %d", len(mincutLabels), o.nLocalNodes))
	}

	minCutValue := obj.CutValue(mincutLabels)
	if minCutValue >= 0 {
		return Optimize1Result{Improvement: false, MinCutValue: minCutValue}, nil
	}

	sizes, lastGlobal := o.relabel(nodeLabels, sub, mincutLabels, maxNodeLabel)
	for compID, size := range sizes {
		if size >= 2 {
			anchorQueue.Push(lastGlobal[compID])
		}
	}

	return Optimize1Result{Improvement: true, MinCutValue: minCutValue}, nil
}
