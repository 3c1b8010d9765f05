package submodel

import (
	"github.com/hmaarrfk/nifty/basegraph"
	"github.com/hmaarrfk/nifty/mincut"
	"github.com/hmaarrfk/nifty/unionfind"
)

// BaseGraph is the static graph capability this package reads from,
// re-using basegraph.Reader's method set.
type BaseGraph = basegraph.Reader

// DirtyBits is the persistent base-graph edge-id bitmap of spec.md §3/§5:
// initially all true, conceptually owned by the driver that constructs it,
// mutated in place by Optimizer during extraction and relabeling. Because
// it is a plain slice, the driver and the Optimizer it hands the slice to
// always observe the same bits — there is exactly one backing array, only
// one logical owner ever writes through a different view of it at a time.
type DirtyBits []bool

// NewDirtyBits returns a DirtyBits of length n with every bit set (every
// edge starts dirty, per spec.md §4.4.1).
func NewDirtyBits(n int) DirtyBits {
	b := make(DirtyBits, n)
	for i := range b {
		b[i] = true
	}
	return b
}

// AnchorQueue is the FIFO work queue Optimize1 pushes freshly-split
// subcomponents' anchors onto. cgc.Driver owns the concrete queue; this
// package only needs to push to it.
type AnchorQueue interface {
	Push(node int)
}

// Optimize1Result is the outcome of Optimizer.Optimize1.
type Optimize1Result struct {
	Improvement bool
	// MinCutValue is the local two-way mincut's objective value. It is
	// only meaningful (and only negative) when Improvement is true; per
	// spec.md §9 Open Question 2, this value IS the energy delta, not
	// merely its sign — callers add it directly to a running energy total.
	MinCutValue float64
}

// Optimize2Result is the outcome of Optimizer.Optimize2.
type Optimize2Result struct {
	Improvement bool
	// ImprovedBy is the (positive) amount the boundary re-cut decreased
	// the energy by. Callers subtract it from a running energy total.
	ImprovedBy float64
}

// Optimizer is the submodel extraction and relabeling machine of
// spec.md §4.4.
type Optimizer struct {
	base    BaseGraph
	weights *basegraph.EdgeMap[float64]
	factory mincut.Factory
	dirty   DirtyBits

	// scratch state, reused across calls (spec.md §5):
	globalToLocal []int // sized to base.NodeIDUpperBound()
	stamp         []int // sized to base.NodeIDUpperBound()
	epoch         int
	localToGlobal []int // sized to current nLocalNodes
	nLocalNodes   int
	nLocalEdges   int
	insideEdges   []int
	borderEdges   []int
	scratch       *unionfind.DisjointSets

	subWeights []float64 // reused edge-weight buffer for the dense SubGraph

	lastSplitSizes []int // introspection: size of each subcomponent from the most recent relabeling (SPEC_FULL §11)
}

// New constructs an Optimizer over base, reading edge weights from
// weights, solving local submodels via factory, and sharing dirty as its
// persistent dirty-edge bitmap.
func New(base BaseGraph, weights *basegraph.EdgeMap[float64], factory mincut.Factory, dirty DirtyBits) *Optimizer {
	nUp := base.NodeIDUpperBound()
	return &Optimizer{
		base:          base,
		weights:       weights,
		factory:       factory,
		dirty:         dirty,
		globalToLocal: make([]int, nUp),
		stamp:         make([]int, nUp),
		scratch:       unionfind.New(0),
	}
}

// LastSplitSizes returns the per-subcomponent node counts produced by the
// most recent improving Optimize1/Optimize2 call, for test introspection
// (SPEC_FULL §11; grounded on the original's internal node-count tracking
// used to decide which subcomponents are worth re-queuing).
func (o *Optimizer) LastSplitSizes() []int {
	return o.lastSplitSizes
}
