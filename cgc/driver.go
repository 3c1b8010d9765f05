package cgc

import (
	"math"

	"github.com/hmaarrfk/nifty/basegraph"
	"github.com/hmaarrfk/nifty/cgcerr"
	"github.com/hmaarrfk/nifty/mincut"
	"github.com/hmaarrfk/nifty/submodel"
	"github.com/hmaarrfk/nifty/unionfind"
)

// NodeLabels maps node id to a non-negative component id.
type NodeLabels []int

// Settings configures a Driver. MincutFactory is required: construction
// panics with a PreconditionViolation if it is nil.
type Settings struct {
	DoCutPhase        bool
	DoGlueAndCutPhase bool
	MincutFactory     mincut.Factory

	// MaxSweeps bounds the glue-and-cut phase's sweep loop (0 means
	// unbounded, matching the original's unconditional while-improving
	// loop). A positive value guards against pathological oscillation.
	MaxSweeps int
}

// DefaultSettings returns Settings with both phases enabled and no sweep
// cap; MincutFactory must still be set before use.
func DefaultSettings() Settings {
	return Settings{DoCutPhase: true, DoGlueAndCutPhase: true}
}

// Driver is the CGC multicut optimizer of spec.md §4.5.
type Driver struct {
	base    basegraph.Reader
	weights *basegraph.EdgeMap[float64]
	obj     *basegraph.Objective

	settings Settings
	dirty    submodel.DirtyBits
	optimizer *submodel.Optimizer
	scratch   *unionfind.DisjointSets

	currentBest       NodeLabels
	currentBestEnergy float64
}

// New constructs a Driver over base with edge weights, per settings. Panics
// with cgcerr.PreconditionViolation if settings.MincutFactory is nil.
func New(base basegraph.Reader, weights *basegraph.EdgeMap[float64], settings Settings) *Driver {
	if settings.MincutFactory == nil {
		cgcerr.NewPrecondition("cgc.New", "Settings.MincutFactory must not be nil")
	}
	dirty := submodel.NewDirtyBits(base.EdgeIDUpperBound())
	return &Driver{
		base:              base,
		weights:           weights,
		obj:               basegraph.NewObjective(base, weights),
		settings:          settings,
		dirty:             dirty,
		optimizer:         submodel.New(base, weights, settings.MincutFactory, dirty),
		scratch:           unionfind.New(0),
		currentBestEnergy: math.Inf(1),
	}
}

// Name identifies this optimizer, matching the original's name() query.
func (d *Driver) Name() string { return "Cgc" }

// Objective returns the base-graph objective this Driver was built over.
func (d *Driver) Objective() *basegraph.Objective { return d.obj }

// CurrentBestNodeLabels returns the labeling Optimize is (or most recently
// was) working on. Valid only after Optimize has been called at least once.
func (d *Driver) CurrentBestNodeLabels() NodeLabels { return d.currentBest }

// CurrentBestEnergy returns the running energy total tracked during the
// most recent Optimize call.
func (d *Driver) CurrentBestEnergy() float64 { return d.currentBestEnergy }

// WeightsChanged notifies the Driver that edge weights changed since the
// last Optimize: every edge is marked dirty again so the next
// glue-and-cut phase re-examines the whole graph rather than trusting
// stale dirty bits.
func (d *Driver) WeightsChanged() {
	for i := range d.dirty {
		d.dirty[i] = true
	}
}

// Optimize runs the full CGC procedure in place over nodeLabels, reporting
// progress to visitor (NullVisitor{} if nil). It mutates nodeLabels
// directly and leaves it as the Driver's current best labeling.
//
// A non-nil error is always a *cgcerr.ExternalSolverFailure raised by the
// pluggable MincutSolver; nodeLabels reflects whatever partial progress
// was made before the failing call.
func (d *Driver) Optimize(nodeLabels NodeLabels, visitor Visitor) error {
	if visitor == nil {
		visitor = NullVisitor{}
	}

	d.currentBest = nodeLabels
	d.currentBestEnergy = d.obj.EvalNodeLabels(nodeLabels)

	visitor.Begin(d)
	defer visitor.End(d)

	if d.settings.DoCutPhase {
		if err := d.cutPhase(visitor); err != nil {
			return err
		}
	}
	if d.settings.DoGlueAndCutPhase {
		if err := d.glueAndCutPhase(visitor); err != nil {
			return err
		}
	}

	return nil
}

// cutPhase implements spec.md §4.5 cutPhase.
func (d *Driver) cutPhase(visitor Visitor) error {
	nodeLabels := d.currentBest

	nComponents := densifyLabels(d.base, nodeLabels, d.scratch)
	anchors := make([]int, nComponents)
	for _, node := range d.base.Nodes() {
		anchors[nodeLabels[node]] = node
	}

	queue := newFIFOAnchorQueue()
	for _, a := range anchors {
		queue.Push(a)
	}

	visitor.ClearLogNames()
	visitor.AddLogNames([]string{"QueueSize"})

	for !queue.empty() {
		anchorNode := queue.pop()

		result, err := d.optimizer.Optimize1(nodeLabels, anchorNode, queue)
		if err != nil {
			return err
		}
		if result.Improvement {
			d.currentBestEnergy += result.MinCutValue
		}

		visitor.SetLogValue(0, float64(queue.len()))
		if !visitor.Visit(d) {
			return nil
		}
	}
	visitor.Visit(d)
	visitor.ClearLogNames()
	return nil
}

// labelPair is the ordered pair of labels a cross-component edge's
// endpoints carry, keyed exactly as spec.md §4.5 glueAndCutPhase step 1
// describes: the unordered (min,max) pair for stability across sweeps.
type labelPair struct{ lo, hi int }

// glueAndCutPhase implements spec.md §4.5 glueAndCutPhase.
func (d *Driver) glueAndCutPhase(visitor Visitor) error {
	nodeLabels := d.currentBest

	visitor.ClearLogNames()
	visitor.AddLogNames([]string{"Sweep"})

	sweep := 0
	for {
		anchorEdges := make(map[labelPair]int)
		for _, e := range d.base.Edges() {
			u, v := d.base.UV(e)
			lu, lv := nodeLabels[u], nodeLabels[v]
			if lu == lv {
				continue
			}
			key := labelPair{lo: lu, hi: lv}
			if key.lo > key.hi {
				key.lo, key.hi = key.hi, key.lo
			}
			anchorEdges[key] = e // last-visited wins
		}

		if bounded := d.settings.MaxSweeps; bounded > 0 && sweep >= bounded {
			return nil
		}

		improvedAny := false
		for _, e := range anchorEdges {
			if !d.dirty[e] {
				continue
			}
			u, v := d.base.UV(e)
			if nodeLabels[u] == nodeLabels[v] {
				continue
			}

			result, err := d.optimizer.Optimize2(nodeLabels, u, v)
			if err != nil {
				return err
			}
			if result.Improvement {
				improvedAny = true
				d.currentBestEnergy -= result.ImprovedBy

				visitor.SetLogValue(0, float64(sweep))
				if !visitor.Visit(d) {
					return nil
				}
			}
		}

		sweep++
		if !improvedAny {
			return nil
		}
	}
}
