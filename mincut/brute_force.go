package mincut

import "errors"

// BruteForceNodeLimit is the largest submodel BruteForceSolver will
// enumerate exactly. Above this, construction fails with
// ErrSubmodelTooLarge so callers can fall back to LocalSearchSolver.
const BruteForceNodeLimit = 16

// ErrSubmodelTooLarge is returned by the Factory from NewBruteForceFactory
// when the submodel exceeds BruteForceNodeLimit local nodes.
var ErrSubmodelTooLarge = errors.New("mincut: submodel too large for brute-force enumeration")

// BruteForceSolver exactly minimizes Σ w(e)·[labels differ] by enumerating
// every bipartition of the local nodes. Node 0 is pinned to label 0 (the
// complementary labeling scores identically, so this halves the search
// space without losing any distinct partition).
type BruteForceSolver struct {
	obj *SubObjective
}

// NewBruteForceFactory returns a Factory producing exact BruteForceSolvers.
func NewBruteForceFactory() Factory {
	return func(g *SubGraph, obj *SubObjective) (Solver, error) {
		if g.NumNodes > BruteForceNodeLimit {
			return nil, ErrSubmodelTooLarge
		}
		return &BruteForceSolver{obj: obj}, nil
	}
}

func (s *BruteForceSolver) Optimize() ([]int, error) {
	n := s.obj.Graph.NumNodes
	labels := make([]int, n)
	if n == 0 {
		return labels, nil
	}

	best := make([]int, n)
	bestVal := 0.0
	first := true

	// Node 0 fixed to 0; enumerate the remaining n-1 nodes' labels as bits
	// of mask in [0, 2^(n-1)).
	total := uint64(1) << uint(n-1)
	for mask := uint64(0); mask < total; mask++ {
		for i := 1; i < n; i++ {
			labels[i] = int((mask >> uint(i-1)) & 1)
		}
		val := s.obj.CutValue(labels)
		if first || val < bestVal {
			first = false
			bestVal = val
			copy(best, labels)
		}
	}
	return best, nil
}

var _ Solver = (*BruteForceSolver)(nil)
