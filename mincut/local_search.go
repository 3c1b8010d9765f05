package mincut

import (
	"math/rand"
	"time"
)

// LocalSearchSolver minimizes Σ w(e)·[labels differ] heuristically: from
// each of several random initial labelings, it repeatedly flips whichever
// single node's move improves the cut value most, until no flip helps,
// then keeps the best labeling found across all restarts. Not guaranteed
// optimal (spec.md §1 Non-goals: exact multicut optimality); it exists so
// submodels too large for BruteForceSolver still get a usable answer.
type LocalSearchSolver struct {
	obj      *SubObjective
	restarts int
	rng      *rand.Rand

	// incident[node] lists, for each incident edge, the edge's local id
	// and its other endpoint — precomputed once so each candidate flip is
	// scored in O(degree) instead of O(edges).
	incident [][]incidentEdge
}

type incidentEdge struct {
	edge   int
	weight float64
	other  int
}

// NewLocalSearchFactory returns a Factory producing LocalSearchSolvers that
// each try `restarts` random initializations (restarts < 1 is treated as
// 1).
func NewLocalSearchFactory(restarts int) Factory {
	if restarts < 1 {
		restarts = 1
	}
	return func(g *SubGraph, obj *SubObjective) (Solver, error) {
		incident := make([][]incidentEdge, g.NumNodes)
		for i, e := range g.Edges {
			w := obj.Weights[i]
			incident[e.U] = append(incident[e.U], incidentEdge{edge: i, weight: w, other: e.V})
			incident[e.V] = append(incident[e.V], incidentEdge{edge: i, weight: w, other: e.U})
		}
		return &LocalSearchSolver{
			obj:      obj,
			restarts: restarts,
			rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
			incident: incident,
		}, nil
	}
}

func (s *LocalSearchSolver) Optimize() ([]int, error) {
	n := s.obj.Graph.NumNodes
	if n == 0 {
		return []int{}, nil
	}

	var best []int
	bestVal := 0.0
	haveBest := false

	for r := 0; r < s.restarts; r++ {
		labels := s.randomLabels(n)
		s.hillClimb(labels)
		val := s.obj.CutValue(labels)
		if !haveBest || val < bestVal {
			haveBest = true
			bestVal = val
			best = labels
		}
	}
	return best, nil
}

func (s *LocalSearchSolver) randomLabels(n int) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = s.rng.Intn(2)
	}
	return labels
}

// hillClimb repeatedly flips the single node whose flip most improves the
// cut value, until no flip helps (a local optimum).
func (s *LocalSearchSolver) hillClimb(labels []int) {
	for {
		bestNode := -1
		bestDelta := 0.0
		for node := 0; node < len(labels); node++ {
			delta := s.flipDelta(labels, node)
			if delta < bestDelta {
				bestDelta = delta
				bestNode = node
			}
		}
		if bestNode < 0 {
			return
		}
		labels[bestNode] ^= 1
	}
}

// flipDelta returns the change in cut value if node's label were flipped:
// negative means flipping improves (lowers) the cut value.
func (s *LocalSearchSolver) flipDelta(labels []int, node int) float64 {
	var delta float64
	for _, inc := range s.incident[node] {
		wasCut := labels[node] != labels[inc.other]
		if wasCut {
			delta -= inc.weight
		} else {
			delta += inc.weight
		}
	}
	return delta
}

var _ Solver = (*LocalSearchSolver)(nil)
