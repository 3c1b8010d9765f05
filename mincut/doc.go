// Package mincut defines the pluggable two-way partition solver spec.md §6
// treats as an external collaborator ("QPBO-style or otherwise"), plus two
// concrete, interchangeable backends so the module runs end to end without
// an external QPBO binding:
//
//   - BruteForceSolver exactly enumerates every bipartition of a small
//     submodel (up to BruteForceNodeLimit local nodes).
//   - LocalSearchSolver runs randomized greedy single-node-move local
//     search from multiple random restarts, for submodels too large to
//     enumerate. It is a heuristic, not exact — consistent with spec.md's
//     explicit Non-goal of exact multicut optimality.
//
// A Solver is given a dense SubGraph and SubObjective (local node ids in
// [0, n), local edge ids implied by SubGraph.Edges order) and returns a
// {0,1} label per local node minimizing Σ w(e)·[label(u) ≠ label(v)]. The
// returned value may be negative (a net-attractive cut), zero, or
// positive; submodel.Optimizer decides whether that counts as an
// improvement.
package mincut
