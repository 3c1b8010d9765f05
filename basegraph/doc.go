// Package basegraph provides the concrete implementation of the BaseGraph
// capability set that spec.md treats as an external collaborator: a dense,
// gap-tolerant, integer-indexed undirected multigraph, plus generic typed
// node/edge maps and the Objective evaluator used to score a NodeLabels
// assignment.
//
// Node and edge ids are plain ints in [0, upperBound), where the upper
// bound is one past the largest id ever allocated. Deleting a node or
// edge leaves a gap: the upper bound does not shrink, only the live count
// does.
//
// Graph is safe for concurrent readers and writers (sync.RWMutex), in the
// style of the teacher library's core.Graph — unlike the single-threaded
// contraction/submodel/cgc packages built on top of it, nothing in this
// spec forbids a BaseGraph from being shared across goroutines (e.g. a CLI
// loader populating it while a progress visitor reads node counts).
package basegraph
