// Package contraction implements the dynamic edge-contraction graph
// (spec.md §4.2): a mutable view over a static BaseGraph that supports
// online edge contraction with parallel-edge coalescing, backed by a
// unionfind.DisjointSets for node identity.
//
// Graph is generic over the BaseGraph capability it wraps (templates over
// graph type, per spec.md §9's design note), and fires a Callback at four
// points during every ContractEdge so dependent structures (priority
// queues, weight maps, the WithSets live-id tracker) stay consistent
// without contraction knowing about them.
//
// Graph itself is a reusable abstraction shared with other multicut
// algorithms in the wider codebase, not specific to CGC — CGC (package
// cgc) only uses package submodel, which reads the base graph directly
// and does not use a contraction.Graph, plus a standalone
// unionfind.DisjointSets.
package contraction
