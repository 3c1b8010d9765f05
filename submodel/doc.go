// Package submodel implements the submodel extraction and relabeling
// machinery of spec.md §4.4: given a global NodeLabels assignment and one
// or two anchor nodes, it projects the induced subgraph (the union of the
// components those anchors belong to) into a dense local index space,
// invokes a pluggable mincut.Solver, and lifts the solution back into the
// global labeling, minting fresh component ids disjoint from every label
// already present in the graph.
//
// Optimizer reads base-graph weights and adjacency directly — it does not
// go through a contraction.Graph. contraction.Graph remains a separate,
// general-purpose reusable abstraction (spec.md §2); CGC only needs
// Optimizer plus a standalone unionfind.DisjointSets for label compression.
package submodel
