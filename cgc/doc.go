// Package cgc implements the Cut, Glue & Cut multicut optimizer: a Driver
// that runs a cut phase (splitting each component via a two-way mincut,
// re-queuing every new subcomponent until none splits further) and then a
// glue-and-cut phase (re-cutting the boundary between every pair of
// adjacent components), which repeats sweeps until a sweep finds no
// improvement. The cut phase is not run again after the glue-and-cut phase.
//
// Driver owns the mutable NodeLabels for the duration of Optimize and
// delegates every local move to a submodel.Optimizer, which reads
// base-graph weights and adjacency directly. Driver also owns the
// persistent dirty-edge bitmap the Optimizer mutates in place.
package cgc
