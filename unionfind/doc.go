// Package unionfind implements a dense, array-backed disjoint-set (DSU)
// over [0, N), used to compress node identity both in the dynamic
// contraction graph (alive/dead nodes) and in submodel relabeling
// (fresh component ids).
//
// The merge rule is fixed: the smaller of the two roots always survives.
// This is an observable contract, not an implementation detail — callers
// elsewhere in this module derive "alive" vs "dead" identity from it, so a
// rank- or size-based union that picks an arbitrary winner would silently
// change behavior visible to those callers.
//
// DisjointSets is not safe for concurrent use; callers synchronize
// externally if needed.
package unionfind
