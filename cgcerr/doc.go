// Package cgcerr defines the error taxonomy shared by contraction,
// submodel, and cgc.
//
// Three kinds of error cross package boundaries:
//
//	PreconditionViolation - caller broke a documented precondition
//	                        (contracting an edge to itself, contracting a
//	                        dead edge, constructing a Driver with no
//	                        MincutFactory, ...). Fatal: the operation panics.
//	InvariantViolation     - an internal invariant that should be
//	                        unreachable broke anyway. Fatal: panics.
//	ExternalSolverFailure  - the pluggable MincutSolver misbehaved (wrong
//	                        output length, construction error). Not fatal:
//	                        returned to the caller of Driver.Optimize.
//
// Callers branch on these with errors.As, never on formatted strings.
package cgcerr
