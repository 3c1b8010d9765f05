package cgcerr

import "fmt"

// PreconditionViolation reports that a caller violated a documented
// precondition of Op. Construction helpers panic with this type rather than
// returning it: there is no well-defined way for the algorithmic core to
// continue once a precondition is broken.
type PreconditionViolation struct {
	Op  string
	Msg string
}

func (e *PreconditionViolation) Error() string {
	return fmt.Sprintf("%s: precondition violated: %s", e.Op, e.Msg)
}

// NewPrecondition builds and panics with a *PreconditionViolation.
func NewPrecondition(op, msg string) {
	panic(&PreconditionViolation{Op: op, Msg: msg})
}

// InvariantViolation reports that an internal invariant, which should be
// unreachable, broke. Always panics at the point of detection.
type InvariantViolation struct {
	Op  string
	Msg string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("%s: invariant violated: %s", e.Op, e.Msg)
}

// NewInvariant builds and panics with an *InvariantViolation.
func NewInvariant(op, msg string) {
	panic(&InvariantViolation{Op: op, Msg: msg})
}

// ExternalSolverFailure wraps an error raised by a pluggable MincutSolver
// (construction failure, or an output whose length does not match the
// submodel it was asked to solve). Unlike PreconditionViolation and
// InvariantViolation, this is returned normally to the caller of
// Driver.Optimize, never panicked.
type ExternalSolverFailure struct {
	Op  string
	Err error
}

func (e *ExternalSolverFailure) Error() string {
	return fmt.Sprintf("%s: external mincut solver failed: %v", e.Op, e.Err)
}

func (e *ExternalSolverFailure) Unwrap() error { return e.Err }

// NewSolverFailure builds an *ExternalSolverFailure.
func NewSolverFailure(op string, err error) *ExternalSolverFailure {
	return &ExternalSolverFailure{Op: op, Err: err}
}
