package labelgtc

import "fmt"

// ErrorKind classifies the fatal errors the engine can raise.
type ErrorKind string

const (
	// ErrInvalidCoveringSet: the CST does not tile the gene tree leaves,
	// or a declared subtree is not embedded.
	ErrInvalidCoveringSet ErrorKind = "InvalidCoveringSet"
	// ErrSolverFailure: an external solver returned no solutions or
	// malformed output.
	ErrSolverFailure ErrorKind = "SolverFailure"
	// ErrThresholdOutOfRange: threshold outside [0,1].
	ErrThresholdOutOfRange ErrorKind = "ThresholdOutOfRange"
	// ErrInconsistent: a recursive call yielded a tree whose leafset does
	// not match the detached subtree's leafset.
	ErrInconsistent ErrorKind = "Inconsistent"
)

// Error is the single error type the engine raises, tagged with one of
// the ErrorKind values above. There is no local retry for any kind:
// every Error is fatal and propagates straight to the caller of Resolve.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error // optional wrapped cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("labelgtc: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("labelgtc: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
