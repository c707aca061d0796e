// Package llperr defines the error kinds shared across the LLP kernel and
// its external collaborators: malformed input, invalid arguments, and
// aggregated worker failures. Negative-cycle detection is deliberately
// not an error kind here: bellmanford and johnson report it through their
// own ErrNegativeCycle from Result, and dispatch turns that into a
// NoResult value on dispatch.Result rather than returning an error.
package llperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the InvalidArgument kind.
var (
	// ErrNonPositiveSize indicates a size parameter (n, m) was <= 0 where a
	// positive size is required.
	ErrNonPositiveSize = errors.New("llp: size must be positive")

	// ErrUnknownAlgorithm indicates the dispatcher was asked for an algorithm
	// name it does not recognize.
	ErrUnknownAlgorithm = errors.New("llp: unknown algorithm name")
)

// InputFormatError reports a malformed input file: a bad line, an
// out-of-range vertex index, mismatched destination/weight lengths,
// truncated content, or unexpected trailing content.
type InputFormatError struct {
	Source string // logical source, e.g. a file path or "<stdin>"
	Line   int    // 1-based line number, 0 if not line-specific
	Reason string
}

func (e *InputFormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("llp: input format error in %s at line %d: %s", e.Source, e.Line, e.Reason)
	}
	return fmt.Sprintf("llp: input format error in %s: %s", e.Source, e.Reason)
}

// NewInputFormatError constructs an InputFormatError.
func NewInputFormatError(source string, line int, reason string) error {
	return &InputFormatError{Source: source, Line: line, Reason: reason}
}

// WorkerFailure wraps the first failure observed by a parallel advance or
// collect wave: the aggregate call fails with the first observed failure,
// and the solve is aborted at the next barrier.
type WorkerFailure struct {
	Phase string // e.g. "collectForbidden", "advance:step0"
	Err   error
}

func (e *WorkerFailure) Error() string {
	return fmt.Sprintf("llp: worker failure during %s: %v", e.Phase, e.Err)
}

func (e *WorkerFailure) Unwrap() error { return e.Err }

// NewWorkerFailure wraps err as a WorkerFailure for the named phase. Returns
// nil if err is nil.
func NewWorkerFailure(phase string, err error) error {
	if err == nil {
		return nil
	}
	return &WorkerFailure{Phase: phase, Err: err}
}
