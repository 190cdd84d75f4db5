// Package hosterr is the host runtime's fatal-error-reporting primitive.
//
// The viewport engine treats construction and invariant violations as fatal
// conditions, never as recoverable errors: it calls Fatal, which panics with
// a *Error carrying a stack trace, and never recovers from it itself. This
// mirrors the host's Rf_error-style unwind-on-fatal contract (see SPEC_FULL.md
// §7). Only an outer layer — the thin entrypoint in cmd/viewports, or a test —
// may choose to recover.
package hosterr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a fatal condition raised by the core.
type Kind string

const (
	KindTypeMismatch            Kind = "TypeMismatch"
	KindOutOfRangeConstruction  Kind = "OutOfRangeConstruction"
	KindNAInDisallowedPosition  Kind = "NAInDisallowedPosition"
	KindNonMonotoneSelector     Kind = "NonMonotoneSelector"
	KindEmptyScalarArgument     Kind = "EmptyScalarArgument"
	KindInvariantViolation      Kind = "InvariantViolation"
)

// Error is a fatal condition raised by the viewport core.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New builds a *Error without raising it, for callers that want to return
// rather than panic (used by indexvec.Vector.FirstAsLength, and by Fatal
// to build the value it panics with).
func New(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		cause:   errors.WithStack(fmt.Errorf(format, args...)),
	}
}

// Fatal raises a fatal condition. It never returns; callers are expected to
// let the panic unwind to the host runtime, exactly as the C core lets
// Rf_error unwind past the calling frame.
func Fatal(kind Kind, format string, args ...any) {
	panic(New(kind, format, args...))
}

// StackTrace recovers the stack frames captured at Fatal/New time, for
// diagnostic reporting by the entrypoint layer.
func StackTrace(err error) errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}
	var e *Error
	if errors.As(err, &e) {
		if st, ok := e.cause.(stackTracer); ok {
			return st.StackTrace()
		}
	}
	if st, ok := err.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}
