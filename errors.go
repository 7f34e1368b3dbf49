package rcm

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for common engine error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrNoSource indicates the engine was asked to refresh without a
	// configured graph source.
	ErrNoSource = errors.New("no graph source configured")

	// ErrSourceUnavailable indicates the graph source failed to supply a
	// snapshot. The underlying error is wrapped for context.
	ErrSourceUnavailable = errors.New("graph source unavailable")

	// ErrInvalidFilter indicates a filter could not be applied, typically
	// because its expression dimension failed to compile.
	ErrInvalidFilter = errors.New("invalid filter")
)

// Error kinds categorize errors by their type.
const (
	// KindValidation represents errors related to input validation.
	KindValidation = "validation"

	// KindSource represents errors raised by a graph source.
	KindSource = "source"

	// KindExpression represents errors in a filter expression.
	KindExpression = "expression"

	// KindInternal represents internal engine errors.
	KindInternal = "internal"
)

// Error is a structured error that wraps underlying errors with the
// operation that failed and the category of failure.
//
// Error implements the error interface and supports unwrapping, making it
// compatible with errors.Is() and errors.As(). It also implements
// slog.LogValuer so logged errors carry their structure.
type Error struct {
	// Op is the operation that failed (e.g. "Engine.Refresh").
	Op string

	// Kind categorizes the error (e.g. KindSource, KindExpression).
	Kind string

	// Err is the underlying error that caused this error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("rcm: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("rcm: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches either another *Error with the same Kind (and Op, when the
// target sets one) or anything the underlying error matches.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}
	return errors.Is(e.Err, target)
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("op", e.Op),
		slog.String("kind", e.Kind),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("cause", e.Err.Error()))
	}
	return slog.GroupValue(attrs...)
}

// newError builds a structured engine error.
func newError(op, kind string, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}
