package rcm

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormat(t *testing.T) {
	err := newError("Engine.Refresh", KindSource, errors.New("boom"))
	assert.Equal(t, "rcm: Engine.Refresh (source): boom", err.Error())

	bare := &Error{Op: "Engine.Refresh", Kind: KindSource}
	assert.Equal(t, "rcm: Engine.Refresh: source", bare.Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := newError("Engine.Refresh", KindSource, cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.ErrorIs(t, err, cause)
}

func TestErrorIsSentinel(t *testing.T) {
	err := newError("Engine.Refresh", KindSource,
		fmt.Errorf("%w: %w", ErrSourceUnavailable, errors.New("dial tcp")))

	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.NotErrorIs(t, err, ErrNoSource)
}

func TestErrorIsKindMatching(t *testing.T) {
	err := newError("Engine.Filtered", KindExpression, errors.New("compile"))

	assert.ErrorIs(t, err, &Error{Kind: KindExpression})
	assert.ErrorIs(t, err, &Error{Kind: KindExpression, Op: "Engine.Filtered"})
	assert.NotErrorIs(t, err, &Error{Kind: KindExpression, Op: "Engine.Refresh"})
	assert.NotErrorIs(t, err, &Error{Kind: KindSource})
}

func TestErrorAs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", newError("Engine.Refresh", KindValidation, ErrNoSource))

	var engineErr *Error
	require.ErrorAs(t, wrapped, &engineErr)
	assert.Equal(t, "Engine.Refresh", engineErr.Op)
	assert.Equal(t, KindValidation, engineErr.Kind)
}

func TestErrorLogValue(t *testing.T) {
	err := newError("Engine.Refresh", KindSource, errors.New("boom"))

	val := err.LogValue()
	require.Equal(t, slog.KindGroup, val.Kind())

	attrs := map[string]string{}
	for _, a := range val.Group() {
		attrs[a.Key] = a.Value.String()
	}
	assert.Equal(t, "Engine.Refresh", attrs["op"])
	assert.Equal(t, "source", attrs["kind"])
	assert.Equal(t, "boom", attrs["cause"])
}
