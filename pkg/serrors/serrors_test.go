package serrors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"toolbox/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Ensure some expected inequalities
	require.NotEqual(t, serrors.ErrNotFound, serrors.ErrUnauthorized, "NotFound should not equal Unauthorized")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "calculation %d not found", 42)
	require.Equal(t, "calculation 42 not found", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "loading calculation")
	require.Equal(t, "loading calculation: db down", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	e := fmt.Errorf("evaluating: %w", serrors.With(serrors.ErrBadRequest, "input too large"))
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(e))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))

	bare := fmt.Errorf("lookup: %w", serrors.ErrConflict)
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(bare))
}

func TestIsAny(t *testing.T) {
	e := serrors.With(serrors.ErrNotFound, "calculation not found")
	require.True(t, serrors.IsAny(e, serrors.ErrBadRequest, serrors.ErrNotFound))
	require.False(t, serrors.IsAny(e, serrors.ErrBadRequest))
	require.False(t, serrors.IsAny(e))
}

func TestTransient(t *testing.T) {
	require.True(t, serrors.Transient(serrors.KindOnly(serrors.ErrUnavailable)))
	require.True(t, serrors.Transient(fmt.Errorf("query: %w", context.DeadlineExceeded)))
	require.False(t, serrors.Transient(serrors.KindOnly(serrors.ErrBadRequest)))
	require.False(t, serrors.Transient(errors.New("plain")))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    string
		message string
	}{
		{
			name:    "message",
			err:     serrors.With(serrors.ErrNotFound, "calculation not found"),
			code:    "NOT_FOUND",
			message: "calculation not found",
		},
		{
			name:    "cause is hidden",
			err:     serrors.Wrap(serrors.ErrUnavailable, errors.New("dial tcp 10.0.0.1:5432"), "storage unavailable"),
			code:    "UNAVAILABLE",
			message: "storage unavailable",
		},
		{
			name:    "kind only",
			err:     serrors.KindOnly(serrors.ErrUnauthorized),
			code:    "UNAUTHORIZED",
			message: "UNAUTHORIZED",
		},
		{
			name:    "bare kind",
			err:     fmt.Errorf("guard: %w", serrors.ErrForbidden),
			code:    "FORBIDDEN",
			message: "FORBIDDEN",
		},
		{
			name:    "plain error",
			err:     errors.New("pq: relation does not exist"),
			code:    "INTERNAL",
			message: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, message := serrors.Describe(tt.err)
			require.Equal(t, tt.code, code)
			require.Equal(t, tt.message, message)
		})
	}
}
