package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation", NewValidationError("bad input", nil), http.StatusBadRequest},
		{"bad request", NewBadRequestError("bad request", nil), http.StatusBadRequest},
		{"auth", NewAuthError("no token", nil), http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("not yours", nil), http.StatusForbidden},
		{"not found", NewNotFoundError("missing", nil), http.StatusNotFound},
		{"conflict", NewConflictError("duplicate", nil), http.StatusConflict},
		{"database", NewDatabaseError("db down", nil), http.StatusInternalServerError},
		{"config", NewConfigError("bad config", nil), http.StatusInternalServerError},
		{"internal", NewInternalError("boom", nil), http.StatusInternalServerError},
		{"migration", NewMigrationError("failed", nil), http.StatusInternalServerError},
		{"unknown", NewAppError(UnknownError, "???", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseError("query failed", cause)

	assert.Equal(t, "query failed: connection refused", err.Error())
	assert.Equal(t, "no cause", NewNotFoundError("no cause", nil).Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewInternalError("wrapper", cause)

	assert.True(t, errors.Is(err, cause))
}

func TestFromError(t *testing.T) {
	appErr, ok := FromError(NewConflictError("duplicate", nil))
	require.True(t, ok)
	assert.Equal(t, ConflictError, appErr.Type)

	_, ok = FromError(errors.New("plain error"))
	assert.False(t, ok)

	_, ok = FromError(nil)
	assert.False(t, ok)
}

func TestFromErrorUnwrapsChain(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewNotFoundError("inner", nil))

	appErr, ok := FromError(wrapped)
	require.True(t, ok)
	assert.Equal(t, NotFoundError, appErr.Type)
}

func TestTypeHelpers(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("x", nil)))
	assert.False(t, IsNotFound(NewConflictError("x", nil)))

	assert.True(t, IsAuthError(NewAuthError("x", nil)))
	assert.True(t, IsForbidden(NewForbiddenError("x", nil)))
	assert.True(t, IsValidationError(NewValidationError("x", nil)))
	assert.True(t, IsConflict(NewConflictError("x", nil)))

	wrapped := fmt.Errorf("wrap: %w", NewConflictError("dup", nil))
	assert.True(t, IsConflict(wrapped))
}
