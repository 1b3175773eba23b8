package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/growtwitter-go/apperror"
)

func TestWriteSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, http.StatusCreated, "created", map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "created", resp.Message)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Meta)
}

func TestWriteSuccessMetaEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	total := int64(42)
	WriteSuccessMeta(rec, http.StatusOK, []string{}, &Meta{Page: 2, Limit: 10, Total: &total})

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 10, resp.Meta.Limit)
	require.NotNil(t, resp.Meta.Total)
	assert.Equal(t, int64(42), *resp.Meta.Total)
}

func TestWriteErrorMapsStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", apperror.NewNotFoundError("tweet not found", nil), http.StatusNotFound},
		{"conflict", apperror.NewConflictError("already liked", nil), http.StatusConflict},
		{"forbidden", apperror.NewForbiddenError("not yours", nil), http.StatusForbidden},
		{"auth", apperror.NewAuthError("no token", nil), http.StatusUnauthorized},
		{"plain error becomes 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			WriteError(rec, req, tt.err)

			assert.Equal(t, tt.want, rec.Code)

			var resp Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestWriteErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	WriteError(rec, req, errors.New("password=hunter2 leaked"))

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotContains(t, resp.Message, "hunter2")
}

func TestValidateStruct(t *testing.T) {
	err := ValidateStruct(RegisterRequest{Name: "Ada", Username: "ada", Password: "secret123"})
	assert.NoError(t, err)

	err = ValidateStruct(RegisterRequest{Username: "ada"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
}
