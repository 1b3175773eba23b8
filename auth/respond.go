// Response envelope shared by every handler in the API. Success payloads are
// {success, message?, data?, meta?}; errors are {success, message} with the
// status taken from the apperror type.
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/user/growtwitter-go/apperror"
)

// Meta carries pagination information for list responses.
type Meta struct {
	Page  int    `json:"page" example:"1"`
	Limit int    `json:"limit" example:"10"`
	Total *int64 `json:"total,omitempty" example:"42"`
}

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// WriteJSON serializes v and writes it with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

// WriteSuccess writes a success envelope around data.
func WriteSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	WriteJSON(w, status, Response{Success: true, Message: message, Data: data})
}

// WriteSuccessMeta writes a success envelope around a paginated list.
func WriteSuccessMeta(w http.ResponseWriter, status int, data interface{}, meta *Meta) {
	WriteJSON(w, status, Response{Success: true, Data: data, Meta: meta})
}

// WriteError maps err to a status via apperror and writes the error envelope.
// Non-AppError values are treated as internal errors; their details are
// logged, not returned.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}

	if appErr.StatusCode() >= http.StatusInternalServerError {
		logrus.WithError(appErr).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error("request failed")
	}

	WriteJSON(w, appErr.StatusCode(), Response{Success: false, Message: appErr.Message})
}
