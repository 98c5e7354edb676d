package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-social-graph/internal/logger"
	"github.com/sbilibin2017/gw-social-graph/internal/middlewares"
	"github.com/sbilibin2017/gw-social-graph/internal/models"
	"github.com/sbilibin2017/gw-social-graph/internal/services"
)

// Response messages
const (
	msgInternal         = "Internal server error"
	msgInvalidBody      = "Invalid request body"
	msgNotFound         = "Not found."
	msgInvalidPage      = "Invalid page."
	msgForbidden        = "You do not have permission to perform this action."
	msgNotAuthenticated = "Authentication credentials were not provided."
	msgBadCredentials   = "Unable to log in with provided credentials."
	msgValidationFailed = "Validation failed"
	msgRequired         = "This field is required."
)

// ErrorResponse is the body of every non-validation error
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Not found.
	Error string `json:"error"`
}

// ValidationErrorResponse is the body of a 400 with field-keyed messages
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// Error message
	// default: Validation failed
	Error string `json:"error"`

	// Messages per field
	Fields map[string][]string `json:"fields"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeFieldErrors(w http.ResponseWriter, fields map[string][]string) {
	writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Error:  msgValidationFailed,
		Fields: fields,
	})
}

// writeServiceError maps service and model errors to HTTP responses.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		writeFieldErrors(w, verr.Fields)
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, msgBadCredentials)
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrFollowingNotFound):
		writeError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, services.ErrInvalidPage):
		writeError(w, http.StatusNotFound, msgInvalidPage)
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, msgForbidden)
	default:
		logger.FromContext(ctx).Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

// requirePrincipal returns the authenticated principal or writes a 401.
func requirePrincipal(w http.ResponseWriter, r *http.Request) (models.Principal, bool) {
	principal, ok := middlewares.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgNotAuthenticated)
	}
	return principal, ok
}
