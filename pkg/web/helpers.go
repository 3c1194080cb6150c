// Package web provides the HTTP plumbing shared by all routes: JSON response
// helpers, the terminal error-translation stage, and the middleware chain.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/abgdnv/products-api/internal/apperrors"
)

// GenericErrorMessage is the only detail clients see for failures outside
// the error taxonomy.
const GenericErrorMessage = "Something went wrong on the server. Please try again later."

// ErrorResponse is the body shape of every error response.
type ErrorResponse struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}

// RespondJSON writes payload as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	// Handle nil payload
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// RespondError is the single place that converts a failure into an HTTP
// response. Taxonomy errors use their fixed status, message and field errors.
// Anything else is logged with full detail server-side and rendered as a
// generic 500 so no internal detail crosses the boundary.
func RespondError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if appErr, ok := apperrors.From(err); ok {
		logger.Warn("Request failed", "status", appErr.Status(), "error", appErr.Message)
		RespondJSON(w, logger, appErr.Status(), ErrorResponse{
			Status:  "error",
			Message: appErr.Message,
			Errors:  appErr.Fields,
		})
		return
	}
	logger.Error("Unexpected error", "error", err)
	RespondJSON(w, logger, http.StatusInternalServerError, ErrorResponse{
		Status:  "error",
		Message: GenericErrorMessage,
	})
}
