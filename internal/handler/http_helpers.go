package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pdf-summarizer/internal/domain"
	apperrors "pdf-summarizer/pkg/errors"
)

const sessionHeader = "X-Session-ID"

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, domain.ErrorResponse{Error: message})
}

// writeAppError maps err to a status code and error body. Errors that are not
// AppErrors are logged and reported as 500.
func writeAppError(w http.ResponseWriter, logger domain.Logger, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Error("Unhandled request error", err)
		appErr = apperrors.NewInternalError("Something went wrong!", err)
	}
	writeJSON(w, appErr.StatusCode, domain.ErrorResponse{Error: appErr.Message, Details: appErr.Details})
}

// decodeJSON decodes the request body into dst, reporting oversized bodies as 413
// and malformed ones as 400.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperrors.NewTooLargeError("Request body too large")
		}
		return apperrors.NewValidationError("Invalid request body", err.Error())
	}
	return nil
}
