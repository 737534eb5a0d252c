package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"carbon-travel-server/internals"
)

// error codes returned in the body of every failed request
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeProcessing     = "PROCESSING_ERROR"
	CodeInternal       = "INTERNAL_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeNotImplemented = "NOT_IMPLEMENTED"
	CodeMethod         = "METHOD_NOT_ALLOWED"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeRateLimited    = "RATE_LIMITED"
)

const internalErrorMessage = "An error occurred processing your request"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("error encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	slog.Warn("method not supported", "method", r.Method, "path", r.URL.Path)
	writeError(w, http.StatusMethodNotAllowed, CodeMethod, "Method not supported")
}

// writeFailure maps an error from the core to its response: validation
// errors are 400, processing errors 422, anything else is logged and
// reported as a generic 500.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *ValidationError
	var processingErr *internals.ProcessingError
	switch {
	case errors.As(err, &validationErr):
		slog.Info("invalid request", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, CodeValidation, validationErr.Message)
	case errors.As(err, &processingErr):
		slog.Info("request could not be processed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusUnprocessableEntity, CodeProcessing, processingErr.Message)
	default:
		slog.Error("internal error", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, internalErrorMessage)
	}
}

// errorBody is the per-item counterpart of writeFailure used by batch requests.
func errorBody(err error) ErrorResponse {
	var validationErr *ValidationError
	var processingErr *internals.ProcessingError
	switch {
	case errors.As(err, &validationErr):
		return ErrorResponse{Code: CodeValidation, Message: validationErr.Message}
	case errors.As(err, &processingErr):
		return ErrorResponse{Code: CodeProcessing, Message: processingErr.Message}
	default:
		slog.Error("internal error in batch item", "error", err)
		return ErrorResponse{Code: CodeInternal, Message: internalErrorMessage}
	}
}
