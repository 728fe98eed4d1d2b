package api

import (
	"encoding/json"
	"net/http"

	"github.com/maksimkurb/keen-console/src/internal/errors"
	"github.com/maksimkurb/keen-console/src/internal/log"
)

// ErrorCode represents standard API error codes.
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates malformed or invalid request data.
	ErrCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeConflict indicates a request that does not fit the current
	// document, such as a structural edit of invalid text or a stale path.
	ErrCodeConflict ErrorCode = "conflict"

	// ErrCodeForbidden indicates a client outside the allowed networks.
	ErrCodeForbidden ErrorCode = "forbidden"

	// ErrCodeInternalError indicates an internal server error.
	ErrCodeInternalError ErrorCode = "internal_error"

	// ErrCodeValidationFailed indicates request validation failed.
	ErrCodeValidationFailed ErrorCode = "validation_failed"

	// ErrCodeStoreError indicates the configuration store failed.
	ErrCodeStoreError ErrorCode = "store_error"
)

// APIError represents a structured API error response.
type APIError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps an APIError for JSON responses.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// NewAPIError creates a new APIError with the given code and message.
func NewAPIError(code ErrorCode, message string) APIError {
	return APIError{
		Code:    code,
		Message: message,
		Details: nil,
	}
}

// WithDetails adds details to an APIError.
func (e APIError) WithDetails(details map[string]interface{}) APIError {
	e.Details = details
	return e
}

// WriteError writes an error response to the HTTP response writer.
func WriteError(w http.ResponseWriter, statusCode int, err APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err})
}

// WriteInvalidRequest writes a 400 Bad Request error.
func WriteInvalidRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, NewAPIError(ErrCodeInvalidRequest, message))
}

// WriteNotFound writes a 404 Not Found error.
func WriteNotFound(w http.ResponseWriter, resource string) {
	WriteError(w, http.StatusNotFound, NewAPIError(ErrCodeNotFound, resource+" not found"))
}

// WriteConflict writes a 409 Conflict error.
func WriteConflict(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusConflict, NewAPIError(ErrCodeConflict, message))
}

// WriteForbidden writes a 403 Forbidden error.
func WriteForbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, NewAPIError(ErrCodeForbidden, message))
}

// WriteInternalError writes a 500 Internal Server Error.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}

// WriteValidationError writes a 400 Bad Request with validation details.
func WriteValidationError(w http.ResponseWriter, message string, details map[string]interface{}) {
	err := NewAPIError(ErrCodeValidationFailed, message).WithDetails(details)
	WriteError(w, http.StatusBadRequest, err)
}

// WriteStoreError writes a 502 Bad Gateway for store and server failures.
func WriteStoreError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadGateway, NewAPIError(ErrCodeStoreError, message))
}

// writeDomainError maps a coded error to a response. The domain code is
// passed in the details so clients can tell edit failures apart.
func writeDomainError(w http.ResponseWriter, err error) {
	code := errors.CodeOf(err)
	details := map[string]interface{}{"code": string(code)}

	switch code {
	case errors.ErrCodeValidation:
		WriteValidationError(w, err.Error(), details)
	case errors.ErrCodeSession:
		WriteError(w, http.StatusNotFound, NewAPIError(ErrCodeNotFound, err.Error()).WithDetails(details))
	case errors.ErrCodeParse, errors.ErrCodeAddress, errors.ErrCodeType, errors.ErrCodeRange:
		WriteError(w, http.StatusConflict, NewAPIError(ErrCodeConflict, err.Error()).WithDetails(details))
	case errors.ErrCodeStore, errors.ErrCodeRemote:
		log.Warnf("Store request failed: %v", err)
		WriteError(w, http.StatusBadGateway, NewAPIError(ErrCodeStoreError, err.Error()).WithDetails(details))
	default:
		log.Errorf("Request failed: %v", err)
		WriteError(w, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, err.Error()).WithDetails(details))
	}
}
