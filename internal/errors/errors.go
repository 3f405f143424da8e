package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDoctorNotFound is returned when a doctor lookup misses.
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrPatientNotFound is returned when a patient lookup misses.
	ErrPatientNotFound = errors.New("patient not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything outside
// the taxonomy is a 500; there is no retry or partial recovery.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrDoctorNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "DOCTOR_NOT_FOUND")
	case errors.Is(err, ErrPatientNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PATIENT_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
