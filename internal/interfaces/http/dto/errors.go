package dto

import (
	"net/http"
	"strings"
)

// Error codes surfaced by the HTTP layer itself. Domain errors carry
// their own codes (NOT_FOUND, ALREADY_EXISTS, ...) and are mapped below.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used when attribute validation rejects input
	ErrCodeValidation = "VALIDATION_FAILED"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	// Resource errors
	"NOT_FOUND":      http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,

	// Business rule errors
	"INSUFFICIENT_STOCK": http.StatusUnprocessableEntity,
	"NO_ITEMS":           http.StatusUnprocessableEntity,
	"NO_VALID_ITEMS":     http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status for an error code. Codes of the
// INVALID_* family are input errors and map to 400; anything unknown is
// treated as an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
