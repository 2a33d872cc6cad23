package dto

import (
	"net/http"
	"strings"
)

// Transport-level error codes used when the request never reaches a service
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeRateLimited  = "RATE_LIMITED"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall through to the suffix/prefix rules in
// GetHTTPStatus.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeRateLimited: http.StatusTooManyRequests,
	ErrCodeInternal:    http.StatusInternalServerError,

	// Authentication
	ErrCodeUnauthorized:    http.StatusUnauthorized,
	"INVALID_CREDENTIALS":  http.StatusUnauthorized,
	"INVALID_TOKEN":        http.StatusUnauthorized,
	"TOKEN_EXPIRED":        http.StatusUnauthorized,
	"TOKEN_REVOKED":        http.StatusUnauthorized,
	"MAX_REFRESH_EXCEEDED": http.StatusUnauthorized,
	ErrCodeForbidden:       http.StatusForbidden,
	"ACCOUNT_LOCKED":       http.StatusForbidden,
	"ACCOUNT_DEACTIVATED":  http.StatusForbidden,

	// Resources
	ErrCodeNotFound:  http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,
	ErrCodeConflict:  http.StatusConflict,

	// Business rules
	"SLOT_UNAVAILABLE":     http.StatusConflict,
	"OUTSIDE_AVAILABILITY": http.StatusUnprocessableEntity,
	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"INVALID_TRANSITION":   http.StatusUnprocessableEntity,

	// A stored assessment that fails validation is a server fault,
	// not a client error
	"INVALID_DEFINITION": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unlisted codes are classified by naming convention: *_NOT_FOUND is
// 404, *_EXISTS is 409, INVALID_* is 400 and anything else is treated
// as an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	switch {
	case strings.HasSuffix(code, "_NOT_FOUND"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "_EXISTS"):
		return http.StatusConflict
	case strings.HasPrefix(code, "INVALID_"):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
