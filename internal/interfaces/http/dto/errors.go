package dto

import (
	"net/http"
	"strings"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	"NOT_FOUND":              http.StatusNotFound,
	"DUPLICATE_IDENTITY":     http.StatusConflict,
	"APARTMENT_UNAVAILABLE":  http.StatusConflict,
	"CONCURRENCY_CONFLICT":   http.StatusConflict,
	"NOT_AUTHORIZED":         http.StatusForbidden,
	"INVALID_CREDENTIALS":    http.StatusUnauthorized,
	"UNAUTHORIZED":           http.StatusUnauthorized,
	"IDENTITY_UPDATE_FAILED": http.StatusUnprocessableEntity,
	"STORE_WRITE_ERROR":      http.StatusInternalServerError,
	"STORAGE_ERROR":          http.StatusInternalServerError,
	"PASSWORD_HASH_ERROR":    http.StatusInternalServerError,
	"INTERNAL_ERROR":         http.StatusInternalServerError,
	"BAD_REQUEST":            http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status for a domain error code.
// VALIDATION_* codes all map to 400; unknown codes fall back to 500.
func GetHTTPStatus(code string) int {
	if strings.HasPrefix(code, "VALIDATION") {
		return http.StatusBadRequest
	}
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
