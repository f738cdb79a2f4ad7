package dto

import "net/http"

// Wire-level error codes.
const (
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeValidation   = "ERR_VALIDATION"
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeNotFound     = "ERR_NOT_FOUND"
	ErrCodeConflict     = "ERR_CONFLICT"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
	ErrCodeRateLimited  = "ERR_RATE_LIMITED"
	ErrCodeBodyTooLarge = "ERR_BODY_TOO_LARGE"
	ErrCodeInternal     = "ERR_INTERNAL"
)

var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,
	ErrCodeRateLimited:  http.StatusTooManyRequests,
	ErrCodeBodyTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeInternal:     http.StatusInternalServerError,
}

// GetHTTPStatus resolves the status for a wire error code, defaulting to 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainErrorCodeMapping translates domain error codes to wire codes.
// Unlisted codes normalize to ERR_BAD_REQUEST.
var domainErrorCodeMapping = map[string]string{
	"NOT_FOUND":               ErrCodeNotFound,
	"ALREADY_EXISTS":          ErrCodeConflict,
	"PROJECT_NAME_EXISTS":     ErrCodeConflict,
	"ACCOUNT_NAME_EXISTS":     ErrCodeConflict,
	"ACCOUNT_NUMBER_EXISTS":   ErrCodeConflict,
	"PARTNER_NAME_EXISTS":     ErrCodeConflict,
	"USERNAME_EXISTS":         ErrCodeConflict,
	"EMAIL_EXISTS":            ErrCodeConflict,
	"NAME_EXISTS":             ErrCodeConflict,
	"CODE_EXISTS":             ErrCodeConflict,
	"CONFLICT":                ErrCodeConflict,
	"UNAUTHORIZED":            ErrCodeUnauthorized,
	"INVALID_CREDENTIALS":     ErrCodeUnauthorized,
	"TOKEN_INVALID":           ErrCodeTokenInvalid,
	"TOKEN_REVOKED":           ErrCodeTokenInvalid,
	"FORBIDDEN":               ErrCodeForbidden,
	"ACCOUNT_INACTIVE":        ErrCodeForbidden,
	"INVALID_INPUT":           ErrCodeBadRequest,
	"INVALID_USERNAME":        ErrCodeValidation,
	"INVALID_EMAIL":           ErrCodeValidation,
	"WEAK_PASSWORD":           ErrCodeValidation,
	"INVALID_PERCENTAGE":      ErrCodeValidation,
	"EMPTY_NAME":              ErrCodeValidation,
	"EMPTY_ACCOUNT_NUMBER":    ErrCodeValidation,
	"INTERNAL_ERROR":          ErrCodeInternal,
	"PERSISTENCE_ERROR":       ErrCodeInternal,
	"TOKEN_GENERATION_FAILED": ErrCodeInternal,
	"PASSWORD_HASH_FAILED":    ErrCodeInternal,
	"LOGOUT_FAILED":           ErrCodeInternal,
}

// NormalizeErrorCode maps a domain error code to its wire representation.
func NormalizeErrorCode(domainCode string) string {
	if wireCode, ok := domainErrorCodeMapping[domainCode]; ok {
		return wireCode
	}
	return ErrCodeBadRequest
}
