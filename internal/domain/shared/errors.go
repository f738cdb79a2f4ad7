package shared

import "fmt"

// DomainError carries a stable machine-readable code alongside the message.
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

func NewDomainErrorWithCause(code, message string, cause error) *DomainError {
	return &DomainError{Code: code, Message: message, Cause: cause}
}

// Common domain errors shared across bounded contexts.
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "invalid input")
	ErrUnauthorized  = NewDomainError("UNAUTHORIZED", "authentication required")
	ErrForbidden     = NewDomainError("FORBIDDEN", "operation not permitted")
	ErrConflict      = NewDomainError("CONFLICT", "resource state conflict")
	ErrInternal      = NewDomainError("INTERNAL_ERROR", "internal error")
)

// IsDomainError reports whether err is a DomainError and returns it.
func IsDomainError(err error) (*DomainError, bool) {
	domainErr, ok := err.(*DomainError)
	return domainErr, ok
}
