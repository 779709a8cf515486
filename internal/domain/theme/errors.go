package theme

import (
	"errors"
	"fmt"
)

// ErrorCode identifies well-known failure categories of the token pipeline.
type ErrorCode string

const (
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeAsymmetric    ErrorCode = "ASYMMETRIC_TOKENS"
	ErrCodeDuplicate     ErrorCode = "DUPLICATE_TOKEN"
	ErrCodeInvalidColor  ErrorCode = "INVALID_COLOR_FORMAT"
	ErrCodeMissingToken  ErrorCode = "MISSING_TOKEN"
	ErrCodeWriteFailed   ErrorCode = "WRITE_FAILED"
	ErrCodeInvalidOutput ErrorCode = "INVALID_OUTPUT"
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeCancelled     ErrorCode = "CANCELLED"
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// DomainError is a typed error enriched with contextual data.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// NewError constructs a DomainError.
func NewError(code ErrorCode, message string, cause error, context map[string]interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches another DomainError carrying the same code. A target without a
// message matches on code alone, so callers can test errors.Is(err, &DomainError{Code: ...}).
func (e *DomainError) Is(target error) bool {
	var other *DomainError
	if !errors.As(target, &other) || e == nil || other == nil {
		return false
	}
	if e.Code != other.Code {
		return false
	}
	return other.Message == "" || e.Message == other.Message
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

// HasCode reports whether err carries a DomainError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code == code
}
