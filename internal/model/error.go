package model

import "strings"

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeValidation        = "VALIDATION_FAILED"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeProductIDRequired = "PRODUCT_ID_REQUIRED"
	ErrCodeInvalidID         = "INVALID_ID"
	ErrCodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound         = NewDomainError(ErrCodeProductNotFound, "Producto no encontrado")
	ErrProductIDRequired       = NewDomainError(ErrCodeProductIDRequired, "ID de producto requerido")
	ErrProductIDRequiredUpdate = NewDomainError(ErrCodeProductIDRequired, "ID de producto requerido para actualizar")
)

// ValidationError carries every rule violation found in one input.
// Nothing is persisted when it is returned.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NewValidationError returns a ValidationError, or nil when there are no messages.
func NewValidationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}
