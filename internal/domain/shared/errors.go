package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
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

// NewNotFoundError creates a NOT_FOUND error for the given resource
func NewNotFoundError(resource string) *DomainError {
	return NewDomainError("NOT_FOUND", fmt.Sprintf("%s not found", resource))
}

// NewAlreadyExistsError creates an ALREADY_EXISTS error for the given resource
func NewAlreadyExistsError(resource string) *DomainError {
	return NewDomainError("ALREADY_EXISTS", fmt.Sprintf("%s already exists", resource))
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrInvalidStatus       = NewDomainError("INVALID_STATUS", "Operation not allowed in current status")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
)
