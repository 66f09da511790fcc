package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Catalog errors

type SystemNotFoundError struct {
	*DomainError
	SystemID string
}

func NewSystemNotFoundError(systemID string) *SystemNotFoundError {
	return &SystemNotFoundError{
		DomainError: NewDomainError(fmt.Sprintf("planetary system %s not found", systemID)),
		SystemID:    systemID,
	}
}

// Stock errors

type InsufficientStockError struct {
	*DomainError
	Key       string
	Required  int
	Available int
}

func NewInsufficientStockError(key string, required, available int) *InsufficientStockError {
	return &InsufficientStockError{
		DomainError: NewDomainError(fmt.Sprintf("insufficient stock of %s: need %d, have %d", key, required, available)),
		Key:         key,
		Required:    required,
		Available:   available,
	}
}
