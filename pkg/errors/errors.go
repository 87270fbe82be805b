package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors in the console
type ErrorType string

const (
	// ErrorTypeValidation indicates a local form validation error;
	// these never reach the network
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeExternal indicates a failed call to the auto-service API,
	// transport failure and non-2xx status alike
	ErrorTypeExternal ErrorType = "EXTERNAL"

	// ErrorTypeInternal indicates an unexpected console-side error
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error. Message is the only part
// ever shown to the operator; Field scopes validation errors to the
// form input that caused them.
type AppError struct {
	Type    ErrorType
	Field   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error scoped to a form field
func NewValidationError(field, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Field:   field,
		Message: message,
	}
}

// NewExternalError creates a new external service error
func NewExternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeExternal,
		Message: message,
		Err:     err,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ErrorTypeValidation
}

// UserMessage returns the operator-facing message for err. Underlying
// causes (status codes, transport errors) stay out of the UI.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
