package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPStatuser is implemented by errors that know which HTTP status they map to.
type HTTPStatuser interface {
	HTTPStatus() int
}

// ValidationError represents a validation failure with field-level details
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error returns the bare message so it can be shown to end users as-is.
func (e *ValidationError) Error() string {
	return e.Message
}

// HTTPStatus implements HTTPStatuser
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus implements HTTPStatuser
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// AlreadyExistsError represents a resource already exists error
type AlreadyExistsError struct {
	Resource string
	Message  string
}

// NewAlreadyExistsError creates a new already exists error
func NewAlreadyExistsError(resource, message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *AlreadyExistsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// HTTPStatus implements HTTPStatuser
func (e *AlreadyExistsError) HTTPStatus() int {
	return http.StatusConflict
}

// UnauthorizedError represents failed authentication
type UnauthorizedError struct {
	Message string
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

// Error implements the error interface
func (e *UnauthorizedError) Error() string {
	return e.Message
}

// HTTPStatus implements HTTPStatuser
func (e *UnauthorizedError) HTTPStatus() int {
	return http.StatusUnauthorized
}

// InternalError represents an internal server error with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// HTTPStatus implements HTTPStatuser
func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// StatusOf returns the HTTP status carried by err, or 500 when err is untyped.
func StatusOf(err error) int {
	var s HTTPStatuser
	if errors.As(err, &s) {
		return s.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
