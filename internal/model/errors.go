package model

import (
	"fmt"
	"net/http"
)

// APIError is an error that knows the status code and message to report
// in the response envelope
type APIError struct {
	Status  int
	Message string
}

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// Common error constructors

func NewNotFoundError(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

func NewValidationError(message string) *APIError {
	return &APIError{Status: http.StatusUnprocessableEntity, Message: message}
}

func NewBadRequestError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

func NewServiceUnavailableError(message string) *APIError {
	return &APIError{Status: http.StatusServiceUnavailable, Message: message}
}

// NewInternalError reports an unexpected failure; the message is the failure's text
func NewInternalError(message string) *APIError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return &APIError{Status: http.StatusInternalServerError, Message: message}
}
