// Package apperrors defines the operational error taxonomy shared by the
// service and transport layers. Every failure surfaced to a client is either
// one of the kinds below, with a fixed HTTP status, or an unexpected error
// that the terminal translation stage renders as a generic 500.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies an operational failure.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindUnauthorized
	KindForbidden
)

// FieldError describes a single field-level validation failure.
// Field is empty for collection-level errors (e.g. "no fields supplied").
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error is an operational error with a fixed status-code mapping.
// Fields is populated for validation errors only.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	return e.Message
}

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// NotFound creates a NotFound error with the given message.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Validation creates a Validation error carrying zero or more field errors.
func Validation(message string, fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// Unauthorized creates an Unauthorized error with the given message.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Forbidden creates a Forbidden error with the given message.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// From extracts a taxonomy error from err, unwrapping as needed.
// Returns false for any error outside the taxonomy.
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
