package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string
	Message string
	Status  int
	// Details is rendered as the envelope "error" field when set.
	Details interface{}
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors sharing the same code so clones compare equal to their template.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrUnauthenticated    = &Error{Code: "UNAUTHENTICATED", Status: http.StatusUnauthorized, Message: "Authentication token not provided", Details: "No bearer token found"}
	ErrInvalidToken       = &Error{Code: "INVALID_TOKEN", Status: http.StatusUnauthorized, Message: "Invalid authentication token", Details: "Token does not exist or is invalid"}
	ErrTokenExpired       = &Error{Code: "TOKEN_EXPIRED", Status: http.StatusUnauthorized, Message: "Authentication token has expired", Details: "Token expired"}
	ErrInvalidCredentials = &Error{Code: "INVALID_CREDENTIALS", Status: http.StatusUnauthorized, Message: "Invalid credentials", Details: "Username or password incorrect"}
	ErrNotFound           = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrValidation         = New("VALIDATION_ERROR", http.StatusUnprocessableEntity, "Validation failed")
	ErrTooManyRequests    = New("TOO_MANY_REQUESTS", http.StatusTooManyRequests, "Too many attempts, please try again later")
	ErrInternal           = New("INTERNAL_ERROR", http.StatusInternalServerError, "Internal server error")
	ErrCacheMiss          = New("CACHE_MISS", http.StatusNotFound, "cache miss")
)

// FieldErrors maps a request field to its validation messages.
type FieldErrors map[string][]string

// Add appends a message for the given field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Fields returns the sorted field names carrying errors.
func (f FieldErrors) Fields() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validation builds a 422 error carrying the field map.
func Validation(fields FieldErrors) *Error {
	clone := *ErrValidation
	clone.Details = fields
	return &clone
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
		if _, ok := clone.Details.(string); ok || clone.Details == nil {
			clone.Details = message
		}
	}
	return &clone
}
