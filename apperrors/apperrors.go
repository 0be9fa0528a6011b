package apperrors

import (
	"fmt"
	"net/http"
)

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeDuplicate    = "DUPLICATE"
	CodeStorage      = "STORAGE_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeInvalidInput = "INVALID_INPUT"
)

// FormField keys errors that are not attributable to a single form field.
const FormField = "_form"

// FieldErrors maps a form field name to every message it violated.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// AppError is the single error type crossing the service/action boundary.
// Fields is populated for validation and pre-check duplicate errors; Err
// carries the underlying cause for storage failures.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Fields     FieldErrors
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(fields FieldErrors) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    "Validation failed",
		HTTPStatus: http.StatusUnprocessableEntity,
		Fields:     fields,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// Duplicate reports a uniqueness violation. fields may be nil when the
// collision was only detected by the store's unique index.
func Duplicate(message string, fields FieldErrors) *AppError {
	return &AppError{
		Code:       CodeDuplicate,
		Message:    message,
		HTTPStatus: http.StatusConflict,
		Fields:     fields,
	}
}

// Storage wraps a failed persistence call. The cause is kept for logging
// and never shown to the user.
func Storage(op string, err error) *AppError {
	return &AppError{
		Code:       CodeStorage,
		Message:    "Something went wrong, please try again later",
		HTTPStatus: http.StatusInternalServerError,
		Err:        fmt.Errorf("%s: %w", op, err),
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

func Forbidden(message string) *AppError {
	return &AppError{
		Code:       CodeForbidden,
		Message:    message,
		HTTPStatus: http.StatusForbidden,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// As returns err as an *AppError when it is one.
func As(err error) (*AppError, bool) {
	appErr, ok := err.(*AppError)
	return appErr, ok
}

// Sanitize returns err unchanged when it is an AppError, otherwise wraps it
// as a storage error so internal detail never leaks to the caller.
func Sanitize(err error) *AppError {
	if appErr, ok := As(err); ok {
		return appErr
	}
	return Storage("unexpected error", err)
}
