package errors

import (
	"net/http"

	"adspace/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Geocoding-related errors
	ErrGeocodingUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"GEOCODING_UNAVAILABLE",
		"The address verification service is temporarily unavailable, please try again later",
		nil,
	)

	// Location-related errors
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"The requested location does not exist",
		nil,
	)

	ErrLocationOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"LOCATION_OWNERSHIP_VIOLATION",
		"The location belongs to a different business",
		nil,
	)

	ErrLocationInUse = NewBaseError(
		http.StatusConflict,
		"LOCATION_IN_USE",
		"The location still has media attached to it",
		nil,
	)

	// Media-related errors
	ErrMediaNotFound = NewBaseError(
		http.StatusNotFound,
		"MEDIA_NOT_FOUND",
		"The requested media item does not exist",
		nil,
	)

	ErrMediaOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"MEDIA_OWNERSHIP_VIOLATION",
		"The media item belongs to a different business",
		nil,
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		nil,
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource does not exist",
		nil,
	)
)

// AddressRejectedError is a deterministic data-quality failure of
// address verification. It always carries at least one field
// diagnostic; callers fix the address rather than retrying.
type AddressRejectedError struct {
	message     string
	diagnostics map[string]string
}

// NewAddressRejectedError creates an address rejection carrying the
// overall message and the field-to-reason diagnostics.
func NewAddressRejectedError(message string, diagnostics map[string]string) *AddressRejectedError {
	return &AddressRejectedError{
		message:     message,
		diagnostics: diagnostics,
	}
}

// Error implements the error interface
func (e *AddressRejectedError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *AddressRejectedError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *AddressRejectedError) ErrorCode() string {
	return "ADDRESS_REJECTED"
}

// Message returns the user-friendly error message
func (e *AddressRejectedError) Message() string {
	return e.message
}

// Details returns the field-to-reason diagnostics
func (e *AddressRejectedError) Details() any {
	return e.diagnostics
}

// Diagnostics returns the field-to-reason mapping.
func (e *AddressRejectedError) Diagnostics() map[string]string {
	return e.diagnostics
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
