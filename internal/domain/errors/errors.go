// Package errors defines application-level error types shared between the
// use case and delivery layers.
package errors

import (
	"net/http"

	"fieldforce/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
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
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Tracking-related errors
	ErrSessionAlreadyActive = NewBaseError(
		http.StatusConflict,
		"SESSION_ALREADY_ACTIVE",
		"A tracking session is already running for this user",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"No active tracking session for this user",
		"",
	)

	ErrLocationUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"LOCATION_UNAVAILABLE",
		"Device location is currently unavailable",
		"",
	)

	// Outlet-related errors
	ErrOutletNotFound = NewBaseError(
		http.StatusNotFound,
		"OUTLET_NOT_FOUND",
		"Outlet not found",
		"",
	)

	ErrInvalidGeofenceRadius = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GEOFENCE_RADIUS",
		"Geofence radius must be positive",
		"",
	)

	// Visit-related errors
	ErrVisitNotFound = NewBaseError(
		http.StatusNotFound,
		"VISIT_NOT_FOUND",
		"Visit not found",
		"",
	)

	ErrVisitWriteFailed = NewBaseError(
		http.StatusInternalServerError,
		"VISIT_WRITE_FAILED",
		"Failed to record the visit",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrNotAtOutlet = NewBaseError(
		http.StatusConflict,
		"NOT_AT_OUTLET",
		"Orders can only be placed while inside the outlet's geofence",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"The order must contain at least one line",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Line quantity must be at least 1",
		"",
	)

	ErrUnpricedLine = NewBaseError(
		http.StatusUnprocessableEntity,
		"UNPRICED_LINE",
		"One or more lines have no catalog price and cannot be submitted",
		"",
	)

	ErrInvalidPartialPayment = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PARTIAL_PAYMENT",
		"Partial payment must be greater than zero and not exceed the order total",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

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
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
