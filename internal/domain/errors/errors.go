// Package errors defines application errors that carry their HTTP status and
// exact wire message. The message strings are load-bearing: the browser
// client keys toast notifications off them, so they must not drift.
package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Wire message the client asserts on
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the wire message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types. Status codes and messages reproduce the legacy
// contract, including the 200 on a duplicate registration.
var (
	// Auth flows
	ErrAlreadyRegistered = NewBaseError(
		http.StatusOK,
		"ALREADY_REGISTERED",
		"Already registered, please login",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusNotFound,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
	)

	ErrEmailNotRegistered = NewBaseError(
		http.StatusNotFound,
		"EMAIL_NOT_REGISTERED",
		"Email is not registered",
	)

	ErrInvalidPassword = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_PASSWORD",
		"Invalid password",
	)

	ErrWrongEmailOrAnswer = NewBaseError(
		http.StatusNotFound,
		"WRONG_EMAIL_OR_ANSWER",
		"Wrong email or answer",
	)

	// Categories
	ErrCategoryExists = NewBaseError(
		http.StatusConflict,
		"CATEGORY_EXISTS",
		"Category already exists",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
	)

	// Products
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
	)

	ErrProductMissing = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_MISSING",
		"Product does not exist",
	)

	ErrNoPhoto = NewBaseError(
		http.StatusNotFound,
		"NO_PHOTO",
		"No photo available",
	)

	// Orders
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
	)

	ErrInvalidOrderStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_STATUS",
		"Invalid order status",
	)
)
