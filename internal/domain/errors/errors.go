package errors

import (
	"net/http"

	"spotshare/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// Is matches any BaseError carrying the same business code, so a copy made by
// WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please check the listing details and try again.",
		"",
	)

	// Authorization-related errors
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"You don't have permission to perform this action.",
		"",
	)

	ErrNoIdentity = NewBaseError(
		http.StatusUnauthorized,
		"NO_IDENTITY",
		"You need to be signed in to do that.",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"The email or password is incorrect.",
		"",
	)

	ErrEmailAlreadyInUse = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_IN_USE",
		"An account with this email already exists.",
		"",
	)

	ErrWeakPassword = NewBaseError(
		http.StatusBadRequest,
		"WEAK_PASSWORD",
		"The password must be at least 6 characters.",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"The email address is badly formatted.",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_DISABLED",
		"This account has been disabled.",
		"",
	)

	ErrTooManyAttempts = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_ATTEMPTS",
		"Too many attempts. Please try again later.",
		"",
	)

	ErrExternalTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"EXTERNAL_TOKEN_INVALID",
		"The sign-in provider token is invalid or expired.",
		"",
	)

	// Listing-related errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"This parking spot is no longer available.",
		"",
	)

	ErrSubscriptionActive = NewBaseError(
		http.StatusConflict,
		"SUBSCRIPTION_ACTIVE",
		"A listing subscription is already active.",
		"",
	)

	// Location-related errors
	ErrLocationUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"LOCATION_UNAVAILABLE",
		"Your location is not available yet.",
		"",
	)

	ErrGeocodingFailed = NewBaseError(
		http.StatusBadGateway,
		"GEOCODING_FAILED",
		"We couldn't find that address.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong. Please try again.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource was not found.",
		"",
	)
)

// GatewayError represents a transient failure reported by an external
// collaborator. Its user message is the collaborator's own message.
type GatewayError struct {
	err       error
	operation string
}

// NewGatewayError creates a gateway failure for the named operation
func NewGatewayError(err error, operation string) AppError {
	return &GatewayError{
		err:       err,
		operation: operation,
	}
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	return errors.Wrap(e.err, e.operation+" failed").Error()
}

// Unwrap exposes the gateway error
func (e *GatewayError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *GatewayError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *GatewayError) ErrorCode() string {
	return "GATEWAY_FAILED"
}

// Message returns the gateway message
func (e *GatewayError) Message() string {
	if e.err == nil {
		return ErrInternalError.Message()
	}

	return errors.Cause(e.err).Error()
}

// Details returns detailed error information
func (e *GatewayError) Details() string {
	return e.operation
}
