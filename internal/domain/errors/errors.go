package errors

import (
	"net/http"

	"foundmoney/internal/errors"
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

// Is matches any BaseError carrying the same error code, so values derived
// through WithDetails still match their predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
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
	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrNameRequired = NewBaseError(
		http.StatusBadRequest,
		"NAME_REQUIRED",
		"First and last name are required",
		"",
	)

	// Search-related errors
	ErrUnsupportedJurisdiction = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_JURISDICTION",
		"State is not supported",
		"",
	)

	ErrSearchFailed = NewBaseError(
		http.StatusInternalServerError,
		"SEARCH_FAILED",
		"Search failed",
		"",
	)

	// Mailbox-related errors
	ErrMailboxNotConnected = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_NOT_CONNECTED",
		"Email account is not connected",
		"",
	)

	ErrMailboxAuthExpired = NewBaseError(
		http.StatusUnauthorized,
		"EMAIL_AUTH_EXPIRED",
		"Email authorization expired, please reconnect",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"Invalid or expired OAuth state",
		"",
	)

	ErrOAuthFailed = NewBaseError(
		http.StatusBadGateway,
		"OAUTH_FAILED",
		"Could not complete email authorization",
		"",
	)

	// Money-found-related errors
	ErrRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"RECORD_NOT_FOUND",
		"Money-found record not found",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Status can only move forward",
		"",
	)

	// Form-related errors
	ErrFormNotFound = NewBaseError(
		http.StatusNotFound,
		"FORM_NOT_FOUND",
		"Claim form not found",
		"",
	)

	ErrFormFillFailed = NewBaseError(
		http.StatusBadGateway,
		"FORM_FILL_FAILED",
		"Could not fill the claim form",
		"",
	)

	ErrDocumentFailed = NewBaseError(
		http.StatusInternalServerError,
		"DOCUMENT_FAILED",
		"Could not generate the claim document",
		"",
	)

	// Device-related errors
	ErrDeviceRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"DEVICE_REGISTRATION_FAILED",
		"Could not register device",
		"",
	)

	// Webhook-related errors
	ErrInvalidSignature = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_SIGNATURE",
		"Invalid webhook signature",
		"",
	)

	ErrUnknownWebhookEvent = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_WEBHOOK_EVENT",
		"Unsupported webhook event",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	// Rate-limit errors
	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrAnalyticsBatchTooLarge = NewBaseError(
		http.StatusBadRequest,
		"ANALYTICS_BATCH_TOO_LARGE",
		"Too many events in one batch",
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

// Unwrap exposes the underlying driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
