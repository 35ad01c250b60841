package errors

import (
	"errors"
	"fmt"
)

// AppError is the error type surfaced to API callers.
// Code is a business error code (not an HTTP status); Message is safe to show
// to the caller; Err carries the underlying cause and is never serialized.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap supports errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with a business code and caller-facing message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap converts a low-level error (database, redis, broker) into an internal
// AppError, hiding the cause from the caller.
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// Error codes. 4xxxx are caller errors (bad input, business rule violations),
// 5xxxx are server-side failures.
const (
	// System (50000-50099)
	ErrCodeInternal      = 50000
	ErrCodeDatabaseError = 50001
	ErrCodeRedisError    = 50002

	// Authentication / authorization (40100-40199)
	ErrCodeUnauthenticated = 40100
	ErrCodeInvalidToken    = 40101
	ErrCodeTokenExpired    = 40102
	ErrCodeInvalidPassword = 40103
	ErrCodeForbidden       = 40104

	// Missing resources (40400-40499)
	ErrCodeNotFound         = 40400
	ErrCodeUserNotFound     = 40401
	ErrCodeBookNotFound     = 40402
	ErrCodeAuthorNotFound   = 40403
	ErrCodeBuyerNotFound    = 40404
	ErrCodeEmployeeNotFound = 40405
	ErrCodeAddressNotFound  = 40406
	ErrCodeRatingNotFound   = 40407

	// Business rules (40000-40099)
	ErrCodeBusinessError     = 40000
	ErrCodeOutOfStock        = 40001
	ErrCodeInsufficientFunds = 40002
	ErrCodeEmailDuplicate    = 40003
	ErrCodeTitleDuplicate    = 40004
	ErrCodeNameDuplicate     = 40005
	ErrCodeAlreadyRated      = 40006
	ErrCodeDuplicateEntry    = 40009

	// Parameters (40900-40999)
	ErrCodeInvalidParams = 40900
)

// Predeclared errors shared across packages.
var (
	ErrInternal      = New(ErrCodeInternal, "internal server error")
	ErrDatabaseError = New(ErrCodeDatabaseError, "database error")
	ErrRedisError    = New(ErrCodeRedisError, "cache service error")

	ErrUnauthenticated = New(ErrCodeUnauthenticated, "not authenticated")
	ErrInvalidToken    = New(ErrCodeInvalidToken, "invalid token")
	ErrTokenExpired    = New(ErrCodeTokenExpired, "token expired")
	ErrInvalidPassword = New(ErrCodeInvalidPassword, "invalid password")
	ErrForbidden       = New(ErrCodeForbidden, "insufficient permissions")

	ErrInvalidParams = New(ErrCodeInvalidParams, "invalid parameters")
)

// IsAppError reports whether err is (or wraps) an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, wrapping unknown errors as
// internal so callers never see raw driver messages.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "internal server error")
}
