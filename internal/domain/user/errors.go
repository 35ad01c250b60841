package user

import (
	apperrors "github.com/fictus/bookstore/pkg/errors"
)

var (
	// ErrUserNotFound is returned when no account matches the id or email.
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "user not found")

	// ErrEmailDuplicate is returned when the email is already registered.
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "email address already registered")

	// ErrInvalidEmail rejects malformed email addresses.
	ErrInvalidEmail = apperrors.New(apperrors.ErrCodeInvalidParams, "invalid email address format")

	// ErrInvalidRole rejects values outside the role enum.
	ErrInvalidRole = apperrors.New(apperrors.ErrCodeInvalidParams, "unknown user role")
)
