package buyer

import (
	apperrors "github.com/fictus/bookstore/pkg/errors"
)

var (
	ErrBuyerNotFound     = apperrors.New(apperrors.ErrCodeBuyerNotFound, "buyer not found")
	ErrEmailDuplicate    = apperrors.New(apperrors.ErrCodeEmailDuplicate, "email address already registered")
	ErrInsufficientFunds = apperrors.New(apperrors.ErrCodeInsufficientFunds, "insufficient funds")
	ErrInvalidAmount     = apperrors.New(apperrors.ErrCodeInvalidParams, "amount must not be negative")
	ErrInvalidName       = apperrors.New(apperrors.ErrCodeInvalidParams, "first and last name must not be empty")
	ErrInvalidEmail      = apperrors.New(apperrors.ErrCodeInvalidParams, "invalid email address")
	ErrInvalidPhone      = apperrors.New(apperrors.ErrCodeInvalidParams, "phone number must be 9 digits")
)
