package address

import (
	apperrors "github.com/fictus/bookstore/pkg/errors"
)

var (
	ErrAddressNotFound = apperrors.New(apperrors.ErrCodeAddressNotFound, "address not found")
	ErrInvalidStreet   = apperrors.New(apperrors.ErrCodeInvalidParams, "street line 1 must not be empty")
	ErrBuyerNotFound   = apperrors.New(apperrors.ErrCodeBuyerNotFound, "buyer not found")
)
