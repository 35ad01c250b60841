package rating

import (
	apperrors "github.com/fictus/bookstore/pkg/errors"
)

var (
	ErrRatingNotFound = apperrors.New(apperrors.ErrCodeRatingNotFound, "rating not found")
	ErrAlreadyRated   = apperrors.New(apperrors.ErrCodeAlreadyRated, "book already rated by this user")
	ErrInvalidValue   = apperrors.New(apperrors.ErrCodeInvalidParams, "rating value must be between 1 and 5")
)
