package employee

import (
	apperrors "github.com/fictus/bookstore/pkg/errors"
)

var (
	ErrEmployeeNotFound = apperrors.New(apperrors.ErrCodeEmployeeNotFound, "employee not found")
	ErrEmailDuplicate   = apperrors.New(apperrors.ErrCodeEmailDuplicate, "email address already registered")
	ErrInvalidName      = apperrors.New(apperrors.ErrCodeInvalidParams, "first and last name must not be empty")
	ErrInvalidEmail     = apperrors.New(apperrors.ErrCodeInvalidParams, "invalid email address")
	ErrInvalidRole      = apperrors.New(apperrors.ErrCodeInvalidParams, "invalid employee role")
	ErrBossNotFound     = apperrors.New(apperrors.ErrCodeEmployeeNotFound, "supervising employee not found")
	ErrSelfBoss         = apperrors.New(apperrors.ErrCodeInvalidParams, "employee cannot be their own boss")
)
