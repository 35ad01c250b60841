package author

import (
	apperrors "github.com/fictus/bookstore/pkg/errors"
)

var (
	// ErrAuthorNotFound is returned when no author matches the given id.
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "author not found")

	// ErrNameDuplicate is returned when an author with the same name exists.
	ErrNameDuplicate = apperrors.New(apperrors.ErrCodeNameDuplicate, "an author with this name already exists")

	// ErrInvalidName rejects empty names.
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "name must not be empty")
)
