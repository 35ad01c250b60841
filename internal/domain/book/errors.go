package book

import (
	apperrors "github.com/fictus/bookstore/pkg/errors"
)

var (
	// ErrBookNotFound is returned when no book matches the given id or title.
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "book not found")

	// ErrTitleDuplicate is returned when a book with the same title exists.
	ErrTitleDuplicate = apperrors.New(apperrors.ErrCodeTitleDuplicate, "a book with this title already exists")

	// ErrOutOfStock is returned when a purchase hits zero stock.
	ErrOutOfStock = apperrors.New(apperrors.ErrCodeOutOfStock, "book is out of stock")

	// ErrInvalidPrice rejects non-positive prices.
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "price must not be negative")

	// ErrInvalidStock rejects negative stock counts.
	ErrInvalidStock = apperrors.New(apperrors.ErrCodeInvalidParams, "stock must not be negative")

	// ErrInvalidQuantity rejects non-positive stock adjustments.
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "quantity must be greater than zero")

	// ErrInvalidTitle rejects empty titles.
	ErrInvalidTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "title must not be empty")

	// ErrInvalidCategory rejects values outside the category enum.
	ErrInvalidCategory = apperrors.New(apperrors.ErrCodeInvalidParams, "unknown book category")
)
