package book

import (
	"context"
)

// Repository is the storage contract for the catalog. The domain defines the
// interface and infrastructure implements it, so services and use cases can
// run against test doubles.
type Repository interface {
	// Create persists a new book, filling in its generated id.
	Create(ctx context.Context, book *Book) error

	// FindByID returns the book with the given id, or ErrBookNotFound.
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByTitle returns the book with the given title, or ErrBookNotFound.
	FindByTitle(ctx context.Context, title string) (*Book, error)

	// FindAll returns every book in the catalog.
	FindAll(ctx context.Context) ([]*Book, error)

	// FindByCategory returns all books in a category, in insertion (id)
	// order. The similarity ranker depends on this order being stable.
	FindByCategory(ctx context.Context, category Category) ([]*Book, error)

	// FindByAuthorID returns all books written by the given author.
	FindByAuthorID(ctx context.Context, authorID uint) ([]*Book, error)

	// FindByBuyerID returns the books a buyer has purchased.
	FindByBuyerID(ctx context.Context, buyerID uint) ([]*Book, error)

	// Update persists all fields of an existing book.
	Update(ctx context.Context, book *Book) error

	// Delete soft-deletes a book, or returns ErrBookNotFound.
	Delete(ctx context.Context, id uint) error

	// LockByID loads a book under SELECT ... FOR UPDATE. Must be called
	// inside a transaction; concurrent purchases of the same book serialize
	// on this lock.
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateStock atomically applies delta to a book's stock, refusing to
	// take it negative. Returns ErrBookNotFound or ErrOutOfStock.
	UpdateStock(ctx context.Context, id uint, delta int) error
}
