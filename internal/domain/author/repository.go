package author

import (
	"context"
)

// Repository is the storage contract for authors.
type Repository interface {
	// Create persists a new author, filling in its generated id.
	Create(ctx context.Context, author *Author) error

	// FindByID returns the author with the given id, or ErrAuthorNotFound.
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindByName returns the author with the given name, or ErrAuthorNotFound.
	FindByName(ctx context.Context, name string) (*Author, error)

	// FindAll returns every author.
	FindAll(ctx context.Context) ([]*Author, error)

	// Update persists all fields of an existing author.
	Update(ctx context.Context, author *Author) error

	// Delete removes an author, or returns ErrAuthorNotFound.
	Delete(ctx context.Context, id uint) error
}
