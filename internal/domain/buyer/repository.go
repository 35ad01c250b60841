package buyer

import (
	"context"
)

// Repository persists buyers and their book relations. Implementations must
// translate storage errors (not found, duplicate key) to domain errors.
type Repository interface {
	Create(ctx context.Context, b *Buyer) error
	FindByID(ctx context.Context, id uint) (*Buyer, error)
	FindByUserID(ctx context.Context, userID uint) (*Buyer, error)
	FindAll(ctx context.Context) ([]*Buyer, error)

	// FindByBookID returns the buyers who purchased the given book.
	FindByBookID(ctx context.Context, bookID uint) ([]*Buyer, error)

	Update(ctx context.Context, b *Buyer) error
	Delete(ctx context.Context, id uint) error

	// LockByID loads a buyer with a row lock. Only valid inside a
	// transaction; the lock is held until the transaction ends.
	LockByID(ctx context.Context, id uint) (*Buyer, error)

	// UpdateWallet applies delta cents to the wallet, failing if the
	// balance would go negative.
	UpdateWallet(ctx context.Context, id uint, delta int64) error

	// AddPurchasedBook records that the buyer owns a copy of the book.
	// Repeat purchases append independent rows.
	AddPurchasedBook(ctx context.Context, buyerID, bookID uint) error

	// AddToWishlist links a book to the buyer's wishlist. Adding a book
	// that is already listed is a no-op.
	AddToWishlist(ctx context.Context, buyerID, bookID uint) error

	// FindWishlist returns the ids of the buyer's wishlisted books.
	FindWishlist(ctx context.Context, buyerID uint) ([]uint, error)
}
