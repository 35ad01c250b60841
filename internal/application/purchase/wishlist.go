package purchase

import (
	"context"

	"github.com/fictus/bookstore/internal/domain/book"
	"github.com/fictus/bookstore/internal/domain/buyer"
)

// WishlistUseCase adds books to a buyer's wishlist.
type WishlistUseCase struct {
	buyerRepo buyer.Repository
	bookRepo  book.Repository
}

// NewWishlistUseCase creates the wishlist use case.
func NewWishlistUseCase(buyerRepo buyer.Repository, bookRepo book.Repository) *WishlistUseCase {
	return &WishlistUseCase{
		buyerRepo: buyerRepo,
		bookRepo:  bookRepo,
	}
}

// Execute links the book to the buyer's wishlist and returns the buyer.
// Wishlisting the same book twice is a no-op.
func (uc *WishlistUseCase) Execute(ctx context.Context, buyerID, bookID uint) (*buyer.Buyer, error) {
	b, err := uc.buyerRepo.FindByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.bookRepo.FindByID(ctx, bookID); err != nil {
		return nil, err
	}

	if err := uc.buyerRepo.AddToWishlist(ctx, buyerID, bookID); err != nil {
		return nil, err
	}
	return b, nil
}
