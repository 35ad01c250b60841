// Package rating orchestrates book ratings.
package rating

import (
	"context"

	"github.com/fictus/bookstore/internal/domain/book"
	"github.com/fictus/bookstore/internal/domain/rating"
	"github.com/fictus/bookstore/internal/domain/user"
)

// UseCase validates book and user existence before delegating to the rating
// service.
type UseCase struct {
	ratingService rating.Service
	bookRepo      book.Repository
	userRepo      user.Repository
}

// NewUseCase creates the rating use case.
func NewUseCase(ratingService rating.Service, bookRepo book.Repository, userRepo user.Repository) *UseCase {
	return &UseCase{
		ratingService: ratingService,
		bookRepo:      bookRepo,
		userRepo:      userRepo,
	}
}

// Create records a user's rating for a book.
func (uc *UseCase) Create(ctx context.Context, userID, bookID uint, value float64, review string) (*rating.Rating, error) {
	if _, err := uc.bookRepo.FindByID(ctx, bookID); err != nil {
		return nil, err
	}
	if _, err := uc.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return uc.ratingService.Create(ctx, userID, bookID, value, review)
}

// Update replaces a user's existing rating for a book.
func (uc *UseCase) Update(ctx context.Context, userID, bookID uint, value float64, review string) (*rating.Rating, error) {
	if _, err := uc.bookRepo.FindByID(ctx, bookID); err != nil {
		return nil, err
	}
	return uc.ratingService.Update(ctx, userID, bookID, value, review)
}

// Average returns the book's mean rating, 0 when unrated.
func (uc *UseCase) Average(ctx context.Context, bookID uint) (float64, error) {
	if _, err := uc.bookRepo.FindByID(ctx, bookID); err != nil {
		return 0, err
	}
	return uc.ratingService.AverageRating(ctx, bookID)
}
