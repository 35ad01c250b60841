package rating

import (
	"context"
)

// Repository persists ratings.
type Repository interface {
	Create(ctx context.Context, r *Rating) error
	FindByID(ctx context.Context, id uint) (*Rating, error)
	FindByUserAndBook(ctx context.Context, userID, bookID uint) (*Rating, error)
	FindByBookID(ctx context.Context, bookID uint) ([]*Rating, error)
	Update(ctx context.Context, r *Rating) error
	Delete(ctx context.Context, id uint) error
}
