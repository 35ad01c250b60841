package rating

import (
	"context"
	"errors"
	"math"
)

// Service handles book ratings. Book and user existence are checked by the
// application layer before calling in.
type Service interface {
	// Create records a user's score for a book. A user can rate a book
	// only once; re-rating goes through Update.
	Create(ctx context.Context, userID, bookID uint, value float64, review string) (*Rating, error)

	// Update replaces the value of an existing rating. An empty review
	// leaves the stored review unchanged.
	Update(ctx context.Context, userID, bookID uint, value float64, review string) (*Rating, error)

	// AverageRating returns the mean score for a book rounded to two
	// decimals, or 0 if the book has no ratings.
	AverageRating(ctx context.Context, bookID uint) (float64, error)

	ListByBook(ctx context.Context, bookID uint) ([]*Rating, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService creates the rating domain service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID, bookID uint, value float64, review string) (*Rating, error) {
	if value < 1 || value > 5 {
		return nil, ErrInvalidValue
	}

	existing, err := s.repo.FindByUserAndBook(ctx, userID, bookID)
	if err != nil && !errors.Is(err, ErrRatingNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyRated
	}

	r := NewRating(userID, bookID, value, review)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) Update(ctx context.Context, userID, bookID uint, value float64, review string) (*Rating, error) {
	if value < 1 || value > 5 {
		return nil, ErrInvalidValue
	}

	r, err := s.repo.FindByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}

	r.Value = value
	if review != "" {
		r.Review = review
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) AverageRating(ctx context.Context, bookID uint) (float64, error) {
	ratings, err := s.repo.FindByBookID(ctx, bookID)
	if err != nil {
		return 0, err
	}
	if len(ratings) == 0 {
		return 0, nil
	}

	var sum float64
	for _, r := range ratings {
		sum += r.Value
	}
	avg := sum / float64(len(ratings))
	return math.Round(avg*100) / 100, nil
}

func (s *service) ListByBook(ctx context.Context, bookID uint) ([]*Rating, error) {
	return s.repo.FindByBookID(ctx, bookID)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
