package author

import (
	"context"
	"errors"
	"time"

	"github.com/fictus/bookstore/internal/domain/book"
)

// Service carries the author business rules.
type Service interface {
	// Create validates and persists a new author.
	Create(ctx context.Context, name string, birth time.Time, categories []book.Category) (*Author, error)

	// GetByID returns an author by id.
	GetByID(ctx context.Context, id uint) (*Author, error)

	// GetByName returns an author by their unique name.
	GetByName(ctx context.Context, name string) (*Author, error)

	// ListAll returns every author.
	ListAll(ctx context.Context) ([]*Author, error)

	// Update applies the non-nil fields to an existing author.
	Update(ctx context.Context, id uint, name *string, birth *time.Time, categories []book.Category) (*Author, error)

	// Delete removes an author.
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService creates the author domain service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, name string, birth time.Time, categories []book.Category) (*Author, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	for _, c := range categories {
		if !c.Valid() {
			return nil, book.ErrInvalidCategory
		}
	}

	existing, err := s.repo.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, ErrNameDuplicate
	}
	if err != nil && !errors.Is(err, ErrAuthorNotFound) {
		return nil, err
	}

	a := NewAuthor(name, birth, categories)
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetByName(ctx context.Context, name string) (*Author, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *service) ListAll(ctx context.Context) ([]*Author, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Update(ctx context.Context, id uint, name *string, birth *time.Time, categories []book.Category) (*Author, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		if *name == "" {
			return nil, ErrInvalidName
		}
		a.Name = *name
	}
	if birth != nil {
		a.Birth = *birth
	}
	if categories != nil {
		for _, c := range categories {
			if !c.Valid() {
				return nil, book.ErrInvalidCategory
			}
		}
		a.Categories = categories
	}
	a.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
