package book

import (
	"context"
	"errors"
)

// Service carries the catalog business rules (field validation, title
// uniqueness). Cross-aggregate checks such as author existence belong to the
// application layer.
type Service interface {
	// Create validates and persists a new book.
	Create(ctx context.Context, params CreateParams) (*Book, error)

	// GetByID returns a book by id.
	GetByID(ctx context.Context, id uint) (*Book, error)

	// GetByTitle returns a book by its unique title.
	GetByTitle(ctx context.Context, title string) (*Book, error)

	// ListAll returns the whole catalog.
	ListAll(ctx context.Context) ([]*Book, error)

	// ListByAuthor returns an author's books.
	ListByAuthor(ctx context.Context, authorID uint) ([]*Book, error)

	// Update applies the non-nil fields of params to an existing book.
	Update(ctx context.Context, id uint, params UpdateParams) (*Book, error)

	// Delete removes a book from the catalog.
	Delete(ctx context.Context, id uint) error
}

// CreateParams are the fields required to put a new book on the shelf.
type CreateParams struct {
	Title         string
	PublishedDate string
	AuthorID      uint
	Category      Category
	Stock         int
	Price         int64 // cents
	Introduction  string
	Tags          []string
}

// UpdateParams are the optional fields of an update; nil means "unchanged".
type UpdateParams struct {
	Title         *string
	PublishedDate *string
	AuthorID      *uint
	Category      *Category
	Stock         *int
	Price         *int64
	Introduction  *string
	Tags          []string
}

type service struct {
	repo Repository
}

// NewService creates the catalog domain service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Book, error) {
	if params.Title == "" {
		return nil, ErrInvalidTitle
	}
	if !params.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if params.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if params.Stock < 0 {
		return nil, ErrInvalidStock
	}

	// Title uniqueness is enforced by the database unique index; this check
	// only exists to return the friendlier duplicate error on the common path.
	existing, err := s.repo.FindByTitle(ctx, params.Title)
	if err == nil && existing != nil {
		return nil, ErrTitleDuplicate
	}
	if err != nil && !errors.Is(err, ErrBookNotFound) {
		return nil, err
	}

	b := NewBook(params.Title, params.PublishedDate, params.Category, params.Stock,
		params.Price, params.Introduction, params.Tags, params.AuthorID)

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetByTitle(ctx context.Context, title string) (*Book, error) {
	return s.repo.FindByTitle(ctx, title)
}

func (s *service) ListAll(ctx context.Context) ([]*Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) ListByAuthor(ctx context.Context, authorID uint) ([]*Book, error) {
	return s.repo.FindByAuthorID(ctx, authorID)
}

func (s *service) Update(ctx context.Context, id uint, params UpdateParams) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		b.Title = *params.Title
	}
	if params.PublishedDate != nil {
		b.PublishedDate = *params.PublishedDate
	}
	if params.AuthorID != nil {
		b.AuthorID = *params.AuthorID
	}
	if params.Category != nil {
		if !params.Category.Valid() {
			return nil, ErrInvalidCategory
		}
		b.Category = *params.Category
	}
	if params.Stock != nil {
		if *params.Stock < 0 {
			return nil, ErrInvalidStock
		}
		b.Stock = *params.Stock
	}
	if params.Price != nil {
		if *params.Price < 0 {
			return nil, ErrInvalidPrice
		}
		b.Price = *params.Price
	}
	if params.Introduction != nil {
		b.Introduction = *params.Introduction
	}
	if params.Tags != nil {
		b.Tags = params.Tags
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
