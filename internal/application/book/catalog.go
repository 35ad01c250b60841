// Package book orchestrates catalog administration across aggregates.
package book

import (
	"context"

	appsimilarity "github.com/fictus/bookstore/internal/application/similarity"
	"github.com/fictus/bookstore/internal/domain/author"
	"github.com/fictus/bookstore/internal/domain/book"
	"github.com/fictus/bookstore/pkg/logger"
)

// CatalogUseCase handles book create/update/delete. It checks the owning
// author exists and invalidates the similar-books cache on every change,
// since rankings depend on the catalog contents.
type CatalogUseCase struct {
	bookService book.Service
	authorRepo  author.Repository
	cache       appsimilarity.Cache // optional
}

// NewCatalogUseCase creates the catalog use case. cache may be nil.
func NewCatalogUseCase(bookService book.Service, authorRepo author.Repository, cache appsimilarity.Cache) *CatalogUseCase {
	return &CatalogUseCase{
		bookService: bookService,
		authorRepo:  authorRepo,
		cache:       cache,
	}
}

// Create adds a book to the catalog.
func (uc *CatalogUseCase) Create(ctx context.Context, params book.CreateParams) (*book.Book, error) {
	if _, err := uc.authorRepo.FindByID(ctx, params.AuthorID); err != nil {
		return nil, err
	}

	b, err := uc.bookService.Create(ctx, params)
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return b, nil
}

// Update modifies a book.
func (uc *CatalogUseCase) Update(ctx context.Context, id uint, params book.UpdateParams) (*book.Book, error) {
	if params.AuthorID != nil {
		if _, err := uc.authorRepo.FindByID(ctx, *params.AuthorID); err != nil {
			return nil, err
		}
	}

	b, err := uc.bookService.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return b, nil
}

// Delete removes a book.
func (uc *CatalogUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.bookService.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *CatalogUseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		logger.L.Warnw("failed to invalidate similarity cache", "error", err)
	}
}
