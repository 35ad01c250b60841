package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/fictus/bookstore/internal/domain/author"
	"github.com/fictus/bookstore/internal/domain/book"
	apperrors "github.com/fictus/bookstore/pkg/errors"
)

type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository creates the author repository.
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{
		Name:       a.Name,
		Birth:      a.Birth,
		Categories: joinCategories(a.Categories),
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return author.ErrNameDuplicate
		}
		return apperrors.Wrap(err, "failed to create author")
	}

	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query author")
	}
	return toAuthorEntity(&model), nil
}

func (r *authorRepository) FindByName(ctx context.Context, name string) (*author.Author, error) {
	var model AuthorModel
	err := getDB(ctx, r.db).Where("name = ?", name).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query author")
	}
	return toAuthorEntity(&model), nil
}

func (r *authorRepository) FindAll(ctx context.Context) ([]*author.Author, error) {
	var models []AuthorModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to list authors")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{
		ID:         a.ID,
		Name:       a.Name,
		Birth:      a.Birth,
		Categories: joinCategories(a.Categories),
	}
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return author.ErrNameDuplicate
		}
		return apperrors.Wrap(err, "failed to update author")
	}
	a.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&AuthorModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete author")
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func toAuthorEntity(model *AuthorModel) *author.Author {
	return &author.Author{
		ID:         model.ID,
		Name:       model.Name,
		Birth:      model.Birth,
		Categories: splitCategories(model.Categories),
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func joinCategories(categories []book.Category) string {
	parts := make([]string, len(categories))
	for i, c := range categories {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

func splitCategories(s string) []book.Category {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	categories := make([]book.Category, len(parts))
	for i, p := range parts {
		categories[i] = book.Category(p)
	}
	return categories
}
