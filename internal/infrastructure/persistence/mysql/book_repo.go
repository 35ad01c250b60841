package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fictus/bookstore/internal/domain/book"
	apperrors "github.com/fictus/bookstore/pkg/errors"
)

// bookRepository implements book.Repository on MySQL. It converts between
// domain entities and GORM models and translates driver errors to domain
// errors.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates the book repository.
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrTitleDuplicate
		}
		return apperrors.Wrap(err, "failed to create book")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query book")
	}
	return toBookEntity(&model), nil
}

func (r *bookRepository) FindByTitle(ctx context.Context, title string) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Where("title = ?", title).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query book")
	}
	return toBookEntity(&model), nil
}

func (r *bookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to list books")
	}
	return toBookEntities(models), nil
}

// FindByCategory returns books in ascending id order; similarity ranking
// relies on that order for stable tie-breaks.
func (r *bookRepository) FindByCategory(ctx context.Context, category book.Category) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).
		Where("category = ?", string(category)).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list books by category")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) FindByAuthorID(ctx context.Context, authorID uint) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).
		Where("author_id = ?", authorID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list books by author")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) FindByBuyerID(ctx context.Context, buyerID uint) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).
		Joins("JOIN buyer_books ON buyer_books.book_id = books.id").
		Where("buyer_books.buyer_id = ?", buyerID).
		Order("buyer_books.id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list purchased books")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	model.ID = b.ID
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrTitleDuplicate
		}
		return apperrors.Wrap(err, "failed to update book")
	}
	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete book")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// LockByID loads the book with SELECT FOR UPDATE. Must run inside a
// transaction; the row stays locked until commit or rollback.
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "failed to lock book")
	}
	return toBookEntity(&model), nil
}

// UpdateStock applies delta atomically; the WHERE guard keeps stock from
// going negative even outside a lock.
func (r *bookRepository) UpdateStock(ctx context.Context, id uint, delta int) error {
	db := getDB(ctx, r.db)
	result := db.Model(&BookModel{}).
		Where("id = ?", id).
		Where("stock + ? >= 0", delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to update stock")
	}

	if result.RowsAffected == 0 {
		// Either the book is gone or the guard rejected the delta.
		var model BookModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "failed to query book")
		}
		return book.ErrOutOfStock
	}
	return nil
}

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		Title:         b.Title,
		PublishedDate: b.PublishedDate,
		Category:      string(b.Category),
		Stock:         b.Stock,
		Price:         b.Price,
		Introduction:  b.Introduction,
		Tags:          strings.Join(b.Tags, ","),
		AuthorID:      b.AuthorID,
	}
}

func toBookEntity(model *BookModel) *book.Book {
	var tags []string
	if model.Tags != "" {
		tags = strings.Split(model.Tags, ",")
	}
	return &book.Book{
		ID:            model.ID,
		Title:         model.Title,
		PublishedDate: model.PublishedDate,
		Category:      book.Category(model.Category),
		Stock:         model.Stock,
		Price:         model.Price,
		Introduction:  model.Introduction,
		Tags:          tags,
		AuthorID:      model.AuthorID,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books
}
