package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fictus/bookstore/internal/domain/rating"
	apperrors "github.com/fictus/bookstore/pkg/errors"
)

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates the rating repository.
func NewRatingRepository(db *gorm.DB) rating.Repository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rt *rating.Rating) error {
	model := &RatingModel{
		Value:  rt.Value,
		Review: rt.Review,
		UserID: rt.UserID,
		BookID: rt.BookID,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return rating.ErrAlreadyRated
		}
		return apperrors.Wrap(err, "failed to create rating")
	}

	rt.ID = model.ID
	rt.CreatedAt = model.CreatedAt
	rt.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ratingRepository) FindByID(ctx context.Context, id uint) (*rating.Rating, error) {
	var model RatingModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rating.ErrRatingNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query rating")
	}
	return toRatingEntity(&model), nil
}

func (r *ratingRepository) FindByUserAndBook(ctx context.Context, userID, bookID uint) (*rating.Rating, error) {
	var model RatingModel
	err := getDB(ctx, r.db).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rating.ErrRatingNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query rating")
	}
	return toRatingEntity(&model), nil
}

func (r *ratingRepository) FindByBookID(ctx context.Context, bookID uint) ([]*rating.Rating, error) {
	var models []RatingModel
	err := getDB(ctx, r.db).
		Where("book_id = ?", bookID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list ratings")
	}

	ratings := make([]*rating.Rating, len(models))
	for i := range models {
		ratings[i] = toRatingEntity(&models[i])
	}
	return ratings, nil
}

func (r *ratingRepository) Update(ctx context.Context, rt *rating.Rating) error {
	model := &RatingModel{
		ID:     rt.ID,
		Value:  rt.Value,
		Review: rt.Review,
		UserID: rt.UserID,
		BookID: rt.BookID,
	}
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to update rating")
	}
	rt.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ratingRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&RatingModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete rating")
	}
	if result.RowsAffected == 0 {
		return rating.ErrRatingNotFound
	}
	return nil
}

func toRatingEntity(model *RatingModel) *rating.Rating {
	return &rating.Rating{
		ID:        model.ID,
		Value:     model.Value,
		Review:    model.Review,
		UserID:    model.UserID,
		BookID:    model.BookID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
