package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fictus/bookstore/internal/domain/buyer"
	apperrors "github.com/fictus/bookstore/pkg/errors"
)

type buyerRepository struct {
	db *gorm.DB
}

// NewBuyerRepository creates the buyer repository.
func NewBuyerRepository(db *gorm.DB) buyer.Repository {
	return &buyerRepository{db: db}
}

func (r *buyerRepository) Create(ctx context.Context, b *buyer.Buyer) error {
	model := toBuyerModel(b)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return buyer.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "failed to create buyer")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *buyerRepository) FindByID(ctx context.Context, id uint) (*buyer.Buyer, error) {
	var model BuyerModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, buyer.ErrBuyerNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query buyer")
	}
	return toBuyerEntity(&model), nil
}

func (r *buyerRepository) FindByUserID(ctx context.Context, userID uint) (*buyer.Buyer, error) {
	var model BuyerModel
	err := getDB(ctx, r.db).Where("user_id = ?", userID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, buyer.ErrBuyerNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query buyer")
	}
	return toBuyerEntity(&model), nil
}

func (r *buyerRepository) FindAll(ctx context.Context) ([]*buyer.Buyer, error) {
	var models []BuyerModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to list buyers")
	}
	return toBuyerEntities(models), nil
}

func (r *buyerRepository) FindByBookID(ctx context.Context, bookID uint) ([]*buyer.Buyer, error) {
	var models []BuyerModel
	err := getDB(ctx, r.db).
		Joins("JOIN buyer_books ON buyer_books.buyer_id = buyers.id").
		Where("buyer_books.book_id = ?", bookID).
		Distinct("buyers.*").
		Order("buyers.id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list purchasers")
	}
	return toBuyerEntities(models), nil
}

func (r *buyerRepository) Update(ctx context.Context, b *buyer.Buyer) error {
	model := toBuyerModel(b)
	model.ID = b.ID
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return buyer.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "failed to update buyer")
	}
	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *buyerRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&BuyerModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete buyer")
	}
	if result.RowsAffected == 0 {
		return buyer.ErrBuyerNotFound
	}
	return nil
}

// LockByID loads the buyer with SELECT FOR UPDATE. Must run inside a
// transaction.
func (r *buyerRepository) LockByID(ctx context.Context, id uint) (*buyer.Buyer, error) {
	var model BuyerModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, buyer.ErrBuyerNotFound
		}
		return nil, apperrors.Wrap(err, "failed to lock buyer")
	}
	return toBuyerEntity(&model), nil
}

// UpdateWallet applies delta atomically; the WHERE guard keeps the balance
// from going negative.
func (r *buyerRepository) UpdateWallet(ctx context.Context, id uint, delta int64) error {
	db := getDB(ctx, r.db)
	result := db.Model(&BuyerModel{}).
		Where("id = ?", id).
		Where("wallet + ? >= 0", delta).
		Update("wallet", gorm.Expr("wallet + ?", delta))
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to update wallet")
	}

	if result.RowsAffected == 0 {
		var model BuyerModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return buyer.ErrBuyerNotFound
			}
			return apperrors.Wrap(err, "failed to query buyer")
		}
		return buyer.ErrInsufficientFunds
	}
	return nil
}

func (r *buyerRepository) AddPurchasedBook(ctx context.Context, buyerID, bookID uint) error {
	record := &PurchaseModel{
		BuyerID: buyerID,
		BookID:  bookID,
	}
	if err := getDB(ctx, r.db).Create(record).Error; err != nil {
		return apperrors.Wrap(err, "failed to record purchase")
	}
	return nil
}

func (r *buyerRepository) AddToWishlist(ctx context.Context, buyerID, bookID uint) error {
	record := &WishlistModel{
		BuyerID: buyerID,
		BookID:  bookID,
	}
	err := getDB(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record).Error
	if err != nil {
		// Re-wishlisting an already listed book is a no-op.
		if isDuplicateError(err) {
			return nil
		}
		return apperrors.Wrap(err, "failed to add to wishlist")
	}
	return nil
}

func (r *buyerRepository) FindWishlist(ctx context.Context, buyerID uint) ([]uint, error) {
	var ids []uint
	err := getDB(ctx, r.db).
		Model(&WishlistModel{}).
		Where("buyer_id = ?", buyerID).
		Order("id ASC").
		Pluck("book_id", &ids).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list wishlist")
	}
	return ids, nil
}

func toBuyerModel(b *buyer.Buyer) *BuyerModel {
	return &BuyerModel{
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Email:     b.EmailAddress,
		Phone:     b.PhoneNumber,
		Birth:     b.Birth,
		Wallet:    b.Wallet,
		UserID:    b.UserID,
	}
}

func toBuyerEntity(model *BuyerModel) *buyer.Buyer {
	return &buyer.Buyer{
		ID:           model.ID,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		EmailAddress: model.Email,
		PhoneNumber:  model.Phone,
		Birth:        model.Birth,
		Wallet:       model.Wallet,
		UserID:       model.UserID,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func toBuyerEntities(models []BuyerModel) []*buyer.Buyer {
	buyers := make([]*buyer.Buyer, len(models))
	for i := range models {
		buyers[i] = toBuyerEntity(&models[i])
	}
	return buyers
}
