package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fictus/bookstore/internal/domain/address"
	apperrors "github.com/fictus/bookstore/pkg/errors"
)

type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates the address repository.
func NewAddressRepository(db *gorm.DB) address.Repository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, a *address.Address) error {
	model := toAddressModel(a)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create address")
	}

	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *addressRepository) FindByID(ctx context.Context, id uint) (*address.Address, error) {
	var model AddressModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, address.ErrAddressNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query address")
	}
	return toAddressEntity(&model), nil
}

func (r *addressRepository) FindAll(ctx context.Context) ([]*address.Address, error) {
	var models []AddressModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to list addresses")
	}
	return toAddressEntities(models), nil
}

func (r *addressRepository) FindByBuyerID(ctx context.Context, buyerID uint) ([]*address.Address, error) {
	var models []AddressModel
	err := getDB(ctx, r.db).
		Where("buyer_id = ?", buyerID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list addresses")
	}
	return toAddressEntities(models), nil
}

func (r *addressRepository) Update(ctx context.Context, a *address.Address) error {
	model := toAddressModel(a)
	model.ID = a.ID
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to update address")
	}
	a.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *addressRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&AddressModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return address.ErrAddressNotFound
	}
	return nil
}

func (r *addressRepository) ClearDefaultShipping(ctx context.Context, buyerID uint) error {
	err := getDB(ctx, r.db).
		Model(&AddressModel{}).
		Where("buyer_id = ? AND default_shipping = ?", buyerID, true).
		Update("default_shipping", false).Error
	if err != nil {
		return apperrors.Wrap(err, "failed to clear default shipping address")
	}
	return nil
}

func (r *addressRepository) ClearDefaultBilling(ctx context.Context, buyerID uint) error {
	err := getDB(ctx, r.db).
		Model(&AddressModel{}).
		Where("buyer_id = ? AND default_billing = ?", buyerID, true).
		Update("default_billing", false).Error
	if err != nil {
		return apperrors.Wrap(err, "failed to clear default billing address")
	}
	return nil
}

func toAddressModel(a *address.Address) *AddressModel {
	return &AddressModel{
		StreetLine1:     a.StreetLine1,
		StreetLine2:     a.StreetLine2,
		City:            a.City,
		Province:        a.Province,
		PostalCode:      a.PostalCode,
		Phone:           a.PhoneNumber,
		DefaultShipping: a.DefaultShippingAddress,
		DefaultBilling:  a.DefaultBillingAddress,
		BuyerID:         a.BuyerID,
	}
}

func toAddressEntity(model *AddressModel) *address.Address {
	return &address.Address{
		ID:                     model.ID,
		StreetLine1:            model.StreetLine1,
		StreetLine2:            model.StreetLine2,
		City:                   model.City,
		Province:               model.Province,
		PostalCode:             model.PostalCode,
		PhoneNumber:            model.Phone,
		DefaultShippingAddress: model.DefaultShipping,
		DefaultBillingAddress:  model.DefaultBilling,
		BuyerID:                model.BuyerID,
		CreatedAt:              model.CreatedAt,
		UpdatedAt:              model.UpdatedAt,
	}
}

func toAddressEntities(models []AddressModel) []*address.Address {
	addresses := make([]*address.Address, len(models))
	for i := range models {
		addresses[i] = toAddressEntity(&models[i])
	}
	return addresses
}
