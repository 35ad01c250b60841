// Package address orchestrates buyer address management.
package address

import (
	"context"

	"github.com/fictus/bookstore/internal/domain/address"
	"github.com/fictus/bookstore/internal/domain/buyer"
)

// UseCase validates buyer existence before delegating to the address service.
type UseCase struct {
	addressService address.Service
	buyerRepo      buyer.Repository
}

// NewUseCase creates the address use case.
func NewUseCase(addressService address.Service, buyerRepo buyer.Repository) *UseCase {
	return &UseCase{
		addressService: addressService,
		buyerRepo:      buyerRepo,
	}
}

// Create adds an address to a buyer.
func (uc *UseCase) Create(ctx context.Context, params address.CreateParams) (*address.Address, error) {
	if _, err := uc.buyerRepo.FindByID(ctx, params.BuyerID); err != nil {
		return nil, err
	}
	return uc.addressService.Create(ctx, params)
}

// ListByBuyer returns a buyer's addresses.
func (uc *UseCase) ListByBuyer(ctx context.Context, buyerID uint) ([]*address.Address, error) {
	return uc.addressService.ListByBuyer(ctx, buyerID)
}

// Update modifies an address.
func (uc *UseCase) Update(ctx context.Context, id uint, params address.UpdateParams) (*address.Address, error) {
	return uc.addressService.Update(ctx, id, params)
}

// Delete removes an address.
func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	return uc.addressService.Delete(ctx, id)
}
