package address

import (
	"context"
)

// Repository persists addresses.
type Repository interface {
	Create(ctx context.Context, a *Address) error
	FindByID(ctx context.Context, id uint) (*Address, error)
	FindAll(ctx context.Context) ([]*Address, error)
	FindByBuyerID(ctx context.Context, buyerID uint) ([]*Address, error)
	Update(ctx context.Context, a *Address) error
	Delete(ctx context.Context, id uint) error

	// ClearDefaultShipping unsets the default-shipping flag on all of the
	// buyer's addresses.
	ClearDefaultShipping(ctx context.Context, buyerID uint) error

	// ClearDefaultBilling unsets the default-billing flag on all of the
	// buyer's addresses.
	ClearDefaultBilling(ctx context.Context, buyerID uint) error
}
