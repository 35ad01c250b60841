package address

import (
	"context"
)

// CreateParams carries the fields for a new address.
type CreateParams struct {
	StreetLine1            string
	StreetLine2            string
	City                   string
	Province               string
	PostalCode             string
	PhoneNumber            string
	DefaultShippingAddress bool
	DefaultBillingAddress  bool
	BuyerID                uint
}

// UpdateParams carries optional updates; nil fields are unchanged.
type UpdateParams struct {
	StreetLine1            *string
	StreetLine2            *string
	City                   *string
	Province               *string
	PostalCode             *string
	PhoneNumber            *string
	DefaultShippingAddress *bool
	DefaultBillingAddress  *bool
}

// Service handles address management. Buyer existence is checked by the
// application layer before calling Create.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*Address, error)
	GetByID(ctx context.Context, id uint) (*Address, error)
	ListAll(ctx context.Context) ([]*Address, error)
	ListByBuyer(ctx context.Context, buyerID uint) ([]*Address, error)
	Update(ctx context.Context, id uint, params UpdateParams) (*Address, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService creates the address domain service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Address, error) {
	if params.StreetLine1 == "" {
		return nil, ErrInvalidStreet
	}

	// A new default demotes the buyer's previous default of the same kind.
	if params.DefaultShippingAddress {
		if err := s.repo.ClearDefaultShipping(ctx, params.BuyerID); err != nil {
			return nil, err
		}
	}
	if params.DefaultBillingAddress {
		if err := s.repo.ClearDefaultBilling(ctx, params.BuyerID); err != nil {
			return nil, err
		}
	}

	a := NewAddress(params.StreetLine1, params.StreetLine2, params.City, params.Province,
		params.PostalCode, params.PhoneNumber,
		params.DefaultShippingAddress, params.DefaultBillingAddress, params.BuyerID)
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Address, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListAll(ctx context.Context) ([]*Address, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) ListByBuyer(ctx context.Context, buyerID uint) ([]*Address, error) {
	return s.repo.FindByBuyerID(ctx, buyerID)
}

func (s *service) Update(ctx context.Context, id uint, params UpdateParams) (*Address, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.DefaultShippingAddress != nil && *params.DefaultShippingAddress {
		if err := s.repo.ClearDefaultShipping(ctx, a.BuyerID); err != nil {
			return nil, err
		}
	}
	if params.DefaultBillingAddress != nil && *params.DefaultBillingAddress {
		if err := s.repo.ClearDefaultBilling(ctx, a.BuyerID); err != nil {
			return nil, err
		}
	}

	if params.StreetLine1 != nil {
		if *params.StreetLine1 == "" {
			return nil, ErrInvalidStreet
		}
		a.StreetLine1 = *params.StreetLine1
	}
	if params.StreetLine2 != nil {
		a.StreetLine2 = *params.StreetLine2
	}
	if params.City != nil {
		a.City = *params.City
	}
	if params.Province != nil {
		a.Province = *params.Province
	}
	if params.PostalCode != nil {
		a.PostalCode = *params.PostalCode
	}
	if params.PhoneNumber != nil {
		a.PhoneNumber = *params.PhoneNumber
	}
	if params.DefaultShippingAddress != nil {
		a.DefaultShippingAddress = *params.DefaultShippingAddress
	}
	if params.DefaultBillingAddress != nil {
		a.DefaultBillingAddress = *params.DefaultBillingAddress
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
