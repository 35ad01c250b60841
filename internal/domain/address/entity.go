package address

import (
	"time"
)

// Address is a shipping or billing address belonging to a buyer. At most one
// address per buyer can be the default shipping address, and at most one the
// default billing address; the service clears the previous default on change.
type Address struct {
	ID                     uint
	StreetLine1            string
	StreetLine2            string
	City                   string
	Province               string
	PostalCode             string
	PhoneNumber            string
	DefaultShippingAddress bool
	DefaultBillingAddress  bool
	BuyerID                uint
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NewAddress creates an address for a buyer.
func NewAddress(streetLine1, streetLine2, city, province, postalCode, phone string,
	defaultShipping, defaultBilling bool, buyerID uint) *Address {
	return &Address{
		StreetLine1:            streetLine1,
		StreetLine2:            streetLine2,
		City:                   city,
		Province:               province,
		PostalCode:             postalCode,
		PhoneNumber:            phone,
		DefaultShippingAddress: defaultShipping,
		DefaultBillingAddress:  defaultBilling,
		BuyerID:                buyerID,
	}
}
