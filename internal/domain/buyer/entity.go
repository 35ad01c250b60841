package buyer

import (
	"time"
)

// Buyer is a customer account. Wallet is the prepaid balance in cents; every
// purchase debits it atomically together with the book stock decrement.
type Buyer struct {
	ID           uint
	FirstName    string
	LastName     string
	EmailAddress string
	PhoneNumber  string // optional, 9 digits when set
	Birth        time.Time
	Wallet       int64 // cents
	UserID       uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewBuyer creates a buyer linked to an account.
func NewBuyer(firstName, lastName, email, phone string, birth time.Time, wallet int64, userID uint) *Buyer {
	return &Buyer{
		FirstName:    firstName,
		LastName:     lastName,
		EmailAddress: email,
		PhoneNumber:  phone,
		Birth:        birth,
		Wallet:       wallet,
		UserID:       userID,
	}
}

// FullName returns "First Last" for display.
func (b *Buyer) FullName() string {
	return b.FirstName + " " + b.LastName
}

// Debit withdraws amount cents from the wallet.
func (b *Buyer) Debit(amount int64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	if b.Wallet < amount {
		return ErrInsufficientFunds
	}
	b.Wallet -= amount
	return nil
}

// Credit deposits amount cents into the wallet.
func (b *Buyer) Credit(amount int64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	b.Wallet += amount
	return nil
}
