package buyer

import (
	"context"
	"regexp"
	"time"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\d{9}$`)
)

// CreateParams carries the profile fields for a new buyer. The linked account
// is created separately by the registration use case.
type CreateParams struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Birth       time.Time
	Wallet      int64
	UserID      uint
}

// UpdateParams carries optional profile updates; nil fields are unchanged.
type UpdateParams struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Birth       *time.Time
	Wallet      *int64
}

// Service handles buyer profile management. Purchases go through the purchase
// use case, not this service.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*Buyer, error)
	GetByID(ctx context.Context, id uint) (*Buyer, error)
	GetByUserID(ctx context.Context, userID uint) (*Buyer, error)
	ListAll(ctx context.Context) ([]*Buyer, error)
	Update(ctx context.Context, id uint, params UpdateParams) (*Buyer, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService creates the buyer domain service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Buyer, error) {
	if err := validateProfile(params.FirstName, params.LastName, params.Email, params.PhoneNumber); err != nil {
		return nil, err
	}
	if params.Wallet < 0 {
		return nil, ErrInvalidAmount
	}

	b := NewBuyer(params.FirstName, params.LastName, params.Email, params.PhoneNumber,
		params.Birth, params.Wallet, params.UserID)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Buyer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetByUserID(ctx context.Context, userID uint) (*Buyer, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]*Buyer, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Update(ctx context.Context, id uint, params UpdateParams) (*Buyer, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.FirstName != nil {
		b.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		b.LastName = *params.LastName
	}
	if params.Email != nil {
		b.EmailAddress = *params.Email
	}
	if params.PhoneNumber != nil {
		b.PhoneNumber = *params.PhoneNumber
	}
	if params.Birth != nil {
		b.Birth = *params.Birth
	}
	if params.Wallet != nil {
		if *params.Wallet < 0 {
			return nil, ErrInvalidAmount
		}
		b.Wallet = *params.Wallet
	}

	if err := validateProfile(b.FirstName, b.LastName, b.EmailAddress, b.PhoneNumber); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func validateProfile(first, last, email, phone string) error {
	if first == "" || last == "" {
		return ErrInvalidName
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	if phone != "" && !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}
