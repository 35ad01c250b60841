package user

import (
	"context"
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/fictus/bookstore/pkg/errors"
)

// bcryptCost balances hashing time against brute-force resistance.
const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Service handles account creation and credential verification. Account rows
// are created implicitly when a Buyer or Employee is registered, so Register
// takes the role from the caller.
type Service interface {
	// Register creates an account with a hashed password.
	Register(ctx context.Context, email, password string, role Role) (*User, error)

	// Login verifies credentials and returns the account.
	Login(ctx context.Context, email, password string) (*User, error)

	// GetByID returns an account by id.
	GetByID(ctx context.Context, id uint) (*User, error)

	// Delete removes an account.
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService creates the user domain service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, email, password string, role Role) (*User, error) {
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if len(password) < 8 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "password must be at least 8 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	u := NewUser(email, string(hashed), role)

	// Email uniqueness is guaranteed by the database unique index; the
	// repository translates the duplicate-key error to ErrEmailDuplicate.
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, apperrors.Wrap(err, "failed to verify password")
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
