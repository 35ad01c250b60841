package user

import (
	"context"
)

// Repository is the storage contract for user accounts.
type Repository interface {
	// Create persists a new user, filling in its generated id.
	Create(ctx context.Context, user *User) error

	// FindByID returns the user with the given id, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail returns the user with the given email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update persists all fields of an existing user.
	Update(ctx context.Context, user *User) error

	// Delete removes a user account, or returns ErrUserNotFound.
	Delete(ctx context.Context, id uint) error
}
