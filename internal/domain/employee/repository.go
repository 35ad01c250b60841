package employee

import (
	"context"
)

// Repository persists employees.
type Repository interface {
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id uint) (*Employee, error)
	FindAll(ctx context.Context) ([]*Employee, error)

	// FindByBossID returns the direct reports of the given employee.
	FindByBossID(ctx context.Context, bossID uint) ([]*Employee, error)

	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id uint) error
}
