package employee

import (
	"context"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CreateParams carries the fields for a new employee. BossID zero means no
// supervisor.
type CreateParams struct {
	FirstName string
	LastName  string
	Email     string
	Role      Role
	BossID    uint
}

// UpdateParams carries optional updates; nil fields are unchanged.
type UpdateParams struct {
	FirstName *string
	LastName  *string
	Email     *string
	Role      *Role
	BossID    *uint
}

// Service handles employee management.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*Employee, error)
	GetByID(ctx context.Context, id uint) (*Employee, error)
	ListAll(ctx context.Context) ([]*Employee, error)
	ListByBoss(ctx context.Context, bossID uint) ([]*Employee, error)
	Update(ctx context.Context, id uint, params UpdateParams) (*Employee, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService creates the employee domain service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Employee, error) {
	if params.FirstName == "" || params.LastName == "" {
		return nil, ErrInvalidName
	}
	if !emailPattern.MatchString(params.Email) {
		return nil, ErrInvalidEmail
	}
	if !params.Role.Valid() {
		return nil, ErrInvalidRole
	}
	if params.BossID != 0 {
		if _, err := s.repo.FindByID(ctx, params.BossID); err != nil {
			return nil, ErrBossNotFound
		}
	}

	e := NewEmployee(params.FirstName, params.LastName, params.Email, params.Role, params.BossID)
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListAll(ctx context.Context) ([]*Employee, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) ListByBoss(ctx context.Context, bossID uint) ([]*Employee, error) {
	return s.repo.FindByBossID(ctx, bossID)
}

func (s *service) Update(ctx context.Context, id uint, params UpdateParams) (*Employee, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.FirstName != nil {
		e.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		e.LastName = *params.LastName
	}
	if params.Email != nil {
		e.EmailAddress = *params.Email
	}
	if params.Role != nil {
		if !params.Role.Valid() {
			return nil, ErrInvalidRole
		}
		e.Role = *params.Role
	}
	if params.BossID != nil {
		if *params.BossID == id {
			return nil, ErrSelfBoss
		}
		if *params.BossID != 0 {
			if _, err := s.repo.FindByID(ctx, *params.BossID); err != nil {
				return nil, ErrBossNotFound
			}
		}
		e.BossID = *params.BossID
	}

	if e.FirstName == "" || e.LastName == "" {
		return nil, ErrInvalidName
	}
	if !emailPattern.MatchString(e.EmailAddress) {
		return nil, ErrInvalidEmail
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
