package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fictus/bookstore/internal/domain/employee"
	apperrors "github.com/fictus/bookstore/pkg/errors"
)

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates the employee repository.
func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	model := toEmployeeModel(e)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return employee.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "failed to create employee")
	}

	e.ID = model.ID
	e.CreatedAt = model.CreatedAt
	e.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id uint) (*employee.Employee, error) {
	var model EmployeeModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query employee")
	}
	return toEmployeeEntity(&model), nil
}

func (r *employeeRepository) FindAll(ctx context.Context) ([]*employee.Employee, error) {
	var models []EmployeeModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to list employees")
	}
	return toEmployeeEntities(models), nil
}

func (r *employeeRepository) FindByBossID(ctx context.Context, bossID uint) ([]*employee.Employee, error) {
	var models []EmployeeModel
	err := getDB(ctx, r.db).
		Where("boss_id = ?", bossID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list direct reports")
	}
	return toEmployeeEntities(models), nil
}

func (r *employeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	model := toEmployeeModel(e)
	model.ID = e.ID
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return employee.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "failed to update employee")
	}
	e.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&EmployeeModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete employee")
	}
	if result.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func toEmployeeModel(e *employee.Employee) *EmployeeModel {
	return &EmployeeModel{
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.EmailAddress,
		Role:      string(e.Role),
		BossID:    e.BossID,
	}
}

func toEmployeeEntity(model *EmployeeModel) *employee.Employee {
	return &employee.Employee{
		ID:           model.ID,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		EmailAddress: model.Email,
		Role:         employee.Role(model.Role),
		BossID:       model.BossID,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func toEmployeeEntities(models []EmployeeModel) []*employee.Employee {
	employees := make([]*employee.Employee, len(models))
	for i := range models {
		employees[i] = toEmployeeEntity(&models[i])
	}
	return employees
}
