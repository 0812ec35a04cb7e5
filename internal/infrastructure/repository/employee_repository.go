package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	domainRepo "github.com/storelinehq/storeline-api/internal/domain/repository"
	"gorm.io/gorm"
)

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) domainRepo.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	return dbFrom(ctx, r.db).Create(employee).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := dbFrom(ctx, r.db).
		Preload("Store").
		First(&employee, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &employee, err
}

func (r *employeeRepository) GetByUsername(ctx context.Context, username string) (*entity.Employee, error) {
	var employee entity.Employee
	err := dbFrom(ctx, r.db).First(&employee, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &employee, err
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	var employee entity.Employee
	err := dbFrom(ctx, r.db).First(&employee, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &employee, err
}

func (r *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	return dbFrom(ctx, r.db).Save(employee).Error
}

func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.Employee{}, "id = ?", id).Error
}

func (r *employeeRepository) List(ctx context.Context, params *domainRepo.EmployeeFilterParams) ([]entity.Employee, int64, error) {
	var employees []entity.Employee
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Employee{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("username ILIKE ? OR email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			pattern, pattern, pattern, pattern)
	}

	if params.Role != nil {
		query = query.Where("role = ?", *params.Role)
	}

	if params.StoreID != nil {
		query = query.Where("store_id = ?", *params.StoreID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Store").
		Order("created_at DESC").
		Find(&employees).Error

	return employees, total, err
}

func (r *employeeRepository) ClearStore(ctx context.Context, storeID uuid.UUID) error {
	return dbFrom(ctx, r.db).Model(&entity.Employee{}).
		Where("store_id = ?", storeID).
		Update("store_id", nil).Error
}
