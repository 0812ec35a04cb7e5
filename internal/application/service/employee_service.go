package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"github.com/storelinehq/storeline-api/internal/domain/repository"
	"github.com/storelinehq/storeline-api/pkg/apperror"
	"github.com/storelinehq/storeline-api/pkg/pagination"
	"github.com/storelinehq/storeline-api/pkg/utils"
)

// EmployeeService handles employee management operations
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
	storeRepo    repository.StoreRepository
	saleRepo     repository.SaleRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(
	employeeRepo repository.EmployeeRepository,
	storeRepo repository.StoreRepository,
	saleRepo repository.SaleRepository,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		storeRepo:    storeRepo,
		saleRepo:     saleRepo,
	}
}

// GetEmployee returns an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// ListEmployeesInput represents the list employees input
type ListEmployeesInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Role       string
	StoreID    *uuid.UUID
}

// ListEmployees returns a paginated list of employees
func (s *EmployeeService) ListEmployees(ctx context.Context, input *ListEmployeesInput) (*pagination.PaginatedResult[entity.Employee], error) {
	params := &repository.EmployeeFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		StoreID:    input.StoreID,
	}

	if input.Role != "" {
		role, ok := enum.ParseRole(input.Role)
		if !ok {
			return nil, apperror.NewBadRequestError("Invalid role: " + input.Role)
		}
		params.Role = &role
	}

	employees, total, err := s.employeeRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &pagination.PaginatedResult[entity.Employee]{
		Items:      employees,
		Pagination: pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total),
	}, nil
}

// UpdateEmployeeInput represents the update employee input
type UpdateEmployeeInput struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Role       *string
	StoreID    *uuid.UUID
	ClearStore bool
}

// UpdateEmployee updates an employee's details, role or store assignment
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uuid.UUID, input *UpdateEmployeeInput) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	if input.FirstName != nil {
		employee.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		employee.LastName = *input.LastName
	}
	if input.Email != nil {
		existing, err := s.employeeRepo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != employee.ID {
			return nil, apperror.NewConflictError("Email already registered")
		}
		employee.Email = *input.Email
	}
	if input.Role != nil {
		role, ok := enum.ParseRole(*input.Role)
		if !ok {
			return nil, apperror.NewBadRequestError("Invalid role: " + *input.Role)
		}
		employee.Role = role
	}
	if input.ClearStore {
		employee.StoreID = nil
	} else if input.StoreID != nil {
		store, err := s.storeRepo.GetByID(ctx, *input.StoreID)
		if err != nil {
			return nil, err
		}
		if store == nil {
			return nil, apperror.NewNotFoundError("Store")
		}
		employee.StoreID = input.StoreID
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// ResetPassword sets a new password for an employee without requiring the
// current one. Manager-only operation.
func (s *EmployeeService) ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Employee")
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	employee.Password = hashedPassword
	return s.employeeRepo.Update(ctx, employee)
}

// DeleteEmployee removes an employee. Employees with recorded sales are
// kept for audit history and cannot be deleted.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Employee")
	}

	params := &repository.SaleFilterParams{
		Pagination: pagination.DefaultPagination(),
		CashierID:  &id,
	}
	_, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return err
	}
	if total > 0 {
		return apperror.NewConflictError("Cannot delete employee with recorded sales")
	}

	return s.employeeRepo.Delete(ctx, id)
}
