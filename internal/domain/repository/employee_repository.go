package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"github.com/storelinehq/storeline-api/pkg/pagination"
)

// EmployeeRepository defines the interface for employee data operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	GetByUsername(ctx context.Context, username string) (*entity.Employee, error)
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *EmployeeFilterParams) ([]entity.Employee, int64, error)
	// ClearStore nulls the store reference on every employee of a store.
	ClearStore(ctx context.Context, storeID uuid.UUID) error
}

// EmployeeFilterParams contains filtering parameters for employee queries
type EmployeeFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Role       *enum.Role
	StoreID    *uuid.UUID
}
