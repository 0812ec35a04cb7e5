package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/pkg/pagination"
)

// StoreRepository defines the interface for store data operations
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Store, int64, error)
}

// RegisterRepository defines the interface for register data operations
type RegisterRepository interface {
	Create(ctx context.Context, register *entity.Register) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Register, error)
	GetByStore(ctx context.Context, storeID uuid.UUID) ([]entity.Register, error)
	Update(ctx context.Context, register *entity.Register) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, storeID *uuid.UUID) ([]entity.Register, int64, error)
}
