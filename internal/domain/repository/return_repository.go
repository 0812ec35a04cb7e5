package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/pkg/pagination"
)

// ReturnRepository defines the interface for return data operations
type ReturnRepository interface {
	Create(ctx context.Context, ret *entity.Return) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Return, error)
	GetWithRefund(ctx context.Context, id uuid.UUID) (*entity.Return, error)
	List(ctx context.Context, params *ReturnFilterParams) ([]entity.Return, int64, error)
}

// ReturnFilterParams contains filtering parameters for return queries
type ReturnFilterParams struct {
	Pagination     *pagination.PaginationParams
	OriginalSaleID *uuid.UUID
}

// RefundRepository defines the interface for refund data operations
type RefundRepository interface {
	Create(ctx context.Context, refund *entity.Refund) error
	GetByReturnID(ctx context.Context, returnID uuid.UUID) (*entity.Refund, error)
}
