package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/pkg/pagination"
)

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error)
	// Summary aggregates committed sales between start and end inclusive.
	Summary(ctx context.Context, start, end time.Time) (count int64, revenue decimal.Decimal, err error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	StoreID    *uuid.UUID
	CashierID  *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// SaleLineRepository defines the interface for sale line data operations
type SaleLineRepository interface {
	CreateBatch(ctx context.Context, lines []entity.SaleLine) error
	GetBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.SaleLine, error)
	CountBySKU(ctx context.Context, skuID uuid.UUID) (int64, error)
}

// ReceiptRepository defines the interface for receipt data operations
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	GetBySaleID(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error)
}
