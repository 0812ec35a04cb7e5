package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"github.com/storelinehq/storeline-api/pkg/pagination"
)

// SupplierRepository defines the interface for supplier data operations
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error)
}

// PurchaseOrderRepository defines the interface for purchase order data operations
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.PurchaseOrderStatus) error
	List(ctx context.Context, params *PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error)
}

// PurchaseOrderFilterParams contains filtering parameters for purchase order queries
type PurchaseOrderFilterParams struct {
	Pagination *pagination.PaginationParams
	SupplierID *uuid.UUID
	Status     *enum.PurchaseOrderStatus
}

// PurchaseOrderLineRepository defines the interface for purchase order line data operations
type PurchaseOrderLineRepository interface {
	CreateBatch(ctx context.Context, lines []entity.PurchaseOrderLine) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.PurchaseOrderLine, error)
}
