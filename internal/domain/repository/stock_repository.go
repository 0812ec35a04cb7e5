package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"github.com/storelinehq/storeline-api/pkg/pagination"
)

// StockRepository defines the interface for stock ledger data operations.
// All mutations are expected to run inside a transaction carried on the
// context (see TxManager); AddQuantity serializes concurrent writers on the
// (store, sku) row so lost updates cannot occur.
type StockRepository interface {
	// EnsureLevel atomically get-or-creates the (store, sku) row with
	// quantity zero.
	EnsureLevel(ctx context.Context, storeID, skuID uuid.UUID) (*entity.StockLevel, error)
	// AddQuantity applies a signed delta to a stock level, refusing any
	// change that would drive the quantity negative. It returns the updated
	// row and ok=false when the guard rejected the delta.
	AddQuantity(ctx context.Context, levelID uuid.UUID, delta int) (level *entity.StockLevel, ok bool, err error)
	GetLevel(ctx context.Context, storeID, skuID uuid.UUID) (*entity.StockLevel, error)
	ListLevels(ctx context.Context, params *StockFilterParams) ([]entity.StockLevel, int64, error)
	// LowStock returns levels with quantity <= threshold, ascending by
	// quantity, optionally scoped to one store.
	LowStock(ctx context.Context, storeID *uuid.UUID, threshold int) ([]entity.StockLevel, error)
	CountLevelsBySKU(ctx context.Context, skuID uuid.UUID) (int64, error)
	CountLevelsByStore(ctx context.Context, storeID uuid.UUID) (int64, error)

	CreateMovement(ctx context.Context, movement *entity.StockMovement) error
	ListMovements(ctx context.Context, params *MovementFilterParams) ([]entity.StockMovement, int64, error)
}

// StockFilterParams contains filtering parameters for stock level queries
type StockFilterParams struct {
	Pagination *pagination.PaginationParams
	StoreID    *uuid.UUID
	SKUID      *uuid.UUID
}

// MovementFilterParams contains filtering parameters for movement queries
type MovementFilterParams struct {
	Pagination   *pagination.PaginationParams
	StoreID      *uuid.UUID
	SKUID        *uuid.UUID
	MovementType *enum.MovementType
}
