package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"github.com/storelinehq/storeline-api/internal/domain/repository"
	"github.com/storelinehq/storeline-api/pkg/apperror"
	"github.com/storelinehq/storeline-api/pkg/pagination"
)

// DefaultLowStockThreshold is used when a low-stock query does not name one.
const DefaultLowStockThreshold = 10

// StockService handles the stock ledger: levels, adjustments, movements
type StockService struct {
	stockRepo repository.StockRepository
	storeRepo repository.StoreRepository
	skuRepo   repository.SKURepository
	txManager repository.TxManager
}

// NewStockService creates a new stock service
func NewStockService(
	stockRepo repository.StockRepository,
	storeRepo repository.StoreRepository,
	skuRepo repository.SKURepository,
	txManager repository.TxManager,
) *StockService {
	return &StockService{
		stockRepo: stockRepo,
		storeRepo: storeRepo,
		skuRepo:   skuRepo,
		txManager: txManager,
	}
}

// AdjustInput represents a manual stock adjustment
type AdjustInput struct {
	StoreID uuid.UUID
	SKUID   uuid.UUID
	Delta   int
}

// Adjust applies a signed manual correction to a stock level and records
// an ADJUSTMENT movement. The level row materializes on first touch. A
// delta that would drive the quantity negative is rejected and nothing is
// written.
func (s *StockService) Adjust(ctx context.Context, input *AdjustInput) (*entity.StockLevel, error) {
	if input.Delta == 0 {
		return nil, apperror.NewBadRequestError("Adjustment delta cannot be zero")
	}

	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	sku, err := s.skuRepo.GetByID(ctx, input.SKUID)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, apperror.NewNotFoundError("SKU")
	}

	var result *entity.StockLevel
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		level, err := s.stockRepo.EnsureLevel(ctx, input.StoreID, input.SKUID)
		if err != nil {
			return err
		}

		updated, ok, err := s.stockRepo.AddQuantity(ctx, level.ID, input.Delta)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NewInsufficientStockError(sku.SKUCode, updated.Quantity, -input.Delta)
		}

		movement := &entity.StockMovement{
			StockLevelID:    level.ID,
			MovementType:    enum.MovementTypeAdjustment,
			QuantityChanged: input.Delta,
		}
		if err := s.stockRepo.CreateMovement(ctx, movement); err != nil {
			return err
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// QuantityOf returns the on-hand quantity for a (store, sku) pair. A pair
// with no ledger history reads as zero without materializing a row.
func (s *StockService) QuantityOf(ctx context.Context, storeID, skuID uuid.UUID) (int, error) {
	level, err := s.stockRepo.GetLevel(ctx, storeID, skuID)
	if err != nil {
		return 0, err
	}
	if level == nil {
		return 0, nil
	}
	return level.Quantity, nil
}

// ListLevelsInput represents the list stock levels input
type ListLevelsInput struct {
	Pagination *pagination.PaginationParams
	StoreID    *uuid.UUID
	SKUID      *uuid.UUID
}

// ListLevels returns a paginated list of stock levels
func (s *StockService) ListLevels(ctx context.Context, input *ListLevelsInput) (*pagination.PaginatedResult[entity.StockLevel], error) {
	params := &repository.StockFilterParams{
		Pagination: input.Pagination,
		StoreID:    input.StoreID,
		SKUID:      input.SKUID,
	}

	levels, total, err := s.stockRepo.ListLevels(ctx, params)
	if err != nil {
		return nil, err
	}

	return &pagination.PaginatedResult[entity.StockLevel]{
		Items:      levels,
		Pagination: pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total),
	}, nil
}

// LowStock returns levels at or below the threshold, lowest first
func (s *StockService) LowStock(ctx context.Context, storeID *uuid.UUID, threshold *int) ([]entity.StockLevel, error) {
	limit := DefaultLowStockThreshold
	if threshold != nil {
		if *threshold < 0 {
			return nil, apperror.NewBadRequestError("Threshold cannot be negative")
		}
		limit = *threshold
	}
	return s.stockRepo.LowStock(ctx, storeID, limit)
}

// OutOfStock returns levels that are fully depleted
func (s *StockService) OutOfStock(ctx context.Context, storeID *uuid.UUID) ([]entity.StockLevel, error) {
	return s.stockRepo.LowStock(ctx, storeID, 0)
}

// ListMovementsInput represents the list movements input
type ListMovementsInput struct {
	Pagination   *pagination.PaginationParams
	StoreID      *uuid.UUID
	SKUID        *uuid.UUID
	MovementType string
}

// ListMovements returns a paginated slice of the append-only ledger,
// newest first
func (s *StockService) ListMovements(ctx context.Context, input *ListMovementsInput) (*pagination.PaginatedResult[entity.StockMovement], error) {
	params := &repository.MovementFilterParams{
		Pagination: input.Pagination,
		StoreID:    input.StoreID,
		SKUID:      input.SKUID,
	}

	if input.MovementType != "" {
		movementType, ok := enum.ParseMovementType(input.MovementType)
		if !ok {
			return nil, apperror.NewBadRequestError("Invalid movement type: " + input.MovementType)
		}
		params.MovementType = &movementType
	}

	movements, total, err := s.stockRepo.ListMovements(ctx, params)
	if err != nil {
		return nil, err
	}

	return &pagination.PaginatedResult[entity.StockMovement]{
		Items:      movements,
		Pagination: pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total),
	}, nil
}
