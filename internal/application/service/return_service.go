package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"github.com/storelinehq/storeline-api/internal/domain/repository"
	"github.com/storelinehq/storeline-api/pkg/apperror"
	"github.com/storelinehq/storeline-api/pkg/pagination"
)

// minReasonLength is the shortest accepted return reason after trimming.
const minReasonLength = 3

// ReturnService handles the return and refund engine
type ReturnService struct {
	returnRepo repository.ReturnRepository
	refundRepo repository.RefundRepository
	saleRepo   repository.SaleRepository
	stockRepo  repository.StockRepository
	txManager  repository.TxManager
}

// NewReturnService creates a new return service
func NewReturnService(
	returnRepo repository.ReturnRepository,
	refundRepo repository.RefundRepository,
	saleRepo repository.SaleRepository,
	stockRepo repository.StockRepository,
	txManager repository.TxManager,
) *ReturnService {
	return &ReturnService{
		returnRepo: returnRepo,
		refundRepo: refundRepo,
		saleRepo:   saleRepo,
		stockRepo:  stockRepo,
		txManager:  txManager,
	}
}

// ReturnLineInput represents one returned item
type ReturnLineInput struct {
	SKUID    uuid.UUID
	Quantity int
}

// CreateReturnInput represents the create return input
type CreateReturnInput struct {
	OriginalSaleID uuid.UUID
	Reason         string
	Lines          []ReturnLineInput
}

// CreateReturn records a return against a prior sale: the return row, one
// RETURN movement per item crediting stock back to the original sale's
// store, and the refund are written in a single transaction. The refund is
// computed from the prices captured on the original sale lines, never from
// current SKU prices.
func (s *ReturnService) CreateReturn(ctx context.Context, input *CreateReturnInput) (*entity.Return, error) {
	reason := strings.TrimSpace(input.Reason)
	if len(reason) < minReasonLength {
		return nil, apperror.NewBadRequestError("Return reason must be at least 3 characters")
	}

	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Return must have at least one item")
	}
	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Return quantity must be positive")
		}
	}

	sale, err := s.saleRepo.GetWithDetails(ctx, input.OriginalSaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	// Index original lines by SKU for lookup of sold quantity and the
	// unit price captured at sale time.
	lineMap := make(map[uuid.UUID]*entity.SaleLine, len(sale.Lines))
	for i := range sale.Lines {
		lineMap[sale.Lines[i].SKUID] = &sale.Lines[i]
	}

	refundAmount := decimal.Zero
	for _, line := range input.Lines {
		original, exists := lineMap[line.SKUID]
		if !exists {
			skuCode := line.SKUID.String()
			return nil, apperror.NewLineNotFoundError(skuCode)
		}
		if line.Quantity > original.Quantity {
			skuCode := original.SKUID.String()
			if original.SKU != nil {
				skuCode = original.SKU.SKUCode
			}
			return nil, apperror.NewOverReturnError(skuCode, original.Quantity, line.Quantity)
		}
		refundAmount = refundAmount.Add(
			original.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	ret := &entity.Return{
		OriginalSaleID: sale.ID,
		Reason:         reason,
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.returnRepo.Create(ctx, ret); err != nil {
			return err
		}

		for _, line := range input.Lines {
			level, err := s.stockRepo.EnsureLevel(ctx, sale.StoreID, line.SKUID)
			if err != nil {
				return err
			}

			if _, _, err := s.stockRepo.AddQuantity(ctx, level.ID, line.Quantity); err != nil {
				return err
			}

			movement := &entity.StockMovement{
				StockLevelID:    level.ID,
				MovementType:    enum.MovementTypeReturn,
				QuantityChanged: line.Quantity,
			}
			if err := s.stockRepo.CreateMovement(ctx, movement); err != nil {
				return err
			}
		}

		refund := &entity.Refund{
			ReturnID: ret.ID,
			Amount:   refundAmount,
		}
		return s.refundRepo.Create(ctx, refund)
	})
	if err != nil {
		return nil, err
	}

	return s.returnRepo.GetWithRefund(ctx, ret.ID)
}

// GetReturn returns a return with its refund and original sale
func (s *ReturnService) GetReturn(ctx context.Context, id uuid.UUID) (*entity.Return, error) {
	ret, err := s.returnRepo.GetWithRefund(ctx, id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, apperror.NewNotFoundError("Return")
	}
	return ret, nil
}

// ListReturnsInput represents the list returns input
type ListReturnsInput struct {
	Pagination     *pagination.PaginationParams
	OriginalSaleID *uuid.UUID
}

// ListReturns returns a paginated list of returns
func (s *ReturnService) ListReturns(ctx context.Context, input *ListReturnsInput) (*pagination.PaginatedResult[entity.Return], error) {
	params := &repository.ReturnFilterParams{
		Pagination:     input.Pagination,
		OriginalSaleID: input.OriginalSaleID,
	}

	returns, total, err := s.returnRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &pagination.PaginatedResult[entity.Return]{
		Items:      returns,
		Pagination: pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total),
	}, nil
}

// GetRefund returns the refund of a return
func (s *ReturnService) GetRefund(ctx context.Context, returnID uuid.UUID) (*entity.Refund, error) {
	ret, err := s.returnRepo.GetByID(ctx, returnID)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, apperror.NewNotFoundError("Return")
	}

	refund, err := s.refundRepo.GetByReturnID(ctx, returnID)
	if err != nil {
		return nil, err
	}
	if refund == nil {
		return nil, apperror.NewNotFoundError("Refund")
	}
	return refund, nil
}
