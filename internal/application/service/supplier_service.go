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
	"github.com/storelinehq/storeline-api/pkg/utils"
)

// SupplierService handles suppliers and inbound purchase orders
type SupplierService struct {
	supplierRepo repository.SupplierRepository
	orderRepo    repository.PurchaseOrderRepository
	lineRepo     repository.PurchaseOrderLineRepository
	skuRepo      repository.SKURepository
	storeRepo    repository.StoreRepository
	stockRepo    repository.StockRepository
	txManager    repository.TxManager
}

// NewSupplierService creates a new supplier service
func NewSupplierService(
	supplierRepo repository.SupplierRepository,
	orderRepo repository.PurchaseOrderRepository,
	lineRepo repository.PurchaseOrderLineRepository,
	skuRepo repository.SKURepository,
	storeRepo repository.StoreRepository,
	stockRepo repository.StockRepository,
	txManager repository.TxManager,
) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		orderRepo:    orderRepo,
		lineRepo:     lineRepo,
		skuRepo:      skuRepo,
		storeRepo:    storeRepo,
		stockRepo:    stockRepo,
		txManager:    txManager,
	}
}

// CreateSupplierInput represents the create supplier input
type CreateSupplierInput struct {
	Name        string
	ContactInfo string
}

// CreateSupplier creates a new supplier
func (s *SupplierService) CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*entity.Supplier, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Supplier name is required")
	}

	supplier := &entity.Supplier{
		Name:        name,
		ContactInfo: input.ContactInfo,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// GetSupplier returns a supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// ListSuppliers returns a paginated list of suppliers
func (s *SupplierService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Supplier], error) {
	suppliers, total, err := s.supplierRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	return &pagination.PaginatedResult[entity.Supplier]{
		Items:      suppliers,
		Pagination: pagination.NewPagination(params.Page, params.PerPage, total),
	}, nil
}

// UpdateSupplierInput represents the update supplier input
type UpdateSupplierInput struct {
	Name        *string
	ContactInfo *string
}

// UpdateSupplier updates a supplier's details
func (s *SupplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, input *UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewBadRequestError("Supplier name is required")
		}
		supplier.Name = name
	}
	if input.ContactInfo != nil {
		supplier.ContactInfo = *input.ContactInfo
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// DeleteSupplier removes a supplier
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}
	return s.supplierRepo.Delete(ctx, id)
}

// PurchaseOrderLineInput represents one line of a purchase order
type PurchaseOrderLineInput struct {
	SKUID    uuid.UUID
	Quantity int
	UnitCost decimal.Decimal
}

// CreatePurchaseOrderInput represents the create purchase order input
type CreatePurchaseOrderInput struct {
	SupplierID uuid.UUID
	StoreID    uuid.UUID
	Lines      []PurchaseOrderLineInput
}

// CreatePurchaseOrder opens a PENDING order against a supplier. Stock is
// not touched until the order is received.
func (s *SupplierService) CreatePurchaseOrder(ctx context.Context, input *CreatePurchaseOrderInput) (*entity.PurchaseOrder, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Purchase order must have at least one line")
	}

	skuIDs := make([]uuid.UUID, len(input.Lines))
	for i, line := range input.Lines {
		if line.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Line quantity must be positive")
		}
		if line.UnitCost.IsNegative() {
			return nil, apperror.NewBadRequestError("Unit cost cannot be negative")
		}
		skuIDs[i] = line.SKUID
	}

	skus, err := s.skuRepo.GetByIDs(ctx, skuIDs)
	if err != nil {
		return nil, err
	}
	skuMap := make(map[uuid.UUID]struct{}, len(skus))
	for _, sku := range skus {
		skuMap[sku.ID] = struct{}{}
	}
	for _, line := range input.Lines {
		if _, exists := skuMap[line.SKUID]; !exists {
			return nil, apperror.NewNotFoundError("SKU " + line.SKUID.String())
		}
	}

	order := &entity.PurchaseOrder{
		SupplierID: input.SupplierID,
		StoreID:    input.StoreID,
		OrderNo:    utils.GeneratePurchaseOrderNo(),
		Status:     enum.PurchaseOrderStatusPending,
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.Create(ctx, order); err != nil {
			return err
		}

		lines := make([]entity.PurchaseOrderLine, 0, len(input.Lines))
		for _, line := range input.Lines {
			lines = append(lines, entity.PurchaseOrderLine{
				PurchaseOrderID: order.ID,
				SKUID:           line.SKUID,
				Quantity:        line.Quantity,
				UnitCost:        line.UnitCost,
			})
		}
		return s.lineRepo.CreateBatch(ctx, lines)
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithLines(ctx, order.ID)
}

// GetPurchaseOrder returns a purchase order with its lines
func (s *SupplierService) GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	order, err := s.orderRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	return order, nil
}

// ListPurchaseOrdersInput represents the list purchase orders input
type ListPurchaseOrdersInput struct {
	Pagination *pagination.PaginationParams
	SupplierID *uuid.UUID
	Status     string
}

// ListPurchaseOrders returns a paginated list of purchase orders
func (s *SupplierService) ListPurchaseOrders(ctx context.Context, input *ListPurchaseOrdersInput) (*pagination.PaginatedResult[entity.PurchaseOrder], error) {
	params := &repository.PurchaseOrderFilterParams{
		Pagination: input.Pagination,
		SupplierID: input.SupplierID,
	}

	if input.Status != "" {
		status, ok := enum.ParsePurchaseOrderStatus(input.Status)
		if !ok {
			return nil, apperror.NewBadRequestError("Invalid status: " + input.Status)
		}
		params.Status = &status
	}

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &pagination.PaginatedResult[entity.PurchaseOrder]{
		Items:      orders,
		Pagination: pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total),
	}, nil
}

// ReceivePurchaseOrder marks a PENDING order RECEIVED and credits one
// PURCHASE movement per line into the destination store's stock, all in a
// single transaction.
func (s *SupplierService) ReceivePurchaseOrder(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	order, err := s.orderRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	if order.Status != enum.PurchaseOrderStatusPending {
		return nil, apperror.NewConflictError("Only pending purchase orders can be received")
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		for _, line := range order.Lines {
			level, err := s.stockRepo.EnsureLevel(ctx, order.StoreID, line.SKUID)
			if err != nil {
				return err
			}

			if _, _, err := s.stockRepo.AddQuantity(ctx, level.ID, line.Quantity); err != nil {
				return err
			}

			movement := &entity.StockMovement{
				StockLevelID:    level.ID,
				MovementType:    enum.MovementTypePurchase,
				QuantityChanged: line.Quantity,
			}
			if err := s.stockRepo.CreateMovement(ctx, movement); err != nil {
				return err
			}
		}
		return s.orderRepo.UpdateStatus(ctx, id, enum.PurchaseOrderStatusReceived)
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithLines(ctx, id)
}

// CancelPurchaseOrder marks a PENDING order CANCELLED without touching stock
func (s *SupplierService) CancelPurchaseOrder(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	if order.Status != enum.PurchaseOrderStatusPending {
		return nil, apperror.NewConflictError("Only pending purchase orders can be cancelled")
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, enum.PurchaseOrderStatusCancelled); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithLines(ctx, id)
}
