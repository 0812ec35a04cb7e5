package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	domainRepo "github.com/storelinehq/storeline-api/internal/domain/repository"
	"github.com/storelinehq/storeline-api/pkg/pagination"
	"gorm.io/gorm"
)

type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *gorm.DB) domainRepo.SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	return dbFrom(ctx, r.db).Create(supplier).Error
}

func (r *supplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := dbFrom(ctx, r.db).First(&supplier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &supplier, err
}

func (r *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	return dbFrom(ctx, r.db).Save(supplier).Error
}

func (r *supplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.Supplier{}, "id = ?", id).Error
}

func (r *supplierRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	var suppliers []entity.Supplier
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Supplier{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR contact_info ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&suppliers).Error

	return suppliers, total, err
}

type purchaseOrderRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderRepository creates a new purchase order repository
func NewPurchaseOrderRepository(db *gorm.DB) domainRepo.PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, order *entity.PurchaseOrder) error {
	return dbFrom(ctx, r.db).Omit("Lines").Create(order).Error
}

func (r *purchaseOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	var order entity.PurchaseOrder
	err := dbFrom(ctx, r.db).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *purchaseOrderRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	var order entity.PurchaseOrder
	err := dbFrom(ctx, r.db).
		Preload("Supplier").
		Preload("Lines").
		Preload("Lines.SKU").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *purchaseOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.PurchaseOrderStatus) error {
	return dbFrom(ctx, r.db).Model(&entity.PurchaseOrder{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *purchaseOrderRepository) List(ctx context.Context, params *domainRepo.PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error) {
	var orders []entity.PurchaseOrder
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.PurchaseOrder{})

	if params.SupplierID != nil {
		query = query.Where("supplier_id = ?", *params.SupplierID)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Supplier").
		Preload("Lines").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

type purchaseOrderLineRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderLineRepository creates a new purchase order line repository
func NewPurchaseOrderLineRepository(db *gorm.DB) domainRepo.PurchaseOrderLineRepository {
	return &purchaseOrderLineRepository{db: db}
}

func (r *purchaseOrderLineRepository) CreateBatch(ctx context.Context, lines []entity.PurchaseOrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	return dbFrom(ctx, r.db).Create(&lines).Error
}

func (r *purchaseOrderLineRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.PurchaseOrderLine, error) {
	var lines []entity.PurchaseOrderLine
	err := dbFrom(ctx, r.db).
		Preload("SKU").
		Where("purchase_order_id = ?", orderID).
		Find(&lines).Error
	return lines, err
}
