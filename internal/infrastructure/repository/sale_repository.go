package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	domainRepo "github.com/storelinehq/storeline-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return dbFrom(ctx, r.db).Omit("Lines", "Receipt").Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := dbFrom(ctx, r.db).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := dbFrom(ctx, r.db).
		Preload("Store").
		Preload("Register").
		Preload("Cashier").
		Preload("Lines").
		Preload("Lines.SKU").
		Preload("Lines.SKU.Product").
		Preload("Receipt").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Sale{})

	if params.StoreID != nil {
		query = query.Where("store_id = ?", *params.StoreID)
	}

	if params.CashierID != nil {
		query = query.Where("cashier_id = ?", *params.CashierID)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Store").
		Preload("Register").
		Preload("Cashier").
		Preload("Lines").
		Preload("Receipt").
		Order("created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&entity.Sale{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	return count, err
}

func (r *saleRepository) Summary(ctx context.Context, start, end time.Time) (int64, decimal.Decimal, error) {
	var result struct {
		Count   int64
		Revenue decimal.Decimal
	}
	err := dbFrom(ctx, r.db).Model(&entity.Sale{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS revenue").
		Where("created_at >= ? AND created_at <= ?", start, end).
		Scan(&result).Error
	if err != nil {
		return 0, decimal.Zero, err
	}
	return result.Count, result.Revenue, nil
}

type saleLineRepository struct {
	db *gorm.DB
}

// NewSaleLineRepository creates a new sale line repository
func NewSaleLineRepository(db *gorm.DB) domainRepo.SaleLineRepository {
	return &saleLineRepository{db: db}
}

func (r *saleLineRepository) CreateBatch(ctx context.Context, lines []entity.SaleLine) error {
	if len(lines) == 0 {
		return nil
	}
	return dbFrom(ctx, r.db).Create(&lines).Error
}

func (r *saleLineRepository) GetBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.SaleLine, error) {
	var lines []entity.SaleLine
	err := dbFrom(ctx, r.db).
		Preload("SKU").
		Where("sale_id = ?", saleID).
		Order("created_at ASC").
		Find(&lines).Error
	return lines, err
}

func (r *saleLineRepository) CountBySKU(ctx context.Context, skuID uuid.UUID) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&entity.SaleLine{}).
		Where("sku_id = ?", skuID).
		Count(&count).Error
	return count, err
}

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	return dbFrom(ctx, r.db).Create(receipt).Error
}

func (r *receiptRepository) GetBySaleID(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := dbFrom(ctx, r.db).First(&receipt, "sale_id = ?", saleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}
