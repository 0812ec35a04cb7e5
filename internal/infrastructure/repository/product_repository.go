package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	domainRepo "github.com/storelinehq/storeline-api/internal/domain/repository"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return dbFrom(ctx, r.db).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := dbFrom(ctx, r.db).
		Preload("SKUs").
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return dbFrom(ctx, r.db).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Product{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := "created_at DESC"
	if params.SortBy != "" {
		sortOrder := "ASC"
		if params.SortOrder == "desc" {
			sortOrder = "DESC"
		}
		switch params.SortBy {
		case "name", "created_at":
			orderClause = fmt.Sprintf("%s %s", params.SortBy, sortOrder)
		}
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("SKUs").
		Order(orderClause).
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) Search(ctx context.Context, search string) ([]entity.Product, error) {
	var products []entity.Product
	pattern := "%" + search + "%"
	err := dbFrom(ctx, r.db).
		Distinct("products.*").
		Joins("LEFT JOIN skus ON skus.product_id = products.id AND skus.deleted_at IS NULL").
		Where("products.name ILIKE ? OR skus.sku_code ILIKE ? OR skus.barcode ILIKE ?", pattern, pattern, pattern).
		Preload("SKUs").
		Order("products.name ASC").
		Limit(50).
		Find(&products).Error
	return products, err
}

type skuRepository struct {
	db *gorm.DB
}

// NewSKURepository creates a new SKU repository
func NewSKURepository(db *gorm.DB) domainRepo.SKURepository {
	return &skuRepository{db: db}
}

func (r *skuRepository) Create(ctx context.Context, sku *entity.SKU) error {
	return dbFrom(ctx, r.db).Create(sku).Error
}

func (r *skuRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SKU, error) {
	var sku entity.SKU
	err := dbFrom(ctx, r.db).
		Preload("Product").
		First(&sku, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sku, err
}

func (r *skuRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.SKU, error) {
	var skus []entity.SKU
	err := dbFrom(ctx, r.db).
		Preload("Product").
		Where("id IN ?", ids).
		Find(&skus).Error
	return skus, err
}

func (r *skuRepository) GetByCode(ctx context.Context, code string) (*entity.SKU, error) {
	var sku entity.SKU
	err := dbFrom(ctx, r.db).
		Preload("Product").
		First(&sku, "sku_code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sku, err
}

func (r *skuRepository) GetByBarcode(ctx context.Context, barcode string) (*entity.SKU, error) {
	var sku entity.SKU
	err := dbFrom(ctx, r.db).
		Preload("Product").
		First(&sku, "barcode = ?", barcode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sku, err
}

func (r *skuRepository) Update(ctx context.Context, sku *entity.SKU) error {
	return dbFrom(ctx, r.db).Save(sku).Error
}

func (r *skuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.SKU{}, "id = ?", id).Error
}

func (r *skuRepository) List(ctx context.Context, params *domainRepo.SKUFilterParams) ([]entity.SKU, int64, error) {
	var skus []entity.SKU
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.SKU{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("sku_code ILIKE ? OR barcode ILIKE ?", pattern, pattern)
	}

	if params.ProductID != nil {
		query = query.Where("product_id = ?", *params.ProductID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Product").
		Order("sku_code ASC").
		Find(&skus).Error

	return skus, total, err
}
