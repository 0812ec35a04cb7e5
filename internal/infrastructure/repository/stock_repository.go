package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	domainRepo "github.com/storelinehq/storeline-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository
func NewStockRepository(db *gorm.DB) domainRepo.StockRepository {
	return &stockRepository{db: db}
}

// EnsureLevel get-or-creates the (store, sku) row. The insert uses
// ON CONFLICT DO NOTHING on the unique pair so two concurrent callers
// converge on the same row instead of one of them failing.
func (r *stockRepository) EnsureLevel(ctx context.Context, storeID, skuID uuid.UUID) (*entity.StockLevel, error) {
	db := dbFrom(ctx, r.db)

	level := entity.StockLevel{
		StoreID: storeID,
		SKUID:   skuID,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_id"}, {Name: "sku_id"}},
		DoNothing: true,
	}).Create(&level).Error; err != nil {
		return nil, err
	}

	// Re-read: on conflict the insert returns no row.
	var existing entity.StockLevel
	if err := db.First(&existing, "store_id = ? AND sku_id = ?", storeID, skuID).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// AddQuantity applies the delta with a guarded UPDATE so the non-negative
// invariant is enforced at the database, not by read-then-write. A zero
// RowsAffected means the guard refused the change.
func (r *stockRepository) AddQuantity(ctx context.Context, levelID uuid.UUID, delta int) (*entity.StockLevel, bool, error) {
	db := dbFrom(ctx, r.db)

	result := db.Model(&entity.StockLevel{}).
		Where("id = ? AND quantity + ? >= 0", levelID, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return nil, false, result.Error
	}

	var level entity.StockLevel
	if err := db.First(&level, "id = ?", levelID).Error; err != nil {
		return nil, false, err
	}
	return &level, result.RowsAffected > 0, nil
}

func (r *stockRepository) GetLevel(ctx context.Context, storeID, skuID uuid.UUID) (*entity.StockLevel, error) {
	var level entity.StockLevel
	err := dbFrom(ctx, r.db).
		Preload("Store").
		Preload("SKU").
		First(&level, "store_id = ? AND sku_id = ?", storeID, skuID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &level, err
}

func (r *stockRepository) ListLevels(ctx context.Context, params *domainRepo.StockFilterParams) ([]entity.StockLevel, int64, error) {
	var levels []entity.StockLevel
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.StockLevel{})

	if params.StoreID != nil {
		query = query.Where("store_id = ?", *params.StoreID)
	}

	if params.SKUID != nil {
		query = query.Where("sku_id = ?", *params.SKUID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Store").
		Preload("SKU").
		Order("updated_at DESC").
		Find(&levels).Error

	return levels, total, err
}

func (r *stockRepository) LowStock(ctx context.Context, storeID *uuid.UUID, threshold int) ([]entity.StockLevel, error) {
	var levels []entity.StockLevel

	query := dbFrom(ctx, r.db).
		Preload("Store").
		Preload("SKU").
		Where("quantity <= ?", threshold)

	if storeID != nil {
		query = query.Where("store_id = ?", *storeID)
	}

	err := query.Order("quantity ASC").Find(&levels).Error
	return levels, err
}

func (r *stockRepository) CountLevelsBySKU(ctx context.Context, skuID uuid.UUID) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&entity.StockLevel{}).
		Where("sku_id = ?", skuID).
		Count(&count).Error
	return count, err
}

func (r *stockRepository) CountLevelsByStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&entity.StockLevel{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	return count, err
}

func (r *stockRepository) CreateMovement(ctx context.Context, movement *entity.StockMovement) error {
	return dbFrom(ctx, r.db).Create(movement).Error
}

func (r *stockRepository) ListMovements(ctx context.Context, params *domainRepo.MovementFilterParams) ([]entity.StockMovement, int64, error) {
	var movements []entity.StockMovement
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.StockMovement{})

	if params.StoreID != nil || params.SKUID != nil {
		query = query.Joins("JOIN stock_levels ON stock_levels.id = stock_movements.stock_level_id")
		if params.StoreID != nil {
			query = query.Where("stock_levels.store_id = ?", *params.StoreID)
		}
		if params.SKUID != nil {
			query = query.Where("stock_levels.sku_id = ?", *params.SKUID)
		}
	}

	if params.MovementType != nil {
		query = query.Where("stock_movements.movement_type = ?", *params.MovementType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("StockLevel").
		Preload("StockLevel.Store").
		Preload("StockLevel.SKU").
		Order("stock_movements.created_at DESC").
		Find(&movements).Error

	return movements, total, err
}
