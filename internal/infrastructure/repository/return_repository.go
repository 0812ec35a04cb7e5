package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	domainRepo "github.com/storelinehq/storeline-api/internal/domain/repository"
	"gorm.io/gorm"
)

type returnRepository struct {
	db *gorm.DB
}

// NewReturnRepository creates a new return repository
func NewReturnRepository(db *gorm.DB) domainRepo.ReturnRepository {
	return &returnRepository{db: db}
}

func (r *returnRepository) Create(ctx context.Context, ret *entity.Return) error {
	return dbFrom(ctx, r.db).Omit("Refund").Create(ret).Error
}

func (r *returnRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Return, error) {
	var ret entity.Return
	err := dbFrom(ctx, r.db).First(&ret, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ret, err
}

func (r *returnRepository) GetWithRefund(ctx context.Context, id uuid.UUID) (*entity.Return, error) {
	var ret entity.Return
	err := dbFrom(ctx, r.db).
		Preload("OriginalSale").
		Preload("Refund").
		First(&ret, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ret, err
}

func (r *returnRepository) List(ctx context.Context, params *domainRepo.ReturnFilterParams) ([]entity.Return, int64, error) {
	var returns []entity.Return
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Return{})

	if params.OriginalSaleID != nil {
		query = query.Where("original_sale_id = ?", *params.OriginalSaleID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("OriginalSale").
		Preload("Refund").
		Order("created_at DESC").
		Find(&returns).Error

	return returns, total, err
}

type refundRepository struct {
	db *gorm.DB
}

// NewRefundRepository creates a new refund repository
func NewRefundRepository(db *gorm.DB) domainRepo.RefundRepository {
	return &refundRepository{db: db}
}

func (r *refundRepository) Create(ctx context.Context, refund *entity.Refund) error {
	return dbFrom(ctx, r.db).Create(refund).Error
}

func (r *refundRepository) GetByReturnID(ctx context.Context, returnID uuid.UUID) (*entity.Refund, error) {
	var refund entity.Refund
	err := dbFrom(ctx, r.db).First(&refund, "return_id = ?", returnID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &refund, err
}
