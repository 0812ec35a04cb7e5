package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	domainRepo "github.com/storelinehq/storeline-api/internal/domain/repository"
	"github.com/storelinehq/storeline-api/pkg/pagination"
	"gorm.io/gorm"
)

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *gorm.DB) domainRepo.StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	return dbFrom(ctx, r.db).Create(store).Error
}

func (r *storeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var store entity.Store
	err := dbFrom(ctx, r.db).
		Preload("Registers").
		First(&store, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &store, err
}

func (r *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	return dbFrom(ctx, r.db).Save(store).Error
}

func (r *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.Store{}, "id = ?", id).Error
}

func (r *storeRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Store, int64, error) {
	var stores []entity.Store
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Store{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR location ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&stores).Error

	return stores, total, err
}

type registerRepository struct {
	db *gorm.DB
}

// NewRegisterRepository creates a new register repository
func NewRegisterRepository(db *gorm.DB) domainRepo.RegisterRepository {
	return &registerRepository{db: db}
}

func (r *registerRepository) Create(ctx context.Context, register *entity.Register) error {
	return dbFrom(ctx, r.db).Create(register).Error
}

func (r *registerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Register, error) {
	var register entity.Register
	err := dbFrom(ctx, r.db).
		Preload("Store").
		First(&register, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &register, err
}

func (r *registerRepository) GetByStore(ctx context.Context, storeID uuid.UUID) ([]entity.Register, error) {
	var registers []entity.Register
	err := dbFrom(ctx, r.db).
		Where("store_id = ?", storeID).
		Order("identifier ASC").
		Find(&registers).Error
	return registers, err
}

func (r *registerRepository) Update(ctx context.Context, register *entity.Register) error {
	return dbFrom(ctx, r.db).Save(register).Error
}

func (r *registerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.Register{}, "id = ?", id).Error
}

func (r *registerRepository) List(ctx context.Context, params *pagination.PaginationParams, storeID *uuid.UUID) ([]entity.Register, int64, error) {
	var registers []entity.Register
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Register{})

	if storeID != nil {
		query = query.Where("store_id = ?", *storeID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Store").
		Order("identifier ASC").
		Find(&registers).Error

	return registers, total, err
}
