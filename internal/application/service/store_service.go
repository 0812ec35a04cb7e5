package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/internal/domain/repository"
	"github.com/storelinehq/storeline-api/pkg/apperror"
	"github.com/storelinehq/storeline-api/pkg/pagination"
)

// StoreService handles store and register management operations
type StoreService struct {
	storeRepo    repository.StoreRepository
	registerRepo repository.RegisterRepository
	employeeRepo repository.EmployeeRepository
	stockRepo    repository.StockRepository
	saleRepo     repository.SaleRepository
	txManager    repository.TxManager
}

// NewStoreService creates a new store service
func NewStoreService(
	storeRepo repository.StoreRepository,
	registerRepo repository.RegisterRepository,
	employeeRepo repository.EmployeeRepository,
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
	txManager repository.TxManager,
) *StoreService {
	return &StoreService{
		storeRepo:    storeRepo,
		registerRepo: registerRepo,
		employeeRepo: employeeRepo,
		stockRepo:    stockRepo,
		saleRepo:     saleRepo,
		txManager:    txManager,
	}
}

// CreateStoreInput represents the create store input
type CreateStoreInput struct {
	Name     string
	Location string
}

// CreateStore creates a new store
func (s *StoreService) CreateStore(ctx context.Context, input *CreateStoreInput) (*entity.Store, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Store name is required")
	}

	store := &entity.Store{
		Name:     name,
		Location: input.Location,
	}

	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// GetStore returns a store with its registers
func (s *StoreService) GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}
	return store, nil
}

// ListStores returns a paginated list of stores
func (s *StoreService) ListStores(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Store], error) {
	stores, total, err := s.storeRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	return &pagination.PaginatedResult[entity.Store]{
		Items:      stores,
		Pagination: pagination.NewPagination(params.Page, params.PerPage, total),
	}, nil
}

// UpdateStoreInput represents the update store input
type UpdateStoreInput struct {
	Name     *string
	Location *string
}

// UpdateStore updates a store's details
func (s *StoreService) UpdateStore(ctx context.Context, id uuid.UUID, input *UpdateStoreInput) (*entity.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewBadRequestError("Store name is required")
		}
		store.Name = name
	}
	if input.Location != nil {
		store.Location = *input.Location
	}

	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// DeleteStore removes a store together with its registers. Stores with
// sales or stock history are protected. Employees assigned to the store
// are detached, not deleted.
func (s *StoreService) DeleteStore(ctx context.Context, id uuid.UUID) error {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if store == nil {
		return apperror.NewNotFoundError("Store")
	}

	sales, err := s.saleRepo.CountByStore(ctx, id)
	if err != nil {
		return err
	}
	if sales > 0 {
		return apperror.NewConflictError("Cannot delete store with recorded sales")
	}

	levels, err := s.stockRepo.CountLevelsByStore(ctx, id)
	if err != nil {
		return err
	}
	if levels > 0 {
		return apperror.NewConflictError("Cannot delete store with stock history")
	}

	return s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.employeeRepo.ClearStore(ctx, id); err != nil {
			return err
		}
		registers, err := s.registerRepo.GetByStore(ctx, id)
		if err != nil {
			return err
		}
		for _, register := range registers {
			if err := s.registerRepo.Delete(ctx, register.ID); err != nil {
				return err
			}
		}
		return s.storeRepo.Delete(ctx, id)
	})
}

// CreateRegisterInput represents the create register input
type CreateRegisterInput struct {
	StoreID    uuid.UUID
	Identifier string
}

// CreateRegister creates a new register in a store
func (s *StoreService) CreateRegister(ctx context.Context, input *CreateRegisterInput) (*entity.Register, error) {
	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	identifier := strings.TrimSpace(input.Identifier)
	if identifier == "" {
		return nil, apperror.NewBadRequestError("Register identifier is required")
	}

	existing, err := s.registerRepo.GetByStore(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	for _, register := range existing {
		if register.Identifier == identifier {
			return nil, apperror.NewConflictError("Register identifier already in use for this store")
		}
	}

	register := &entity.Register{
		StoreID:    input.StoreID,
		Identifier: identifier,
	}

	if err := s.registerRepo.Create(ctx, register); err != nil {
		return nil, err
	}

	return register, nil
}

// GetRegister returns a register by ID
func (s *StoreService) GetRegister(ctx context.Context, id uuid.UUID) (*entity.Register, error) {
	register, err := s.registerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, apperror.NewNotFoundError("Register")
	}
	return register, nil
}

// ListRegisters returns a paginated list of registers, optionally scoped
// to one store
func (s *StoreService) ListRegisters(ctx context.Context, params *pagination.PaginationParams, storeID *uuid.UUID) (*pagination.PaginatedResult[entity.Register], error) {
	registers, total, err := s.registerRepo.List(ctx, params, storeID)
	if err != nil {
		return nil, err
	}

	return &pagination.PaginatedResult[entity.Register]{
		Items:      registers,
		Pagination: pagination.NewPagination(params.Page, params.PerPage, total),
	}, nil
}

// UpdateRegister renames a register
func (s *StoreService) UpdateRegister(ctx context.Context, id uuid.UUID, identifier string) (*entity.Register, error) {
	register, err := s.registerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, apperror.NewNotFoundError("Register")
	}

	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, apperror.NewBadRequestError("Register identifier is required")
	}

	register.Identifier = identifier
	if err := s.registerRepo.Update(ctx, register); err != nil {
		return nil, err
	}

	return register, nil
}

// DeleteRegister removes a register
func (s *StoreService) DeleteRegister(ctx context.Context, id uuid.UUID) error {
	register, err := s.registerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if register == nil {
		return apperror.NewNotFoundError("Register")
	}
	return s.registerRepo.Delete(ctx, id)
}
