package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	// Search matches products by name, SKU code or barcode.
	Search(ctx context.Context, query string) ([]entity.Product, error)
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	SortBy     string
	SortOrder  string
}

// SKURepository defines the interface for SKU data operations
type SKURepository interface {
	Create(ctx context.Context, sku *entity.SKU) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SKU, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.SKU, error)
	GetByCode(ctx context.Context, code string) (*entity.SKU, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.SKU, error)
	Update(ctx context.Context, sku *entity.SKU) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *SKUFilterParams) ([]entity.SKU, int64, error)
}

// SKUFilterParams contains filtering parameters for SKU queries
type SKUFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	ProductID  *uuid.UUID
}
