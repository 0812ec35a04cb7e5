package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/internal/domain/repository"
	"github.com/storelinehq/storeline-api/pkg/apperror"
	"github.com/storelinehq/storeline-api/pkg/pagination"
)

// ProductService handles product and SKU catalog operations
type ProductService struct {
	productRepo  repository.ProductRepository
	skuRepo      repository.SKURepository
	saleLineRepo repository.SaleLineRepository
	stockRepo    repository.StockRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	skuRepo repository.SKURepository,
	saleLineRepo repository.SaleLineRepository,
	stockRepo repository.StockRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		skuRepo:      skuRepo,
		saleLineRepo: saleLineRepo,
		stockRepo:    stockRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name        string
	Description string
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}

	product := &entity.Product{
		Name:        name,
		Description: input.Description,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct returns a product with its SKUs
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProductsInput represents the list products input
type ListProductsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	SortBy     string
	SortOrder  string
}

// ListProducts returns a paginated list of products
func (s *ProductService) ListProducts(ctx context.Context, input *ListProductsInput) (*pagination.PaginatedResult[entity.Product], error) {
	params := &repository.ProductFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &pagination.PaginatedResult[entity.Product]{
		Items:      products,
		Pagination: pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total),
	}, nil
}

// SearchProducts matches products by name, SKU code or barcode
func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]entity.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.NewBadRequestError("Search query is required")
	}
	return s.productRepo.Search(ctx, query)
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name        *string
	Description *string
}

// UpdateProduct updates a product's details
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewBadRequestError("Product name is required")
		}
		product.Name = name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product. Products whose SKUs carry sales or
// stock history are protected.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	for _, sku := range product.SKUs {
		if err := s.checkSKUReferences(ctx, sku.ID); err != nil {
			return err
		}
	}

	for _, sku := range product.SKUs {
		if err := s.skuRepo.Delete(ctx, sku.ID); err != nil {
			return err
		}
	}

	return s.productRepo.Delete(ctx, id)
}

// CreateSKUInput represents the create SKU input
type CreateSKUInput struct {
	ProductID uuid.UUID
	SKUCode   string
	Barcode   string
	BasePrice decimal.Decimal
}

// CreateSKU creates a new SKU under a product
func (s *ProductService) CreateSKU(ctx context.Context, input *CreateSKUInput) (*entity.SKU, error) {
	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	skuCode := strings.TrimSpace(input.SKUCode)
	if skuCode == "" {
		return nil, apperror.NewBadRequestError("SKU code is required")
	}

	if !input.BasePrice.IsPositive() {
		return nil, apperror.NewBadRequestError("Base price must be positive")
	}

	existing, err := s.skuRepo.GetByCode(ctx, skuCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("SKU code already in use")
	}

	if input.Barcode != "" {
		existing, err = s.skuRepo.GetByBarcode(ctx, input.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Barcode already in use")
		}
	}

	sku := &entity.SKU{
		ProductID: input.ProductID,
		SKUCode:   skuCode,
		Barcode:   input.Barcode,
		BasePrice: input.BasePrice,
	}

	if err := s.skuRepo.Create(ctx, sku); err != nil {
		return nil, err
	}

	return sku, nil
}

// GetSKU returns a SKU by ID
func (s *ProductService) GetSKU(ctx context.Context, id uuid.UUID) (*entity.SKU, error) {
	sku, err := s.skuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, apperror.NewNotFoundError("SKU")
	}
	return sku, nil
}

// GetSKUByCode returns a SKU by its code
func (s *ProductService) GetSKUByCode(ctx context.Context, code string) (*entity.SKU, error) {
	sku, err := s.skuRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, apperror.NewNotFoundError("SKU")
	}
	return sku, nil
}

// GetSKUByBarcode returns a SKU by its barcode
func (s *ProductService) GetSKUByBarcode(ctx context.Context, barcode string) (*entity.SKU, error) {
	sku, err := s.skuRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, apperror.NewNotFoundError("SKU")
	}
	return sku, nil
}

// ListSKUsInput represents the list SKUs input
type ListSKUsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	ProductID  *uuid.UUID
}

// ListSKUs returns a paginated list of SKUs
func (s *ProductService) ListSKUs(ctx context.Context, input *ListSKUsInput) (*pagination.PaginatedResult[entity.SKU], error) {
	params := &repository.SKUFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		ProductID:  input.ProductID,
	}

	skus, total, err := s.skuRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &pagination.PaginatedResult[entity.SKU]{
		Items:      skus,
		Pagination: pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total),
	}, nil
}

// UpdateSKUInput represents the update SKU input
type UpdateSKUInput struct {
	SKUCode   *string
	Barcode   *string
	BasePrice *decimal.Decimal
}

// UpdateSKU updates a SKU. Price changes affect future sales only; lines
// already written keep the price captured at sale time.
func (s *ProductService) UpdateSKU(ctx context.Context, id uuid.UUID, input *UpdateSKUInput) (*entity.SKU, error) {
	sku, err := s.skuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, apperror.NewNotFoundError("SKU")
	}

	if input.SKUCode != nil {
		code := strings.TrimSpace(*input.SKUCode)
		if code == "" {
			return nil, apperror.NewBadRequestError("SKU code is required")
		}
		existing, err := s.skuRepo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != sku.ID {
			return nil, apperror.NewConflictError("SKU code already in use")
		}
		sku.SKUCode = code
	}
	if input.Barcode != nil {
		existing, err := s.skuRepo.GetByBarcode(ctx, *input.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != sku.ID {
			return nil, apperror.NewConflictError("Barcode already in use")
		}
		sku.Barcode = *input.Barcode
	}
	if input.BasePrice != nil {
		if !input.BasePrice.IsPositive() {
			return nil, apperror.NewBadRequestError("Base price must be positive")
		}
		sku.BasePrice = *input.BasePrice
	}

	if err := s.skuRepo.Update(ctx, sku); err != nil {
		return nil, err
	}

	return sku, nil
}

// DeleteSKU removes a SKU unless sales or stock history reference it
func (s *ProductService) DeleteSKU(ctx context.Context, id uuid.UUID) error {
	sku, err := s.skuRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sku == nil {
		return apperror.NewNotFoundError("SKU")
	}

	if err := s.checkSKUReferences(ctx, id); err != nil {
		return err
	}

	return s.skuRepo.Delete(ctx, id)
}

func (s *ProductService) checkSKUReferences(ctx context.Context, skuID uuid.UUID) error {
	saleLines, err := s.saleLineRepo.CountBySKU(ctx, skuID)
	if err != nil {
		return err
	}
	if saleLines > 0 {
		return apperror.NewConflictError("Cannot delete SKU referenced by sales")
	}

	levels, err := s.stockRepo.CountLevelsBySKU(ctx, skuID)
	if err != nil {
		return err
	}
	if levels > 0 {
		return apperror.NewConflictError("Cannot delete SKU with stock history")
	}

	return nil
}
