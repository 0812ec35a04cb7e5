package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

// CreateSKURequest represents a SKU creation request
type CreateSKURequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	SKUCode   string          `json:"sku_code" binding:"required,min=1,max=100"`
	Barcode   string          `json:"barcode" binding:"omitempty,max=100"`
	BasePrice decimal.Decimal `json:"base_price" binding:"required"`
}

// UpdateSKURequest represents a SKU update request
type UpdateSKURequest struct {
	SKUCode   *string          `json:"sku_code" binding:"omitempty,min=1,max=100"`
	Barcode   *string          `json:"barcode" binding:"omitempty,max=100"`
	BasePrice *decimal.Decimal `json:"base_price"`
}

// SKUFilterRequest represents SKU filter parameters
type SKUFilterRequest struct {
	Search    string `form:"search"`
	ProductID string `form:"product_id"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
