package request

import "github.com/google/uuid"

// AdjustStockRequest represents a manual stock adjustment request
type AdjustStockRequest struct {
	StoreID uuid.UUID `json:"store_id" binding:"required"`
	SKUID   uuid.UUID `json:"sku_id" binding:"required"`
	Delta   int       `json:"delta" binding:"required"`
}

// StockFilterRequest represents stock level filter parameters
type StockFilterRequest struct {
	StoreID string `form:"store_id"`
	SKUID   string `form:"sku_id"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

// LowStockFilterRequest represents low stock query parameters
type LowStockFilterRequest struct {
	StoreID   string `form:"store_id"`
	Threshold *int   `form:"threshold"`
}

// MovementFilterRequest represents movement filter parameters
type MovementFilterRequest struct {
	StoreID      string `form:"store_id"`
	SKUID        string `form:"sku_id"`
	MovementType string `form:"movement_type"`
	Page         int    `form:"page"`
	PerPage      int    `form:"per_page"`
}
