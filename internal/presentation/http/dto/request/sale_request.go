package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleLineRequest represents one line of a sale request
type SaleLineRequest struct {
	SKUID     uuid.UUID       `json:"sku_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateSaleRequest represents a sale creation request
type CreateSaleRequest struct {
	StoreID       uuid.UUID         `json:"store_id" binding:"required"`
	RegisterID    uuid.UUID         `json:"register_id" binding:"required"`
	TotalAmount   decimal.Decimal   `json:"total_amount" binding:"required"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	Lines         []SaleLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// SaleFilterRequest represents sale filter parameters
type SaleFilterRequest struct {
	StoreID   string `form:"store_id"`
	CashierID string `form:"cashier_id"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

// SalesSummaryRequest represents summary query parameters
type SalesSummaryRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}
