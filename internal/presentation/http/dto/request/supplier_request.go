package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSupplierRequest represents a supplier creation request
type CreateSupplierRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	ContactInfo string `json:"contact_info"`
}

// UpdateSupplierRequest represents a supplier update request
type UpdateSupplierRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	ContactInfo *string `json:"contact_info"`
}

// PurchaseOrderLineRequest represents one line of a purchase order
type PurchaseOrderLineRequest struct {
	SKUID    uuid.UUID       `json:"sku_id" binding:"required"`
	Quantity int             `json:"quantity" binding:"required,min=1"`
	UnitCost decimal.Decimal `json:"unit_cost" binding:"required"`
}

// CreatePurchaseOrderRequest represents a purchase order creation request
type CreatePurchaseOrderRequest struct {
	SupplierID uuid.UUID                  `json:"supplier_id" binding:"required"`
	StoreID    uuid.UUID                  `json:"store_id" binding:"required"`
	Lines      []PurchaseOrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// PurchaseOrderFilterRequest represents purchase order filter parameters
type PurchaseOrderFilterRequest struct {
	SupplierID string `form:"supplier_id"`
	Status     string `form:"status"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
