package request

import "github.com/google/uuid"

// ReturnLineRequest represents one returned item
type ReturnLineRequest struct {
	SKUID    uuid.UUID `json:"sku_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

// CreateReturnRequest represents a return creation request
type CreateReturnRequest struct {
	OriginalSaleID uuid.UUID           `json:"original_sale_id" binding:"required"`
	Reason         string              `json:"reason" binding:"required"`
	Lines          []ReturnLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ReturnFilterRequest represents return filter parameters
type ReturnFilterRequest struct {
	OriginalSaleID string `form:"original_sale_id"`
	Page           int    `form:"page"`
	PerPage        int    `form:"per_page"`
}
