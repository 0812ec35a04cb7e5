package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/storelinehq/storeline-api/internal/application/service"
	"github.com/storelinehq/storeline-api/internal/presentation/http/dto/request"
	"github.com/storelinehq/storeline-api/internal/presentation/http/dto/response"
	"github.com/storelinehq/storeline-api/pkg/pagination"
)

// StockHandler handles stock ledger HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Adjust handles a manual stock adjustment
func (h *StockHandler) Adjust(c *gin.Context) {
	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	level, err := h.stockService.Adjust(c.Request.Context(), &service.AdjustInput{
		StoreID: req.StoreID,
		SKUID:   req.SKUID,
		Delta:   req.Delta,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjusted", level)
}

// ListLevels handles listing stock levels
func (h *StockHandler) ListLevels(c *gin.Context) {
	var filter request.StockFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.stockService.ListLevels(c.Request.Context(), &service.ListLevelsInput{
		Pagination: &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage},
		StoreID:    parseOptionalUUID(filter.StoreID),
		SKUID:      parseOptionalUUID(filter.SKUID),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock levels retrieved", result)
}

// GetQuantity handles reading the on-hand quantity for a (store, sku) pair
func (h *StockHandler) GetQuantity(c *gin.Context) {
	storeID, ok := parseUUIDParam(c, "store_id")
	if !ok {
		response.BadRequest(c, "Invalid store ID")
		return
	}
	skuID, ok := parseUUIDParam(c, "sku_id")
	if !ok {
		response.BadRequest(c, "Invalid SKU ID")
		return
	}

	quantity, err := h.stockService.QuantityOf(c.Request.Context(), storeID, skuID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity retrieved", gin.H{
		"store_id": storeID,
		"sku_id":   skuID,
		"quantity": quantity,
	})
}

// LowStock handles listing levels at or below a threshold
func (h *StockHandler) LowStock(c *gin.Context) {
	var filter request.LowStockFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	levels, err := h.stockService.LowStock(c.Request.Context(), parseOptionalUUID(filter.StoreID), filter.Threshold)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock levels retrieved", levels)
}

// OutOfStock handles listing fully depleted levels
func (h *StockHandler) OutOfStock(c *gin.Context) {
	levels, err := h.stockService.OutOfStock(c.Request.Context(), parseOptionalUUID(c.Query("store_id")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Out of stock levels retrieved", levels)
}

// ListMovements handles listing the movement ledger
func (h *StockHandler) ListMovements(c *gin.Context) {
	var filter request.MovementFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.stockService.ListMovements(c.Request.Context(), &service.ListMovementsInput{
		Pagination:   &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage},
		StoreID:      parseOptionalUUID(filter.StoreID),
		SKUID:        parseOptionalUUID(filter.SKUID),
		MovementType: filter.MovementType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock movements retrieved", result)
}
