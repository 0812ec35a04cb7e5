package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/storelinehq/storeline-api/internal/application/service"
	"github.com/storelinehq/storeline-api/internal/presentation/http/dto/request"
	"github.com/storelinehq/storeline-api/internal/presentation/http/dto/response"
	"github.com/storelinehq/storeline-api/pkg/pagination"
)

// SKUHandler handles SKU HTTP requests
type SKUHandler struct {
	productService *service.ProductService
}

// NewSKUHandler creates a new SKU handler
func NewSKUHandler(productService *service.ProductService) *SKUHandler {
	return &SKUHandler{productService: productService}
}

// Create handles SKU creation
func (h *SKUHandler) Create(c *gin.Context) {
	var req request.CreateSKURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sku, err := h.productService.CreateSKU(c.Request.Context(), &service.CreateSKUInput{
		ProductID: req.ProductID,
		SKUCode:   req.SKUCode,
		Barcode:   req.Barcode,
		BasePrice: req.BasePrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "SKU created", sku)
}

// List handles listing SKUs
func (h *SKUHandler) List(c *gin.Context) {
	var filter request.SKUFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.productService.ListSKUs(c.Request.Context(), &service.ListSKUsInput{
		Pagination: &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage},
		Search:     filter.Search,
		ProductID:  parseOptionalUUID(filter.ProductID),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "SKUs retrieved", result)
}

// Get handles retrieving a single SKU
func (h *SKUHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid SKU ID")
		return
	}

	sku, err := h.productService.GetSKU(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "SKU retrieved", sku)
}

// GetByCode handles SKU lookup by code
func (h *SKUHandler) GetByCode(c *gin.Context) {
	sku, err := h.productService.GetSKUByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "SKU retrieved", sku)
}

// GetByBarcode handles SKU lookup by barcode
func (h *SKUHandler) GetByBarcode(c *gin.Context) {
	sku, err := h.productService.GetSKUByBarcode(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "SKU retrieved", sku)
}

// Update handles updating a SKU
func (h *SKUHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid SKU ID")
		return
	}

	var req request.UpdateSKURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sku, err := h.productService.UpdateSKU(c.Request.Context(), id, &service.UpdateSKUInput{
		SKUCode:   req.SKUCode,
		Barcode:   req.Barcode,
		BasePrice: req.BasePrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "SKU updated", sku)
}

// Delete handles deleting a SKU
func (h *SKUHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid SKU ID")
		return
	}

	if err := h.productService.DeleteSKU(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
