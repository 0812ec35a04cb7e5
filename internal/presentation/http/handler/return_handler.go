package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/storelinehq/storeline-api/internal/application/service"
	"github.com/storelinehq/storeline-api/internal/presentation/http/dto/request"
	"github.com/storelinehq/storeline-api/internal/presentation/http/dto/response"
	"github.com/storelinehq/storeline-api/pkg/pagination"
)

// ReturnHandler handles return and refund HTTP requests
type ReturnHandler struct {
	returnService *service.ReturnService
}

// NewReturnHandler creates a new return handler
func NewReturnHandler(returnService *service.ReturnService) *ReturnHandler {
	return &ReturnHandler{returnService: returnService}
}

// Create handles recording a return
func (h *ReturnHandler) Create(c *gin.Context) {
	var req request.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines := make([]service.ReturnLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, service.ReturnLineInput{
			SKUID:    line.SKUID,
			Quantity: line.Quantity,
		})
	}

	ret, err := h.returnService.CreateReturn(c.Request.Context(), &service.CreateReturnInput{
		OriginalSaleID: req.OriginalSaleID,
		Reason:         req.Reason,
		Lines:          lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Return recorded", ret)
}

// List handles listing returns
func (h *ReturnHandler) List(c *gin.Context) {
	var filter request.ReturnFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.returnService.ListReturns(c.Request.Context(), &service.ListReturnsInput{
		Pagination:     &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage},
		OriginalSaleID: parseOptionalUUID(filter.OriginalSaleID),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Returns retrieved", result)
}

// Get handles retrieving a single return
func (h *ReturnHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid return ID")
		return
	}

	ret, err := h.returnService.GetReturn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Return retrieved", ret)
}

// GetRefund handles retrieving a return's refund
func (h *ReturnHandler) GetRefund(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid return ID")
		return
	}

	refund, err := h.returnService.GetRefund(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Refund retrieved", refund)
}
