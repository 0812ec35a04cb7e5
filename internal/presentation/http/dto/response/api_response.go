package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/pkg/apperror"
	"github.com/storelinehq/storeline-api/pkg/pagination"
)

// APIResponse is the JSON envelope every endpoint replies with.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta carries per-response metadata. The request id echoes the client's
// X-Request-ID header when present.
type Meta struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

func newMeta(c *gin.Context) *Meta {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return &Meta{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestID,
	}
}

func success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    newMeta(c),
	})
}

func failure(c *gin.Context, status int, message string, errs interface{}) {
	c.JSON(status, APIResponse{
		Success: false,
		Message: message,
		Errors:  errs,
		Meta:    newMeta(c),
	})
}

// OK sends a 200 response with the given payload.
func OK(c *gin.Context, message string, data interface{}) {
	success(c, http.StatusOK, message, data)
}

// Created sends a 201 response with the given payload.
func Created(c *gin.Context, message string, data interface{}) {
	success(c, http.StatusCreated, message, data)
}

// NoContent sends an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// SuccessWithPagination sends a 200 response wrapping a paginated result.
func SuccessWithPagination[T any](c *gin.Context, status int, message string, result *pagination.PaginatedResult[T]) {
	success(c, status, message, result)
}

// Error maps an error to its HTTP status via apperror and sends it.
// Non-AppError values come out as a 500.
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	failure(c, appErr.Code, appErr.Message, appErr.Errors)
}

// BadRequest sends a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	failure(c, http.StatusBadRequest, message, nil)
}

// Unauthorized sends a 401 response with the given message.
func Unauthorized(c *gin.Context, message string) {
	failure(c, http.StatusUnauthorized, message, nil)
}

// Forbidden sends a 403 response with the given message.
func Forbidden(c *gin.Context, message string) {
	failure(c, http.StatusForbidden, message, nil)
}
