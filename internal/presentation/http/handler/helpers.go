package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
)

// GetEmployeeID extracts the employee ID from the Gin context
func GetEmployeeID(c *gin.Context) *uuid.UUID {
	val, exists := c.Get("employee_id")
	if !exists {
		return nil
	}
	employeeID, ok := val.(uuid.UUID)
	if !ok {
		return nil
	}
	return &employeeID
}

// GetUsername extracts the username from the Gin context
func GetUsername(c *gin.Context) string {
	username, exists := c.Get("username")
	if !exists {
		return ""
	}
	return username.(string)
}

// GetRole extracts the employee role from the Gin context
func GetRole(c *gin.Context) enum.Role {
	val, exists := c.Get("role")
	if !exists {
		return ""
	}
	role, ok := val.(enum.Role)
	if !ok {
		return ""
	}
	return role
}

// parseUUIDParam parses a UUID path parameter
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalUUID parses an optional UUID string, returning nil when empty
func parseOptionalUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
