package request

import "github.com/google/uuid"

// UpdateEmployeeRequest represents an employee update request
type UpdateEmployeeRequest struct {
	FirstName  *string    `json:"first_name" binding:"omitempty,max=255"`
	LastName   *string    `json:"last_name" binding:"omitempty,max=255"`
	Email      *string    `json:"email" binding:"omitempty,email"`
	Role       *string    `json:"role"`
	StoreID    *uuid.UUID `json:"store_id"`
	ClearStore bool       `json:"clear_store"`
}

// ResetPasswordRequest represents a manager-initiated password reset
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// EmployeeFilterRequest represents employee filter parameters
type EmployeeFilterRequest struct {
	Search  string `form:"search"`
	Role    string `form:"role"`
	StoreID string `form:"store_id"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
