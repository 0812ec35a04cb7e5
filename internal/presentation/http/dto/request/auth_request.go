package request

import "github.com/google/uuid"

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents an employee registration request
type RegisterRequest struct {
	Username  string     `json:"username" binding:"required,min=3,max=255"`
	Email     string     `json:"email" binding:"required,email"`
	Password  string     `json:"password" binding:"required,min=8"`
	FirstName string     `json:"first_name" binding:"omitempty,max=255"`
	LastName  string     `json:"last_name" binding:"omitempty,max=255"`
	Role      string     `json:"role" binding:"omitempty"`
	StoreID   *uuid.UUID `json:"store_id"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
