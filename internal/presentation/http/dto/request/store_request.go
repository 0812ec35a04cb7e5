package request

import "github.com/google/uuid"

// CreateStoreRequest represents a store creation request
type CreateStoreRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Location string `json:"location"`
}

// UpdateStoreRequest represents a store update request
type UpdateStoreRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Location *string `json:"location"`
}

// CreateRegisterRequest represents a register creation request
type CreateRegisterRequest struct {
	StoreID    uuid.UUID `json:"store_id" binding:"required"`
	Identifier string    `json:"identifier" binding:"required,min=1,max=50"`
}

// UpdateRegisterRequest represents a register update request
type UpdateRegisterRequest struct {
	Identifier string `json:"identifier" binding:"required,min=1,max=50"`
}
