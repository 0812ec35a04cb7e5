package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Employee represents a staff member who can operate the back office
type Employee struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Username  string         `gorm:"size:255;unique;not null" json:"username"`
	Email     string         `gorm:"size:255;unique;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	FirstName string         `gorm:"size:255" json:"first_name"`
	LastName  string         `gorm:"size:255" json:"last_name"`
	Role      enum.Role      `gorm:"size:10;not null;default:'CASHIER'" json:"role"`
	StoreID   *uuid.UUID     `gorm:"type:uuid;index" json:"store_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Store *Store `gorm:"foreignKey:StoreID;constraint:OnDelete:SET NULL" json:"store,omitempty"`
	Sales []Sale `gorm:"foreignKey:CashierID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}

// FullName returns the employee's display name
func (e *Employee) FullName() string {
	if e.FirstName == "" && e.LastName == "" {
		return e.Username
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// IsManager reports whether the employee holds the manager role
func (e *Employee) IsManager() bool {
	return e.Role == enum.RoleManager
}
