package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Return is a customer-initiated reversal of part or all of a prior sale.
// A sale may have multiple partial returns.
type Return struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OriginalSaleID uuid.UUID `gorm:"type:uuid;not null;index" json:"original_sale_id"`
	Reason         string    `gorm:"size:255;not null" json:"reason"`
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	OriginalSale *Sale   `gorm:"foreignKey:OriginalSaleID" json:"original_sale,omitempty"`
	Refund       *Refund `gorm:"foreignKey:ReturnID" json:"refund,omitempty"`
}

// BeforeCreate generates a UUID before creating a new return
func (r *Return) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Return model
func (Return) TableName() string {
	return "returns"
}

// Refund is the amount owed back for a return, computed from the original
// sale-line prices, one-to-one with its Return.
type Refund struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReturnID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"return_id"`
	Amount    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	CreatedAt time.Time       `json:"created_at"`

	// Relationships
	Return *Return `gorm:"foreignKey:ReturnID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new refund
func (r *Refund) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Refund model
func (Refund) TableName() string {
	return "refunds"
}
