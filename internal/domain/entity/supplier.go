package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Supplier represents a vendor that stock is purchased from
type Supplier struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	ContactInfo string         `gorm:"type:text" json:"contact_info"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	PurchaseOrders []PurchaseOrder `gorm:"foreignKey:SupplierID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}

// PurchaseOrder is an order of stock from a supplier. Receiving a pending
// order credits the stock ledger with PURCHASE movements.
type PurchaseOrder struct {
	ID         uuid.UUID                `gorm:"type:uuid;primary_key" json:"id"`
	SupplierID uuid.UUID                `gorm:"type:uuid;not null;index" json:"supplier_id"`
	StoreID    uuid.UUID                `gorm:"type:uuid;not null;index" json:"store_id"`
	OrderNo    string                   `gorm:"size:100;unique;not null" json:"order_no"`
	Status     enum.PurchaseOrderStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	CreatedAt  time.Time                `json:"created_at"`
	UpdatedAt  time.Time                `json:"updated_at"`

	// Relationships
	Supplier *Supplier           `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Store    *Store              `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Lines    []PurchaseOrderLine `gorm:"foreignKey:PurchaseOrderID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase order
func (p *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrder model
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderLine is one SKU/quantity line of a purchase order
type PurchaseOrderLine struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchase_order_id"`
	SKUID           uuid.UUID       `gorm:"column:sku_id;type:uuid;not null;index" json:"sku_id"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	UnitCost        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_cost"`
	CreatedAt       time.Time       `json:"created_at"`

	// Relationships
	PurchaseOrder *PurchaseOrder `gorm:"foreignKey:PurchaseOrderID" json:"-"`
	SKU           *SKU           `gorm:"foreignKey:SKUID" json:"sku,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase order line
func (l *PurchaseOrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrderLine model
func (PurchaseOrderLine) TableName() string {
	return "purchase_order_lines"
}
