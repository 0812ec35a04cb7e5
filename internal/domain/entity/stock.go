package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"gorm.io/gorm"
)

// StockLevel is the on-hand quantity of one SKU at one store.
// The (store_id, sku_id) pair is unique and the row materializes lazily
// on first movement with quantity zero. Quantity never goes negative.
type StockLevel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	StoreID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_stock_store_sku" json:"store_id"`
	SKUID     uuid.UUID      `gorm:"column:sku_id;type:uuid;not null;uniqueIndex:idx_stock_store_sku" json:"sku_id"`
	Quantity  int            `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Store     *Store          `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	SKU       *SKU            `gorm:"foreignKey:SKUID" json:"sku,omitempty"`
	Movements []StockMovement `gorm:"foreignKey:StockLevelID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stock level
func (s *StockLevel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockLevel model
func (StockLevel) TableName() string {
	return "stock_levels"
}

// StockMovement is an immutable, append-only ledger entry. The sum of all
// movements for a stock level equals its current quantity after every
// committed transaction.
type StockMovement struct {
	ID              uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	StockLevelID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"stock_level_id"`
	MovementType    enum.MovementType `gorm:"size:20;not null;index" json:"movement_type"`
	QuantityChanged int               `gorm:"not null" json:"quantity_changed"`
	CreatedAt       time.Time         `json:"created_at"`

	// Relationships
	StockLevel *StockLevel `gorm:"foreignKey:StockLevelID" json:"stock_level,omitempty"`
}

// BeforeCreate generates a UUID before creating a new stock movement
func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockMovement model
func (StockMovement) TableName() string {
	return "stock_movements"
}
