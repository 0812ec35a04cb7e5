package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale is a committed sale transaction. It is write-once: a sale and its
// lines are created together atomically and never updated afterwards.
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	StoreID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"store_id"`
	RegisterID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"register_id"`
	CashierID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"cashier_id"`
	TotalAmount   decimal.Decimal    `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	PaymentMethod enum.PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	CreatedAt     time.Time          `json:"created_at"`

	// Relationships
	Store    *Store     `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Register *Register  `gorm:"foreignKey:RegisterID" json:"register,omitempty"`
	Cashier  *Employee  `gorm:"foreignKey:CashierID" json:"cashier,omitempty"`
	Lines    []SaleLine `gorm:"foreignKey:SaleID" json:"lines,omitempty"`
	Receipt  *Receipt   `gorm:"foreignKey:SaleID" json:"receipt,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// LinesTotal sums quantity * unit_price over the sale's lines.
func (s *Sale) LinesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// SaleLine is one line of a sale. unit_price is the price captured at sale
// time, a historical fact decoupled from the SKU's current base price.
type SaleLine struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	SKUID     uuid.UUID       `gorm:"column:sku_id;type:uuid;not null;index" json:"sku_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`

	// Relationships
	Sale *Sale `gorm:"foreignKey:SaleID" json:"-"`
	SKU  *SKU  `gorm:"foreignKey:SKUID" json:"sku,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale line
func (l *SaleLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleLine model
func (SaleLine) TableName() string {
	return "sale_lines"
}

// LineTotal returns quantity * unit_price for this line.
func (l *SaleLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Receipt is the proof-of-purchase document issued once per committed sale.
type Receipt struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"sale_id"`
	ReceiptNumber string    `gorm:"size:100;unique;not null" json:"receipt_number"`
	CreatedAt     time.Time `json:"created_at"`

	// Relationships
	Sale *Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}
