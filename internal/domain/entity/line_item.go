package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LineItem represents a single line on an invoice. It is owned by its
// invoice and removed with it. Total holds the explicit value from the
// source document when one was provided, otherwise quantity x unit price.
type LineItem struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Description *string          `gorm:"type:text" json:"description,omitempty"`
	Quantity    decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:1" json:"quantity"`
	UnitPrice   decimal.Decimal  `gorm:"type:decimal(18,2);not null" json:"unit_price"`
	Tax         *decimal.Decimal `gorm:"type:decimal(18,2)" json:"tax,omitempty"`
	Category    *string          `gorm:"size:255" json:"category,omitempty"`
	Total       decimal.Decimal  `gorm:"type:decimal(18,2);not null" json:"total"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new line item
func (li *LineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "line_items"
}
