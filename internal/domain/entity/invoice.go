package entity

import (
	"time"

	"github.com/flowbit/analytics-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice represents an ingested invoice document. Invoices are soft-deleted
// so rows referenced by line items and payments are never physically removed.
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber string             `gorm:"size:100;not null;index" json:"invoice_number"`
	VendorID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"vendor_id"`
	Date          time.Time          `gorm:"not null;index" json:"date"`
	DueDate       *time.Time         `gorm:"index" json:"due_date,omitempty"`
	Currency      string             `gorm:"size:10;not null;default:'USD'" json:"currency"`
	TotalAmount   decimal.Decimal    `gorm:"type:decimal(18,2);not null" json:"total_amount"`
	Status        enum.InvoiceStatus `gorm:"size:50;not null;default:'unpaid'" json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Vendor    Vendor     `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	LineItems []LineItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"line_items,omitempty"`
	Payments  []Payment  `gorm:"foreignKey:InvoiceID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}
