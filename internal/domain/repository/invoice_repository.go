package repository

import (
	"context"
	"time"

	"github.com/flowbit/analytics-api/internal/domain/entity"
	"github.com/flowbit/analytics-api/internal/domain/enum"
	"github.com/flowbit/analytics-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceListRow is the row shape returned by filtered invoice listings.
type InvoiceListRow struct {
	ID            uuid.UUID
	InvoiceNumber string
	Date          time.Time
	DueDate       *time.Time
	Currency      string
	TotalAmount   decimal.Decimal
	Status        string
	VendorName    string
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	// List returns invoices matching the filter, newest first, plus the
	// total matching count independent of limit/offset.
	List(ctx context.Context, filter *InvoiceFilter, params *pagination.ListParams) ([]InvoiceListRow, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error
	AddPayment(ctx context.Context, payment *entity.Payment) error
	SumPayments(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error)
	Count(ctx context.Context) (int64, error)
}

// VendorRepository defines the interface for vendor data operations
type VendorRepository interface {
	// Upsert creates the vendor or, when a vendor with the same name exists,
	// additively updates it: non-null incoming fields overwrite, nulls never
	// erase existing values. The vendor ID is populated either way.
	Upsert(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
}

// DocumentRepository defines the interface for uploaded document records
type DocumentRepository interface {
	Create(ctx context.Context, document *entity.Document) error
	Count(ctx context.Context) (int64, error)
}
