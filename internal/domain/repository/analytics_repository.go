package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceRow is the flat invoice shape the aggregation layer consumes.
type InvoiceRow struct {
	ID            uuid.UUID
	InvoiceNumber string
	VendorID      uuid.UUID
	VendorName    string
	Date          time.Time
	DueDate       *time.Time
	TotalAmount   decimal.Decimal
	Status        string
}

// DueInvoiceRow carries the expected outflow for an invoice with a due date.
type DueInvoiceRow struct {
	DueDate     time.Time
	TotalAmount decimal.Decimal
}

// LineItemRow is the line item shape consumed by category aggregation.
type LineItemRow struct {
	Category *string
	Total    decimal.Decimal
}

// AnalyticsRepository is the read-only gateway for aggregate views. All
// queries are parameterized; an empty result is valid and not an error.
type AnalyticsRepository interface {
	// ListInvoiceRows returns all invoices joined with their vendor name.
	ListInvoiceRows(ctx context.Context) ([]InvoiceRow, error)

	// ListDueInvoiceRows returns invoices with a non-null due date,
	// optionally bounded by inclusive from/to dates.
	ListDueInvoiceRows(ctx context.Context, from, to *time.Time) ([]DueInvoiceRow, error)

	// ListLineItemRows returns category and total for every line item.
	ListLineItemRows(ctx context.Context) ([]LineItemRow, error)

	// CountDocuments returns the number of uploaded source documents.
	CountDocuments(ctx context.Context) (int64, error)
}
