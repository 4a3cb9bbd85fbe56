package repository

import (
	"time"

	"github.com/flowbit/analytics-api/pkg/apperror"
)

// DateLayout is the wire format for filter date bounds.
const DateLayout = "2006-01-02"

// InvoiceFilter is the structured output of the filter builder. Every field
// is treated as literal data by the storage layer; values are never
// concatenated into query text. Zero-valued fields impose no constraint.
type InvoiceFilter struct {
	// Query matches invoice number OR vendor name, case-insensitive substring.
	Query string
	// Status matches the invoice status exactly.
	Status string
	// Vendor matches the vendor name, case-insensitive substring.
	Vendor string
	// From/To bound the invoice date, inclusive.
	From *time.Time
	To   *time.Time
}

// ParseInvoiceFilter validates raw query inputs into an InvoiceFilter.
// Malformed dates are rejected with a ValidationError, never silently dropped.
func ParseInvoiceFilter(q, status, vendor, from, to string) (*InvoiceFilter, error) {
	f := &InvoiceFilter{
		Query:  q,
		Status: status,
		Vendor: vendor,
	}

	var err error
	if f.From, err = ParseDateBound("from", from); err != nil {
		return nil, err
	}
	if f.To, err = ParseDateBound("to", to); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseDateBound parses an optional YYYY-MM-DD bound. Empty input means no
// constraint; malformed input is a ValidationError naming the field.
func ParseDateBound(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, apperror.NewFieldValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	t = t.UTC()
	return &t, nil
}
