package repository

import (
	"strings"

	domainRepo "github.com/flowbit/analytics-api/internal/domain/repository"
	"gorm.io/gorm"
)

// likePattern builds a contains-pattern for ILIKE with the pattern
// metacharacters escaped, so filter values always match literally.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// InvoiceFilterScope applies a structured invoice filter as parameterized
// predicates. Callers must join vendors for the name predicates. Absent
// fields add no constraint; present predicates are ANDed.
func InvoiceFilterScope(f *domainRepo.InvoiceFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f == nil {
			return db
		}
		if f.Query != "" {
			p := likePattern(f.Query)
			db = db.Where("invoices.invoice_number ILIKE ? OR vendors.name ILIKE ?", p, p)
		}
		if f.Status != "" {
			db = db.Where("invoices.status = ?", f.Status)
		}
		if f.Vendor != "" {
			db = db.Where("vendors.name ILIKE ?", likePattern(f.Vendor))
		}
		if f.From != nil {
			db = db.Where("invoices.date >= ?", *f.From)
		}
		if f.To != nil {
			db = db.Where("invoices.date <= ?", *f.To)
		}
		return db
	}
}
