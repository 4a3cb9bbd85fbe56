package database

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/flowbit/analytics-api/internal/domain/entity"
	"github.com/flowbit/analytics-api/internal/domain/enum"
	"github.com/flowbit/analytics-api/pkg/money"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed file shapes. Amounts are interface{} on purpose: source files carry
// numbers, numeric strings, and garbage; everything funnels through
// money.FromAny so bad values become zero instead of aborting the load.
type seedVendor struct {
	Name    string  `json:"name"`
	Company string  `json:"company"`
	TaxID   *string `json:"tax_id"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
}

type seedLineItem struct {
	Description *string     `json:"description"`
	Name        *string     `json:"name"`
	Quantity    interface{} `json:"quantity"`
	UnitPrice   interface{} `json:"unit_price"`
	Price       interface{} `json:"price"`
	Tax         interface{} `json:"tax"`
	Category    *string     `json:"category"`
	Total       interface{} `json:"total"`
}

type seedPayment struct {
	Amount    interface{} `json:"amount"`
	PaidAt    *string     `json:"paid_at"`
	Method    *string     `json:"method"`
	Reference *string     `json:"reference"`
}

type seedInvoice struct {
	InvoiceNumber string         `json:"invoice_number"`
	Number        string         `json:"number"`
	Vendor        *seedVendor    `json:"vendor"`
	Supplier      *seedVendor    `json:"supplier"`
	Date          *string        `json:"date"`
	DueDate       *string        `json:"due_date"`
	Currency      string         `json:"currency"`
	TotalAmount   interface{}    `json:"total_amount"`
	Status        string         `json:"status"`
	LineItems     []seedLineItem `json:"line_items"`
	Items         []seedLineItem `json:"items"`
	Payments      []seedPayment  `json:"payments"`
}

type seedFile struct {
	Invoices []seedInvoice `json:"invoices"`
}

// SeedFromFile loads invoices from a JSON data file. It is a no-op when the
// path is empty, the file is missing, or the store already holds invoices.
func SeedFromFile(db *gorm.DB, path string) error {
	if path == "" {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", path).Msg("seed file not found, skipping")
			return nil
		}
		return fmt.Errorf("read seed file: %w", err)
	}

	var existing int64
	if err := db.Model(&entity.Invoice{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("check existing invoices: %w", err)
	}
	if existing > 0 {
		log.Info().Int64("invoices", existing).Msg("store already seeded, skipping")
		return nil
	}

	invoices, err := parseSeed(raw)
	if err != nil {
		return err
	}

	for i := range invoices {
		if err := seedInvoiceRecord(db, &invoices[i]); err != nil {
			return err
		}
	}

	log.Info().Int("invoices", len(invoices)).Str("path", path).Msg("seeding completed")
	return nil
}

// parseSeed accepts either a top-level array or an {"invoices": [...]} object.
func parseSeed(raw []byte) ([]seedInvoice, error) {
	var list []seedInvoice
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var file seedFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return file.Invoices, nil
}

func seedInvoiceRecord(db *gorm.DB, inv *seedInvoice) error {
	src := inv.Vendor
	if src == nil {
		src = inv.Supplier
	}

	vendor := entity.Vendor{Name: "Unknown Vendor"}
	if src != nil {
		if src.Name != "" {
			vendor.Name = src.Name
		} else if src.Company != "" {
			vendor.Name = src.Company
		}
		vendor.TaxID = src.TaxID
		vendor.Address = src.Address
		vendor.Email = src.Email
	}

	err := db.Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"tax_id":  gorm.Expr("COALESCE(EXCLUDED.tax_id, vendors.tax_id)"),
				"address": gorm.Expr("COALESCE(EXCLUDED.address, vendors.address)"),
				"email":   gorm.Expr("COALESCE(EXCLUDED.email, vendors.email)"),
			}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "id"}}},
	).Create(&vendor).Error
	if err != nil {
		return fmt.Errorf("seed vendor %q: %w", vendor.Name, err)
	}

	number := inv.InvoiceNumber
	if number == "" {
		number = inv.Number
	}
	if number == "" {
		number = fmt.Sprintf("INV-%d", time.Now().UnixNano())
	}

	status := enum.InvoiceStatus(inv.Status)
	if inv.Status == "" {
		status = enum.InvoiceStatusUnpaid
	}
	currency := inv.Currency
	if currency == "" {
		currency = "USD"
	}

	record := entity.Invoice{
		InvoiceNumber: number,
		VendorID:      vendor.ID,
		Date:          parseSeedDate(inv.Date, time.Now()),
		Currency:      currency,
		TotalAmount:   money.FromAny(inv.TotalAmount),
		Status:        status,
	}
	if inv.DueDate != nil {
		due := parseSeedDate(inv.DueDate, time.Time{})
		if !due.IsZero() {
			record.DueDate = &due
		}
	}

	items := inv.LineItems
	if len(items) == 0 {
		items = inv.Items
	}
	for _, li := range items {
		qty := money.FromAny(li.Quantity)
		if qty.Sign() <= 0 {
			qty = decimal.NewFromInt(1)
		}
		unitPrice := money.FromAny(li.UnitPrice)
		if li.UnitPrice == nil {
			unitPrice = money.FromAny(li.Price)
		}

		// Explicit total wins; otherwise quantity x unit price, matching
		// the seeded data so aggregates stay consistent with it.
		total := qty.Mul(unitPrice)
		if li.Total != nil {
			total = money.FromAny(li.Total)
		}

		item := entity.LineItem{
			Description: firstNonNil(li.Description, li.Name),
			Quantity:    qty,
			UnitPrice:   unitPrice,
			Category:    li.Category,
			Total:       total,
		}
		if li.Tax != nil {
			tax := money.FromAny(li.Tax)
			item.Tax = &tax
		}
		record.LineItems = append(record.LineItems, item)
	}

	for _, p := range inv.Payments {
		payment := entity.Payment{
			Amount:    money.FromAny(p.Amount),
			Method:    p.Method,
			Reference: p.Reference,
		}
		if p.PaidAt != nil {
			payment.PaidAt = parseSeedDate(p.PaidAt, time.Now())
		}
		record.Payments = append(record.Payments, payment)
	}

	if err := db.Create(&record).Error; err != nil {
		return fmt.Errorf("seed invoice %q: %w", number, err)
	}
	return nil
}

func parseSeedDate(s *string, fallback time.Time) time.Time {
	if s == nil || *s == "" {
		return fallback
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *s); err == nil {
			return t
		}
	}
	return fallback
}

func firstNonNil(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
