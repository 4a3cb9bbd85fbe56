package service

import (
	"context"
	"time"

	"github.com/flowbit/analytics-api/internal/domain/entity"
	"github.com/flowbit/analytics-api/internal/domain/enum"
	"github.com/flowbit/analytics-api/internal/domain/repository"
	"github.com/flowbit/analytics-api/pkg/apperror"
	"github.com/flowbit/analytics-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceService handles invoice listing, ingest and payment application
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	vendorRepo   repository.VendorRepository
	documentRepo repository.DocumentRepository
	queryTimeout time.Duration
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	vendorRepo repository.VendorRepository,
	documentRepo repository.DocumentRepository,
	queryTimeout time.Duration,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		vendorRepo:   vendorRepo,
		documentRepo: documentRepo,
		queryTimeout: queryTimeout,
	}
}

// InvoiceList is a filtered page of invoices plus the full matching count.
type InvoiceList struct {
	Data  []repository.InvoiceListRow
	Total int64
}

// VendorInput carries vendor fields on invoice ingest.
type VendorInput struct {
	Name    string  `json:"name" binding:"required"`
	TaxID   *string `json:"tax_id"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
}

// LineItemInput carries one invoice line on ingest.
type LineItemInput struct {
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity" binding:"omitempty,gt=0"`
	UnitPrice   float64  `json:"unit_price" binding:"gte=0"`
	Tax         *float64 `json:"tax"`
	Category    *string  `json:"category"`
	Total       *float64 `json:"total"`
}

// CreateInvoiceInput carries an invoice ingest request.
type CreateInvoiceInput struct {
	InvoiceNumber string          `json:"invoice_number" binding:"required"`
	Vendor        VendorInput     `json:"vendor" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	DueDate       string          `json:"due_date"`
	Currency      string          `json:"currency"`
	TotalAmount   float64         `json:"total_amount" binding:"gte=0"`
	Status        string          `json:"status"`
	LineItems     []LineItemInput `json:"line_items"`
}

// PaymentInput carries a payment application request.
type PaymentInput struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	PaidAt    string  `json:"paid_at"`
	Method    *string `json:"method"`
	Reference *string `json:"reference"`
}

func (s *InvoiceService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// List returns invoices matching the raw filter inputs. Malformed dates are
// rejected with a ValidationError before any query runs.
func (s *InvoiceService) List(ctx context.Context, q, status, vendor, from, to string, params *pagination.ListParams) (*InvoiceList, error) {
	filter, err := repository.ParseInvoiceFilter(q, status, vendor, from, to)
	if err != nil {
		return nil, err
	}
	if params == nil {
		params = pagination.DefaultListParams()
	}
	params.Validate()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, total, err := s.invoiceRepo.List(ctx, filter, params)
	if err != nil {
		return nil, err
	}
	return &InvoiceList{Data: rows, Total: total}, nil
}

// Create ingests an invoice, upserting its vendor by name. Line item totals
// fall back to quantity x unit price when the source omits them.
func (s *InvoiceService) Create(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	date, err := repository.ParseDateBound("date", input.Date)
	if err != nil {
		return nil, err
	}
	dueDate, err := repository.ParseDateBound("due_date", input.DueDate)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	vendor := entity.Vendor{
		Name:    input.Vendor.Name,
		TaxID:   input.Vendor.TaxID,
		Address: input.Vendor.Address,
		Email:   input.Vendor.Email,
	}
	if err := s.vendorRepo.Upsert(ctx, &vendor); err != nil {
		return nil, err
	}

	status := enum.InvoiceStatus(input.Status)
	if input.Status == "" {
		status = enum.InvoiceStatusUnpaid
	}
	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	invoice := entity.Invoice{
		InvoiceNumber: input.InvoiceNumber,
		VendorID:      vendor.ID,
		Date:          *date,
		DueDate:       dueDate,
		Currency:      currency,
		TotalAmount:   decimal.NewFromFloat(input.TotalAmount),
		Status:        status,
	}

	for _, li := range input.LineItems {
		qty := decimal.NewFromInt(1)
		if li.Quantity != nil {
			qty = decimal.NewFromFloat(*li.Quantity)
		}
		unitPrice := decimal.NewFromFloat(li.UnitPrice)

		total := qty.Mul(unitPrice)
		if li.Total != nil {
			total = decimal.NewFromFloat(*li.Total)
		}

		item := entity.LineItem{
			Description: li.Description,
			Quantity:    qty,
			UnitPrice:   unitPrice,
			Category:    li.Category,
			Total:       total,
		}
		if li.Tax != nil {
			tax := decimal.NewFromFloat(*li.Tax)
			item.Tax = &tax
		}
		invoice.LineItems = append(invoice.LineItems, item)
	}

	if err := s.invoiceRepo.Create(ctx, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// ApplyPayment records a payment against an invoice and marks the invoice
// paid once the payment total covers the invoice amount.
func (s *InvoiceService) ApplyPayment(ctx context.Context, invoiceID uuid.UUID, input *PaymentInput) (*entity.Payment, error) {
	var paidAt time.Time
	if input.PaidAt != "" {
		t, err := time.Parse(time.RFC3339, input.PaidAt)
		if err != nil {
			return nil, apperror.NewFieldValidationError("paid_at", "must be an RFC3339 timestamp")
		}
		paidAt = t
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.Status == enum.InvoiceStatusVoid {
		return nil, apperror.NewValidationError("cannot apply a payment to a void invoice")
	}

	payment := entity.Payment{
		InvoiceID: invoice.ID,
		Amount:    decimal.NewFromFloat(input.Amount),
		PaidAt:    paidAt,
		Method:    input.Method,
		Reference: input.Reference,
	}
	if err := s.invoiceRepo.AddPayment(ctx, &payment); err != nil {
		return nil, err
	}

	paid, err := s.invoiceRepo.SumPayments(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	if paid.GreaterThanOrEqual(invoice.TotalAmount) && invoice.Status != enum.InvoiceStatusPaid {
		if err := s.invoiceRepo.UpdateStatus(ctx, invoice.ID, enum.InvoiceStatusPaid); err != nil {
			return nil, err
		}
	}

	return &payment, nil
}

// RegisterDocument records an uploaded source document.
func (s *InvoiceService) RegisterDocument(ctx context.Context, filename, contentType string, sizeBytes int64) (*entity.Document, error) {
	if filename == "" {
		return nil, apperror.NewFieldValidationError("filename", "is required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	document := entity.Document{
		Filename:    filename,
		ContentType: contentType,
		SizeBytes:   sizeBytes,
	}
	if err := s.documentRepo.Create(ctx, &document); err != nil {
		return nil, err
	}
	return &document, nil
}
