package repository

import (
	"context"
	"errors"

	"github.com/flowbit/analytics-api/internal/domain/entity"
	"github.com/flowbit/analytics-api/internal/domain/enum"
	domainRepo "github.com/flowbit/analytics-api/internal/domain/repository"
	"github.com/flowbit/analytics-api/pkg/apperror"
	"github.com/flowbit/analytics-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	if err := r.db.WithContext(ctx).Create(invoice).Error; err != nil {
		return apperror.NewStorageError("create invoice", err)
	}
	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("LineItems").
		Preload("Payments").
		First(&invoice, "invoices.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewStorageError("get invoice", err)
	}
	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context, filter *domainRepo.InvoiceFilter, params *pagination.ListParams) ([]domainRepo.InvoiceListRow, int64, error) {
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entity.Invoice{}).
		Joins("JOIN vendors ON vendors.id = invoices.vendor_id").
		Scopes(InvoiceFilterScope(filter))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperror.NewStorageError("count invoices", err)
	}

	params.Validate()
	var rows []domainRepo.InvoiceListRow
	err := query.
		Select(`invoices.id, invoices.invoice_number, invoices.date, invoices.due_date,
			invoices.currency, invoices.total_amount, invoices.status,
			vendors.name AS vendor_name`).
		Order("invoices.date DESC").
		Limit(params.Limit).
		Offset(params.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, apperror.NewStorageError("list invoices", err)
	}

	return rows, total, nil
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Invoice{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		return apperror.NewStorageError("update invoice status", err)
	}
	return nil
}

func (r *invoiceRepository) AddPayment(ctx context.Context, payment *entity.Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return apperror.NewStorageError("add payment", err)
	}
	return nil
}

func (r *invoiceRepository) SumPayments(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&entity.Payment{}).
		Select("SUM(amount)").
		Where("invoice_id = ?", invoiceID).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, apperror.NewStorageError("sum payments", err)
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func (r *invoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Invoice{}).Count(&count).Error; err != nil {
		return 0, apperror.NewStorageError("count invoices", err)
	}
	return count, nil
}
