package repository

import (
	"context"
	"time"

	"github.com/flowbit/analytics-api/internal/domain/entity"
	domainRepo "github.com/flowbit/analytics-api/internal/domain/repository"
	"github.com/flowbit/analytics-api/pkg/apperror"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) ListInvoiceRows(ctx context.Context) ([]domainRepo.InvoiceRow, error) {
	var rows []domainRepo.InvoiceRow

	err := r.db.WithContext(ctx).
		Model(&entity.Invoice{}).
		Select(`invoices.id, invoices.invoice_number, invoices.vendor_id,
			vendors.name AS vendor_name, invoices.date, invoices.due_date,
			invoices.total_amount, invoices.status`).
		Joins("JOIN vendors ON vendors.id = invoices.vendor_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperror.NewStorageError("list invoice rows", err)
	}

	return rows, nil
}

func (r *analyticsRepository) ListDueInvoiceRows(ctx context.Context, from, to *time.Time) ([]domainRepo.DueInvoiceRow, error) {
	var rows []domainRepo.DueInvoiceRow

	query := r.db.WithContext(ctx).
		Model(&entity.Invoice{}).
		Select("invoices.due_date, invoices.total_amount").
		Where("invoices.due_date IS NOT NULL")
	if from != nil {
		query = query.Where("invoices.due_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("invoices.due_date <= ?", *to)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, apperror.NewStorageError("list due invoice rows", err)
	}

	return rows, nil
}

func (r *analyticsRepository) ListLineItemRows(ctx context.Context) ([]domainRepo.LineItemRow, error) {
	var rows []domainRepo.LineItemRow

	err := r.db.WithContext(ctx).
		Model(&entity.LineItem{}).
		Select("line_items.category, line_items.total").
		Joins("JOIN invoices ON invoices.id = line_items.invoice_id AND invoices.deleted_at IS NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, apperror.NewStorageError("list line item rows", err)
	}

	return rows, nil
}

func (r *analyticsRepository) CountDocuments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Document{}).Count(&count).Error
	if err != nil {
		return 0, apperror.NewStorageError("count documents", err)
	}
	return count, nil
}
