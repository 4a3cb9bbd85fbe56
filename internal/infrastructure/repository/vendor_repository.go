package repository

import (
	"context"
	"errors"

	"github.com/flowbit/analytics-api/internal/domain/entity"
	domainRepo "github.com/flowbit/analytics-api/internal/domain/repository"
	"github.com/flowbit/analytics-api/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB) domainRepo.VendorRepository {
	return &vendorRepository{db: db}
}

// Upsert relies on the unique index on vendors.name so concurrent ingests of
// the same vendor cannot race a find-then-create. Incoming non-null fields
// overwrite; nulls never erase existing values.
func (r *vendorRepository) Upsert(ctx context.Context, vendor *entity.Vendor) error {
	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "name"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"tax_id":     gorm.Expr("COALESCE(EXCLUDED.tax_id, vendors.tax_id)"),
					"address":    gorm.Expr("COALESCE(EXCLUDED.address, vendors.address)"),
					"email":      gorm.Expr("COALESCE(EXCLUDED.email, vendors.email)"),
					"updated_at": gorm.Expr("EXCLUDED.updated_at"),
				}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "id"}}},
		).
		Create(vendor).Error
	if err != nil {
		return apperror.NewStorageError("upsert vendor", err)
	}
	return nil
}

func (r *vendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewStorageError("get vendor", err)
	}
	return &vendor, nil
}
