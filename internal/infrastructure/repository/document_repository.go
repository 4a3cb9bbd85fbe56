package repository

import (
	"context"

	"github.com/flowbit/analytics-api/internal/domain/entity"
	domainRepo "github.com/flowbit/analytics-api/internal/domain/repository"
	"github.com/flowbit/analytics-api/pkg/apperror"
	"gorm.io/gorm"
)

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) domainRepo.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, document *entity.Document) error {
	if err := r.db.WithContext(ctx).Create(document).Error; err != nil {
		return apperror.NewStorageError("create document", err)
	}
	return nil
}

func (r *documentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Document{}).Count(&count).Error; err != nil {
		return 0, apperror.NewStorageError("count documents", err)
	}
	return count, nil
}
