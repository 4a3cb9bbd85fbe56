package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document represents an uploaded source document. The dashboard only
// reports the count; extraction happens outside this service.
type Document struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Filename    string    `gorm:"size:255;not null" json:"filename"`
	ContentType string    `gorm:"size:100" json:"content_type"`
	SizeBytes   int64     `gorm:"default:0" json:"size_bytes"`
	UploadedAt  time.Time `gorm:"not null" json:"uploaded_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID and defaults UploadedAt before creating a document
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.UploadedAt.IsZero() {
		d.UploadedAt = time.Now()
	}
	return nil
}

// TableName returns the table name for the Document model
func (Document) TableName() string {
	return "documents"
}
