package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	ID           string    `gorm:"primaryKey;size:50"`
	ProjectID    string    `gorm:"not null;index"`
	Title        string    `gorm:"size:200;not null"`
	Description  string    `gorm:"type:text"`
	URLOrPath    string    `gorm:"column:url_or_path;size:500;not null"`
	UploadedByID string    `gorm:"column:uploaded_by;not null"`
	UploadedAt   time.Time `gorm:"not null"`

	// Relationships
	Project    Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	UploadedBy User    `gorm:"foreignKey:UploadedByID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = "DOC-" + uuid.NewString()
	}
	if d.UploadedAt.IsZero() {
		d.UploadedAt = time.Now()
	}
	return nil
}
