package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Milestone struct {
	ID          string         `gorm:"primaryKey;size:50"`
	ProjectID   string         `gorm:"not null;index"`
	Title       string         `gorm:"size:200;not null"`
	Description string         `gorm:"type:text"`
	DueDate     datatypes.Date `gorm:"not null"`
	IsCompleted bool           `gorm:"not null;default:false"`
	CreatedByID string         `gorm:"column:created_by;not null"`

	// Relationships
	Project   Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	CreatedBy User    `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT"`
}

func (m *Milestone) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = "MLS-" + uuid.NewString()
	}
	return nil
}
