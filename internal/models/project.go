package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	ID        string          `gorm:"primaryKey;size:50"`
	Title     string          `gorm:"size:200;not null"`
	Summary   string          `gorm:"type:text"`
	Status    ProjectStatus   `gorm:"type:varchar(20);not null"`
	PIID      string          `gorm:"column:pi_id;not null;index"` // Principal Investigator
	Tags      string          `gorm:"size:500"`
	StartDate datatypes.Date  `gorm:"not null"`
	EndDate   *datatypes.Date `gorm:"default:null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	// Relationships
	PI         User        `gorm:"foreignKey:PIID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT"`
	Milestones []Milestone `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Documents  []Document  `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = "PRJ-" + uuid.NewString()
	}
	return nil
}
