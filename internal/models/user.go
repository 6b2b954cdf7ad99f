package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:50"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	FullName     string    `gorm:"not null"`
	Role         Role      `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time `gorm:"not null"`

	// Relationships. Users are referenced, never owned: deleting a
	// user must not take project trees with it.
	Projects   []Project   `gorm:"foreignKey:PIID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT"`
	Milestones []Milestone `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT"`
	Documents  []Document  `gorm:"foreignKey:UploadedByID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = "USR-" + uuid.NewString()
	}
	return nil
}
