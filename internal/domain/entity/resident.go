package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resident links a user to the unit they live in.
type Resident struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	UnitID    *uuid.UUID     `gorm:"type:uuid;index" json:"unit_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Unit *Unit `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}

func (r *Resident) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (Resident) TableName() string {
	return "residents"
}
