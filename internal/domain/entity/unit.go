package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/residence-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Unit is a dwelling in the community.
type Unit struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Number    string          `gorm:"size:50;not null;uniqueIndex:idx_unit_block_number" json:"number"`
	Block     string          `gorm:"size:50;uniqueIndex:idx_unit_block_number" json:"block"`
	Status    enum.UnitStatus `gorm:"size:20;not null;default:'VACANT';index" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (u *Unit) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (Unit) TableName() string {
	return "units"
}
