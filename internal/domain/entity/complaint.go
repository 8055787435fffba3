package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/residence-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Complaint is a resident-raised issue.
type Complaint struct {
	ID         uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	ResidentID uuid.UUID              `gorm:"type:uuid;not null;index" json:"resident_id"`
	UnitID     *uuid.UUID             `gorm:"type:uuid;index" json:"unit_id,omitempty"`
	Category   enum.ComplaintCategory `gorm:"size:30;not null;index" json:"category"`
	Status     enum.ComplaintStatus   `gorm:"size:30;not null;default:'OPEN';index" json:"status"`
	Title      string                 `gorm:"size:255;not null" json:"title"`
	CreatedAt  time.Time              `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
	DeletedAt  gorm.DeletedAt         `gorm:"index" json:"-"`
}

func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (Complaint) TableName() string {
	return "complaints"
}

// SecurityReport is an incident logged by security staff.
type SecurityReport struct {
	ID          uuid.UUID                 `gorm:"type:uuid;primary_key" json:"id"`
	UnitID      *uuid.UUID                `gorm:"type:uuid;index" json:"unit_id,omitempty"`
	Status      enum.SecurityReportStatus `gorm:"size:30;not null;default:'REPORTED';index" json:"status"`
	Description string                    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time                 `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
	DeletedAt   gorm.DeletedAt            `gorm:"index" json:"-"`
}

func (s *SecurityReport) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (SecurityReport) TableName() string {
	return "security_reports"
}
