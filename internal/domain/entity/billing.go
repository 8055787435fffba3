package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/residence-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bill is an amount owed by a resident.
type Bill struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ResidentID uuid.UUID       `gorm:"type:uuid;not null;index" json:"resident_id"`
	UnitID     *uuid.UUID      `gorm:"type:uuid;index" json:"unit_id,omitempty"`
	Type       enum.BillType   `gorm:"size:30;not null;index" json:"type"`
	Amount     decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"amount"`
	DueDate    time.Time       `gorm:"not null;index" json:"due_date"`
	IsPaid     bool            `gorm:"not null;default:false;index" json:"is_paid"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (Bill) TableName() string {
	return "bills"
}

// Payment settles a bill, fully or partially.
type Payment struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ResidentID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"resident_id"`
	BillID        *uuid.UUID         `gorm:"type:uuid;index" json:"bill_id,omitempty"`
	Amount        decimal.Decimal    `gorm:"type:numeric(15,2);not null" json:"amount"`
	PaymentDate   time.Time          `gorm:"not null;index" json:"payment_date"`
	PaymentMethod string             `gorm:"size:50" json:"payment_method"`
	Status        enum.PaymentStatus `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Resident Resident `gorm:"foreignKey:ResidentID" json:"-"`
	Bill     *Bill    `gorm:"foreignKey:BillID" json:"-"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Payment) TableName() string {
	return "payments"
}
