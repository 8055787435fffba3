package repository

import (
	"time"

	domainRepo "github.com/sangkips/residence-api/internal/domain/repository"
	"gorm.io/gorm"
)

// DateRangeScope bounds column to [start, end] inclusive. Nil bounds are skipped.
func DateRangeScope(column string, start, end *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if start != nil {
			db = db.Where(column+" >= ?", *start)
		}
		if end != nil {
			db = db.Where(column+" <= ?", *end)
		}
		return db
	}
}

// OperationalFilterScope applies the creation window and the unit status
// of the record's unit.
func OperationalFilterScope(filter domainRepo.OperationalReportFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = DateRangeScope("created_at", filter.StartDate, filter.EndDate)(db)
		if filter.UnitStatus != nil {
			db = db.Where("unit_id IN (SELECT id FROM units WHERE status = ? AND deleted_at IS NULL)", string(*filter.UnitStatus))
		}
		return db
	}
}

// PaymentFilterScope applies the payment window, status and bill type.
// It expects payments aliased as p and bills joined as b.
func PaymentFilterScope(filter domainRepo.PaymentsReportFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = DateRangeScope("p.payment_date", filter.StartDate, filter.EndDate)(db)
		if filter.Status != nil {
			db = db.Where("p.status = ?", string(*filter.Status))
		}
		if filter.PaymentType != nil {
			db = db.Where("b.type = ?", string(*filter.PaymentType))
		}
		return db
	}
}

// BillFilterScope applies the report window to due dates and the bill type.
// Payment status has no meaning for bills and is ignored. Expects bills aliased as b.
func BillFilterScope(filter domainRepo.PaymentsReportFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = DateRangeScope("b.due_date", filter.StartDate, filter.EndDate)(db)
		if filter.PaymentType != nil {
			db = db.Where("b.type = ?", string(*filter.PaymentType))
		}
		return db
	}
}
