package repository

import (
	"context"
	"time"

	"github.com/sangkips/residence-api/internal/domain/enum"
	domainRepo "github.com/sangkips/residence-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type paymentsReportRepository struct {
	db *gorm.DB
}

// NewPaymentsReportRepository creates a new payments report repository
func NewPaymentsReportRepository(db *gorm.DB) domainRepo.PaymentsReportRepository {
	return &paymentsReportRepository{db: db}
}

type sumResult struct {
	Total decimal.Decimal
}

// SumPaidPayments always counts PAID payments; a status in the filter is ignored.
func (r *paymentsReportRepository) SumPaidPayments(ctx context.Context, filter domainRepo.PaymentsReportFilter) (decimal.Decimal, error) {
	filter.Status = nil

	var res sumResult
	err := r.db.WithContext(ctx).
		Table("payments AS p").
		Select("COALESCE(SUM(p.amount), 0) AS total").
		Joins("LEFT JOIN bills b ON b.id = p.bill_id").
		Where("p.deleted_at IS NULL").
		Where("p.status = ?", string(enum.PaymentStatusPaid)).
		Scopes(PaymentFilterScope(filter)).
		Scan(&res).Error
	if err != nil {
		return decimal.Zero, err
	}
	return res.Total, nil
}

func (r *paymentsReportRepository) SumOverdueBills(ctx context.Context, filter domainRepo.PaymentsReportFilter, asOf time.Time) (decimal.Decimal, error) {
	var res sumResult
	err := r.db.WithContext(ctx).
		Table("bills AS b").
		Select("COALESCE(SUM(b.amount), 0) AS total").
		Where("b.deleted_at IS NULL").
		Where("b.is_paid = ?", false).
		Where("b.due_date < ?", asOf).
		Scopes(BillFilterScope(filter)).
		Scan(&res).Error
	if err != nil {
		return decimal.Zero, err
	}
	return res.Total, nil
}

func (r *paymentsReportRepository) FindPaymentHistory(ctx context.Context, filter domainRepo.PaymentsReportFilter) ([]domainRepo.PaymentRecord, error) {
	var records []domainRepo.PaymentRecord
	err := r.db.WithContext(ctx).
		Table("payments AS p").
		Select(`p.payment_date, p.amount, p.payment_method, p.status,
			u.full_name AS resident_name,
			un.number AS unit_number,
			b.type AS bill_type,
			b.due_date AS bill_due_date`).
		Joins("LEFT JOIN residents r ON r.id = p.resident_id").
		Joins("LEFT JOIN users u ON u.id = r.user_id").
		Joins("LEFT JOIN units un ON un.id = r.unit_id").
		Joins("LEFT JOIN bills b ON b.id = p.bill_id").
		Where("p.deleted_at IS NULL").
		Scopes(PaymentFilterScope(filter)).
		Order("p.payment_date ASC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
