package repository

import (
	"context"
	"time"

	"github.com/sangkips/residence-api/internal/domain/entity"
	"github.com/sangkips/residence-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// OperationalReportFilter narrows operational statistics. Nil fields impose no constraint.
type OperationalReportFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	UnitStatus *enum.UnitStatus
}

// PaymentsReportFilter narrows financial statistics. Nil fields impose no constraint.
type PaymentsReportFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *enum.PaymentStatus
	PaymentType *enum.BillType
}

// RevenueSummary holds independently aggregated paid and overdue sums.
type RevenueSummary struct {
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	TotalOverdue decimal.Decimal `json:"totalOverdue"`
}

// PaymentRecord is one payment joined with its resident, unit and bill.
// Joined columns are nil when the relation is missing.
type PaymentRecord struct {
	PaymentDate   time.Time       `json:"paymentDate"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	ResidentName  *string         `json:"residentName"`
	UnitNumber    *string         `json:"unitNumber"`
	BillType      *string         `json:"billType"`
	BillDueDate   *time.Time      `json:"billDueDate"`
}

// OperationalReportRepository defines aggregate queries over complaints,
// security reports, units and residents.
type OperationalReportRepository interface {
	// CountComplaints counts complaints created inside the filter window
	CountComplaints(ctx context.Context, filter OperationalReportFilter) (int64, error)

	// GroupComplaintsByCategory returns (category, count) buckets
	GroupComplaintsByCategory(ctx context.Context, filter OperationalReportFilter) ([]entity.StatisticBucket, error)

	// GroupComplaintsByStatus returns (status, count) buckets
	GroupComplaintsByStatus(ctx context.Context, filter OperationalReportFilter) ([]entity.StatisticBucket, error)

	CountSecurityReports(ctx context.Context, filter OperationalReportFilter) (int64, error)
	GroupSecurityReportsByStatus(ctx context.Context, filter OperationalReportFilter) ([]entity.StatisticBucket, error)

	CountResidents(ctx context.Context) (int64, error)
	CountUnits(ctx context.Context) (int64, error)
	GroupUnitsByStatus(ctx context.Context) ([]entity.StatisticBucket, error)
}

// PaymentsReportRepository defines financial aggregate queries
type PaymentsReportRepository interface {
	// SumPaidPayments sums payments with status PAID
	SumPaidPayments(ctx context.Context, filter PaymentsReportFilter) (decimal.Decimal, error)

	// SumOverdueBills sums unpaid bills whose due date is before asOf
	SumOverdueBills(ctx context.Context, filter PaymentsReportFilter, asOf time.Time) (decimal.Decimal, error)

	// FindPaymentHistory returns payments ordered by payment date ascending
	FindPaymentHistory(ctx context.Context, filter PaymentsReportFilter) ([]PaymentRecord, error)
}
