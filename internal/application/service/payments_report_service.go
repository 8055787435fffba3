package service

import (
	"context"
	"time"

	"github.com/sangkips/residence-api/internal/domain/repository"
)

// PaymentsReportService reads revenue and payment history
type PaymentsReportService struct {
	repo repository.PaymentsReportRepository
	now  func() time.Time
}

// NewPaymentsReportService creates a new payments report service.
// now supplies the instant used for overdue checks; nil means time.Now.
func NewPaymentsReportService(repo repository.PaymentsReportRepository, now func() time.Time) *PaymentsReportService {
	if now == nil {
		now = time.Now
	}
	return &PaymentsReportService{repo: repo, now: now}
}

// GetTotalRevenue sums paid payments and bills overdue as of the service clock
func (s *PaymentsReportService) GetTotalRevenue(ctx context.Context, filter repository.PaymentsReportFilter) (*repository.RevenueSummary, error) {
	return s.GetTotalRevenueAsOf(ctx, filter, s.now())
}

// GetTotalRevenueAsOf is GetTotalRevenue with an explicit overdue cut-off,
// for callers that need the same figure across retries.
func (s *PaymentsReportService) GetTotalRevenueAsOf(ctx context.Context, filter repository.PaymentsReportFilter, asOf time.Time) (*repository.RevenueSummary, error) {
	paid, err := s.repo.SumPaidPayments(ctx, filter)
	if err != nil {
		return nil, err
	}

	overdue, err := s.repo.SumOverdueBills(ctx, filter, asOf)
	if err != nil {
		return nil, err
	}

	return &repository.RevenueSummary{
		TotalPaid:    paid,
		TotalOverdue: overdue,
	}, nil
}

// GetPaymentHistoryByMonth returns payments in the window ordered by payment date
func (s *PaymentsReportService) GetPaymentHistoryByMonth(ctx context.Context, filter repository.PaymentsReportFilter) ([]repository.PaymentRecord, error) {
	records, err := s.repo.FindPaymentHistory(ctx, filter)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []repository.PaymentRecord{}
	}
	return records, nil
}
