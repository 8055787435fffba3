package service

import (
	"context"

	"github.com/sangkips/residence-api/internal/domain/entity"
	"github.com/sangkips/residence-api/internal/domain/repository"
)

// OperationalReportService reads complaint, security and occupancy statistics
type OperationalReportService struct {
	repo repository.OperationalReportRepository
}

// NewOperationalReportService creates a new operational report service
func NewOperationalReportService(repo repository.OperationalReportRepository) *OperationalReportService {
	return &OperationalReportService{repo: repo}
}

// GetComplaintStatistics returns the complaint total and its category and status buckets
func (s *OperationalReportService) GetComplaintStatistics(ctx context.Context, filter repository.OperationalReportFilter) (*entity.ComplaintStatistics, error) {
	total, err := s.repo.CountComplaints(ctx, filter)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.repo.GroupComplaintsByCategory(ctx, filter)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.repo.GroupComplaintsByStatus(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &entity.ComplaintStatistics{
		TotalComplaints:      total,
		ComplaintsByCategory: nonNilBuckets(byCategory),
		ComplaintsByStatus:   nonNilBuckets(byStatus),
	}, nil
}

// GetSecurityReportStatistics returns the security report total and status buckets
func (s *OperationalReportService) GetSecurityReportStatistics(ctx context.Context, filter repository.OperationalReportFilter) (*entity.SecurityReportStatistics, error) {
	total, err := s.repo.CountSecurityReports(ctx, filter)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.repo.GroupSecurityReportsByStatus(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &entity.SecurityReportStatistics{
		TotalSecurityReports: total,
		ReportsByStatus:      nonNilBuckets(byStatus),
	}, nil
}

// GetUnitAndResidentStatistics returns occupancy figures. It is never filtered.
func (s *OperationalReportService) GetUnitAndResidentStatistics(ctx context.Context) (*entity.UnitResidentStatistics, error) {
	residents, err := s.repo.CountResidents(ctx)
	if err != nil {
		return nil, err
	}

	units, err := s.repo.CountUnits(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.repo.GroupUnitsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &entity.UnitResidentStatistics{
		TotalResidents: residents,
		TotalUnits:     units,
		UnitsByStatus:  nonNilBuckets(byStatus),
	}, nil
}

// nonNilBuckets keeps JSON output as [] instead of null.
func nonNilBuckets(b []entity.StatisticBucket) []entity.StatisticBucket {
	if b == nil {
		return []entity.StatisticBucket{}
	}
	return b
}
