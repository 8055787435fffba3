package repository

import (
	"context"

	"github.com/sangkips/residence-api/internal/domain/entity"
	domainRepo "github.com/sangkips/residence-api/internal/domain/repository"
	"gorm.io/gorm"
)

type operationalReportRepository struct {
	db *gorm.DB
}

// NewOperationalReportRepository creates a new operational report repository
func NewOperationalReportRepository(db *gorm.DB) domainRepo.OperationalReportRepository {
	return &operationalReportRepository{db: db}
}

func (r *operationalReportRepository) CountComplaints(ctx context.Context, filter domainRepo.OperationalReportFilter) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Complaint{}).
		Scopes(OperationalFilterScope(filter)).
		Count(&count).Error
	return count, err
}

func (r *operationalReportRepository) GroupComplaintsByCategory(ctx context.Context, filter domainRepo.OperationalReportFilter) ([]entity.StatisticBucket, error) {
	return r.group(ctx, &entity.Complaint{}, "category", OperationalFilterScope(filter))
}

func (r *operationalReportRepository) GroupComplaintsByStatus(ctx context.Context, filter domainRepo.OperationalReportFilter) ([]entity.StatisticBucket, error) {
	return r.group(ctx, &entity.Complaint{}, "status", OperationalFilterScope(filter))
}

func (r *operationalReportRepository) CountSecurityReports(ctx context.Context, filter domainRepo.OperationalReportFilter) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.SecurityReport{}).
		Scopes(OperationalFilterScope(filter)).
		Count(&count).Error
	return count, err
}

func (r *operationalReportRepository) GroupSecurityReportsByStatus(ctx context.Context, filter domainRepo.OperationalReportFilter) ([]entity.StatisticBucket, error) {
	return r.group(ctx, &entity.SecurityReport{}, "status", OperationalFilterScope(filter))
}

func (r *operationalReportRepository) CountResidents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Resident{}).Count(&count).Error
	return count, err
}

func (r *operationalReportRepository) CountUnits(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Unit{}).Count(&count).Error
	return count, err
}

func (r *operationalReportRepository) GroupUnitsByStatus(ctx context.Context) ([]entity.StatisticBucket, error) {
	return r.group(ctx, &entity.Unit{}, "status")
}

// group counts rows of model per distinct value of column.
func (r *operationalReportRepository) group(ctx context.Context, model interface{}, column string, scopes ...func(*gorm.DB) *gorm.DB) ([]entity.StatisticBucket, error) {
	var buckets []entity.StatisticBucket
	err := r.db.WithContext(ctx).
		Model(model).
		Scopes(scopes...).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}
