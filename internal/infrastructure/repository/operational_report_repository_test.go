package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/residence-api/internal/domain/entity"
	"github.com/sangkips/residence-api/internal/domain/enum"
	domainRepo "github.com/sangkips/residence-api/internal/domain/repository"
)

func TestOperationalReportRepository_CountComplaintsUnfiltered(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOperationalReportRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "complaints" WHERE "complaints"\."deleted_at" IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))

	n, err := repo.CountComplaints(context.Background(), domainRepo.OperationalReportFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 10, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationalReportRepository_CountComplaintsFiltered(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOperationalReportRepository(db)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)
	status := enum.UnitStatusOccupied

	mock.ExpectQuery(`SELECT count\(\*\) FROM "complaints" WHERE .*created_at >= \$1.*created_at <= \$2.*unit_id IN \(SELECT id FROM units WHERE status = \$3`).
		WithArgs(start, end, "OCCUPIED").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.CountComplaints(context.Background(), domainRepo.OperationalReportFilter{
		StartDate:  &start,
		EndDate:    &end,
		UnitStatus: &status,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationalReportRepository_OnlyStartBound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOperationalReportRepository(db)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "security_reports" WHERE created_at >= \$1 AND "security_reports"\."deleted_at" IS NULL`).
		WithArgs(start).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountSecurityReports(context.Background(), domainRepo.OperationalReportFilter{StartDate: &start})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationalReportRepository_GroupComplaintsByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOperationalReportRepository(db)

	mock.ExpectQuery(`SELECT category AS key, COUNT\(\*\) AS count FROM "complaints" .*GROUP BY "category"`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "count"}).
			AddRow("MAINTENANCE", 6).
			AddRow("NOISE", 4))

	buckets, err := repo.GroupComplaintsByCategory(context.Background(), domainRepo.OperationalReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, []entity.StatisticBucket{
		{Key: "MAINTENANCE", Count: 6},
		{Key: "NOISE", Count: 4},
	}, buckets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationalReportRepository_GroupUnitsByStatusIgnoresFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOperationalReportRepository(db)

	mock.ExpectQuery(`SELECT status AS key, COUNT\(\*\) AS count FROM "units" WHERE "units"\."deleted_at" IS NULL GROUP BY "status"`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "count"}).AddRow("OCCUPIED", 8).AddRow("VACANT", 2))

	buckets, err := repo.GroupUnitsByStatus(context.Background())
	require.NoError(t, err)
	assert.Len(t, buckets, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationalReportRepository_ErrorPropagates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOperationalReportRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "residents"`).WillReturnError(errQuery)

	_, err := repo.CountResidents(context.Background())
	assert.ErrorIs(t, err, errQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
