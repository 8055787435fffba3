package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/residence-api/internal/domain/entity"
	"github.com/sangkips/residence-api/internal/domain/enum"
	"github.com/sangkips/residence-api/internal/domain/repository"
	"github.com/sangkips/residence-api/pkg/logger"
	"github.com/sangkips/residence-api/pkg/printer"
	"github.com/sangkips/residence-api/pkg/render"
)

type mockOperationalReader struct{ mock.Mock }

func (m *mockOperationalReader) GetComplaintStatistics(ctx context.Context, f repository.OperationalReportFilter) (*entity.ComplaintStatistics, error) {
	args := m.Called(ctx, f)
	stats, _ := args.Get(0).(*entity.ComplaintStatistics)
	return stats, args.Error(1)
}

func (m *mockOperationalReader) GetSecurityReportStatistics(ctx context.Context, f repository.OperationalReportFilter) (*entity.SecurityReportStatistics, error) {
	args := m.Called(ctx, f)
	stats, _ := args.Get(0).(*entity.SecurityReportStatistics)
	return stats, args.Error(1)
}

func (m *mockOperationalReader) GetUnitAndResidentStatistics(ctx context.Context) (*entity.UnitResidentStatistics, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*entity.UnitResidentStatistics)
	return stats, args.Error(1)
}

type mockPaymentsReader struct{ mock.Mock }

func (m *mockPaymentsReader) GetTotalRevenue(ctx context.Context, f repository.PaymentsReportFilter) (*repository.RevenueSummary, error) {
	args := m.Called(ctx, f)
	sum, _ := args.Get(0).(*repository.RevenueSummary)
	return sum, args.Error(1)
}

func (m *mockPaymentsReader) GetPaymentHistoryByMonth(ctx context.Context, f repository.PaymentsReportFilter) ([]repository.PaymentRecord, error) {
	args := m.Called(ctx, f)
	records, _ := args.Get(0).([]repository.PaymentRecord)
	return records, args.Error(1)
}

// stubPrinter records the HTML it receives.
type stubPrinter struct {
	html  string
	opts  *printer.Options
	err   error
	calls atomic.Int32
}

func (p *stubPrinter) Print(ctx context.Context, html string, opts *printer.Options) ([]byte, error) {
	p.calls.Add(1)
	p.html = html
	p.opts = opts
	if p.err != nil {
		return nil, p.err
	}
	return []byte("%PDF-1.4\n%stub\n"), nil
}

type exportFixture struct {
	operational *mockOperationalReader
	payments    *mockPaymentsReader
	printer     *stubPrinter
	svc         *ExportService
}

func newExportFixture(t *testing.T) *exportFixture {
	t.Helper()
	f := &exportFixture{
		operational: &mockOperationalReader{},
		payments:    &mockPaymentsReader{},
		printer:     &stubPrinter{},
	}
	f.svc = NewExportService(ExportServiceConfig{
		Operational: f.operational,
		Payments:    f.payments,
		Builder:     newTestBuilder(),
		Templates:   render.NewResolver(t.TempDir(), logger.Nop()),
		Renderer:    render.NewEngine(),
		Printer:     f.printer,
		Timeout:     5 * time.Second,
		Log:         logger.Nop(),
	})
	return f
}

func (f *exportFixture) expectOperational(filter repository.OperationalReportFilter) {
	f.operational.On("GetComplaintStatistics", mock.Anything, filter).Return(&entity.ComplaintStatistics{
		TotalComplaints: 10,
		ComplaintsByCategory: []entity.StatisticBucket{
			{Key: "MAINTENANCE", Count: 6},
			{Key: "NOISE", Count: 4},
		},
		ComplaintsByStatus: []entity.StatisticBucket{{Key: "OPEN", Count: 10}},
	}, nil)
	f.operational.On("GetSecurityReportStatistics", mock.Anything, filter).Return(&entity.SecurityReportStatistics{
		TotalSecurityReports: 2,
		ReportsByStatus:      []entity.StatisticBucket{{Key: "RESOLVED", Count: 2}},
	}, nil)
	f.operational.On("GetUnitAndResidentStatistics", mock.Anything).Return(&entity.UnitResidentStatistics{
		TotalResidents: 8,
		TotalUnits:     10,
		UnitsByStatus:  []entity.StatisticBucket{{Key: "OCCUPIED", Count: 8}, {Key: "VACANT", Count: 2}},
	}, nil)
}

func TestExportOperationalReportToPDF(t *testing.T) {
	f := newExportFixture(t)
	filter := repository.OperationalReportFilter{StartDate: date(2025, 1, 1), EndDate: date(2025, 1, 31)}
	f.expectOperational(filter)

	pdf, err := f.svc.ExportOperationalReportToPDF(context.Background(), filter, ExportOptions{})

	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
	assert.Contains(t, f.printer.html, "<!DOCTYPE html>")
	assert.Contains(t, f.printer.html, "Laporan Operasional")
	assert.Contains(t, f.printer.html, "MAINTENANCE")
	assert.Contains(t, f.printer.html, "60%")
	assert.Nil(t, f.printer.opts)
	f.operational.AssertExpectations(t)
}

func TestExportPaymentsReportToPDF(t *testing.T) {
	f := newExportFixture(t)
	filter := repository.PaymentsReportFilter{}
	f.payments.On("GetTotalRevenue", mock.Anything, filter).Return(&repository.RevenueSummary{
		TotalPaid:    decimal.NewFromInt(1_500_000),
		TotalOverdue: decimal.NewFromInt(250_000),
	}, nil)
	f.payments.On("GetPaymentHistoryByMonth", mock.Anything, filter).Return([]repository.PaymentRecord{{
		PaymentDate: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(1_500_000),
		Status:      "PAID",
	}}, nil)

	on := true
	landscape := printer.Options{Landscape: &on}
	pdf, err := f.svc.ExportPaymentsReportToPDF(context.Background(), filter, ExportOptions{PDF: &landscape})

	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Contains(t, f.printer.html, "Laporan Pembayaran")
	assert.Contains(t, f.printer.html, "Rp 1.500.000")
	assert.Contains(t, f.printer.html, "86%")
	require.NotNil(t, f.printer.opts)
	assert.True(t, f.printer.opts.IsLandscape())
	f.payments.AssertExpectations(t)
}

func TestExport_TemplateOverride(t *testing.T) {
	f := newExportFixture(t)
	f.expectOperational(repository.OperationalReportFilter{})

	html, err := f.svc.RenderOperationalReportHTML(context.Background(), repository.OperationalReportFilter{}, ExportOptions{
		Template: `<p>{{title}}: {{totalComplaints}} / {{occupancyRate}}%</p>`,
	})

	require.NoError(t, err)
	assert.Equal(t, "<p>Laporan Operasional: 10 / 80%</p>", html)
	assert.Zero(t, f.printer.calls.Load())
}

func TestExport_ReaderErrorAbortsPipeline(t *testing.T) {
	f := newExportFixture(t)
	dbErr := errors.New("connection refused")
	f.operational.On("GetComplaintStatistics", mock.Anything, mock.Anything).Return(nil, dbErr)
	f.operational.On("GetSecurityReportStatistics", mock.Anything, mock.Anything).
		Return(&entity.SecurityReportStatistics{}, nil).Maybe()
	f.operational.On("GetUnitAndResidentStatistics", mock.Anything).
		Return(&entity.UnitResidentStatistics{}, nil).Maybe()

	pdf, err := f.svc.ExportOperationalReportToPDF(context.Background(), repository.OperationalReportFilter{}, ExportOptions{})

	require.Error(t, err)
	assert.Nil(t, pdf)
	assert.ErrorIs(t, err, dbErr)
	assert.EqualError(t, err, "failed to export operational report: connection refused")

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, enum.ReportKindOperational, exportErr.Kind)
	assert.Zero(t, f.printer.calls.Load())
}

func TestExport_RenderErrorIsWrapped(t *testing.T) {
	f := newExportFixture(t)
	f.payments.On("GetTotalRevenue", mock.Anything, mock.Anything).Return(&repository.RevenueSummary{}, nil)
	f.payments.On("GetPaymentHistoryByMonth", mock.Anything, mock.Anything).Return([]repository.PaymentRecord{}, nil)

	_, err := f.svc.ExportPaymentsReportToPDF(context.Background(), repository.PaymentsReportFilter{}, ExportOptions{
		Template: "{{#each paymentHistory}}",
	})

	require.Error(t, err)
	var renderErr *render.Error
	assert.ErrorAs(t, err, &renderErr)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to export payments report: "))
	assert.Zero(t, f.printer.calls.Load())
}

func TestExport_PrintErrorIsWrapped(t *testing.T) {
	f := newExportFixture(t)
	f.expectOperational(repository.OperationalReportFilter{})
	f.printer.err = printer.ErrClosed

	_, err := f.svc.ExportOperationalReportToPDF(context.Background(), repository.OperationalReportFilter{}, ExportOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, printer.ErrClosed)
	assert.Contains(t, err.Error(), "failed to export operational report")
}
