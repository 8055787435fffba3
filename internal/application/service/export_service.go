package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/sangkips/residence-api/internal/domain/entity"
	"github.com/sangkips/residence-api/internal/domain/enum"
	"github.com/sangkips/residence-api/internal/domain/repository"
	"github.com/sangkips/residence-api/pkg/logger"
	"github.com/sangkips/residence-api/pkg/printer"
)

var tracer = otel.Tracer("github.com/sangkips/residence-api/internal/application/service")

// OperationalReader supplies operational statistics.
type OperationalReader interface {
	GetComplaintStatistics(ctx context.Context, filter repository.OperationalReportFilter) (*entity.ComplaintStatistics, error)
	GetSecurityReportStatistics(ctx context.Context, filter repository.OperationalReportFilter) (*entity.SecurityReportStatistics, error)
	GetUnitAndResidentStatistics(ctx context.Context) (*entity.UnitResidentStatistics, error)
}

// PaymentsReader supplies revenue and payment history.
type PaymentsReader interface {
	GetTotalRevenue(ctx context.Context, filter repository.PaymentsReportFilter) (*repository.RevenueSummary, error)
	GetPaymentHistoryByMonth(ctx context.Context, filter repository.PaymentsReportFilter) ([]repository.PaymentRecord, error)
}

// TemplateResolver yields template source by name. It never fails.
type TemplateResolver interface {
	Resolve(ctx context.Context, name string) string
}

// Renderer merges report data into template source.
type Renderer interface {
	Render(source string, data interface{}) (string, error)
}

// PDFPrinter converts HTML to a PDF document.
type PDFPrinter interface {
	Print(ctx context.Context, html string, opts *printer.Options) ([]byte, error)
}

// ExportOptions tunes a single export. The zero value uses the stored
// template and the printer defaults.
type ExportOptions struct {
	// Template is raw template source used instead of the resolved one.
	Template string
	PDF      *printer.Options
}

// ExportError is returned by every export and preview call.
type ExportError struct {
	Kind enum.ReportKind
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to export %s report: %v", e.Kind, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// ExportService runs the report pipeline: read, assemble, render, print.
type ExportService struct {
	operational OperationalReader
	payments    PaymentsReader
	builder     *ReportBuilder
	templates   TemplateResolver
	renderer    Renderer
	printer     PDFPrinter
	timeout     time.Duration
	log         *logger.Logger
}

// ExportServiceConfig groups the export service collaborators.
type ExportServiceConfig struct {
	Operational OperationalReader
	Payments    PaymentsReader
	Builder     *ReportBuilder
	Templates   TemplateResolver
	Renderer    Renderer
	Printer     PDFPrinter
	// Timeout bounds a whole export call. Zero disables it.
	Timeout time.Duration
	Log     *logger.Logger
}

// NewExportService creates a new export service.
func NewExportService(cfg ExportServiceConfig) *ExportService {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	builder := cfg.Builder
	if builder == nil {
		builder = NewReportBuilder(nil, nil)
	}
	return &ExportService{
		operational: cfg.Operational,
		payments:    cfg.Payments,
		builder:     builder,
		templates:   cfg.Templates,
		renderer:    cfg.Renderer,
		printer:     cfg.Printer,
		timeout:     cfg.Timeout,
		log:         log.WithComponent("report_export"),
	}
}

// ExportOperationalReportToPDF builds the operational report and prints it.
func (s *ExportService) ExportOperationalReportToPDF(ctx context.Context, filter repository.OperationalReportFilter, opts ExportOptions) ([]byte, error) {
	return run(ctx, s, enum.ReportKindOperational, "pdf", func(ctx context.Context) ([]byte, error) {
		html, err := s.operationalHTML(ctx, filter, opts.Template)
		if err != nil {
			return nil, err
		}
		return s.print(ctx, html, opts.PDF)
	})
}

// ExportPaymentsReportToPDF builds the payments report and prints it.
func (s *ExportService) ExportPaymentsReportToPDF(ctx context.Context, filter repository.PaymentsReportFilter, opts ExportOptions) ([]byte, error) {
	return run(ctx, s, enum.ReportKindPayments, "pdf", func(ctx context.Context) ([]byte, error) {
		html, err := s.paymentsHTML(ctx, filter, opts.Template)
		if err != nil {
			return nil, err
		}
		return s.print(ctx, html, opts.PDF)
	})
}

// RenderOperationalReportHTML returns the rendered operational report without printing it.
func (s *ExportService) RenderOperationalReportHTML(ctx context.Context, filter repository.OperationalReportFilter, opts ExportOptions) (string, error) {
	return run(ctx, s, enum.ReportKindOperational, "html", func(ctx context.Context) (string, error) {
		return s.operationalHTML(ctx, filter, opts.Template)
	})
}

// RenderPaymentsReportHTML returns the rendered payments report without printing it.
func (s *ExportService) RenderPaymentsReportHTML(ctx context.Context, filter repository.PaymentsReportFilter, opts ExportOptions) (string, error) {
	return run(ctx, s, enum.ReportKindPayments, "html", func(ctx context.Context) (string, error) {
		return s.paymentsHTML(ctx, filter, opts.Template)
	})
}

// run is the single failure boundary of the pipeline. It bounds the call,
// traces it and turns any failure into an *ExportError.
func run[T any](ctx context.Context, s *ExportService, kind enum.ReportKind, format string, fn func(context.Context) (T, error)) (T, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	ctx, span := tracer.Start(ctx, "report.export", trace.WithAttributes(
		attribute.String("report.kind", kind.String()),
		attribute.String("report.format", format),
	))
	defer span.End()

	started := time.Now()
	out, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.WithContext(ctx).Errorw("report export failed",
			"kind", kind,
			"format", format,
			"duration", time.Since(started),
			"error", err,
		)
		var zero T
		return zero, &ExportError{Kind: kind, Err: err}
	}

	s.log.WithContext(ctx).Infow("report exported",
		"kind", kind,
		"format", format,
		"duration", time.Since(started),
	)
	return out, nil
}

func (s *ExportService) operationalHTML(ctx context.Context, filter repository.OperationalReportFilter, override string) (string, error) {
	var (
		complaints *entity.ComplaintStatistics
		security   *entity.SecurityReportStatistics
		units      *entity.UnitResidentStatistics
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		complaints, err = s.operational.GetComplaintStatistics(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		security, err = s.operational.GetSecurityReportStatistics(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		units, err = s.operational.GetUnitAndResidentStatistics(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}
	trace.SpanFromContext(ctx).AddEvent("statistics loaded")

	data := s.builder.BuildOperational(filter, complaints, security, units)
	return s.render(ctx, enum.ReportKindOperational, override, data)
}

func (s *ExportService) paymentsHTML(ctx context.Context, filter repository.PaymentsReportFilter, override string) (string, error) {
	var (
		revenue *repository.RevenueSummary
		history []repository.PaymentRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		revenue, err = s.payments.GetTotalRevenue(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		history, err = s.payments.GetPaymentHistoryByMonth(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}
	trace.SpanFromContext(ctx).AddEvent("statistics loaded")

	data := s.builder.BuildPayments(filter, revenue, history)
	return s.render(ctx, enum.ReportKindPayments, override, data)
}

func (s *ExportService) render(ctx context.Context, kind enum.ReportKind, override string, data interface{}) (string, error) {
	source := override
	if source == "" {
		source = s.templates.Resolve(ctx, kind.TemplateName())
	}

	html, err := s.renderer.Render(source, data)
	if err != nil {
		return "", err
	}
	trace.SpanFromContext(ctx).AddEvent("template rendered", trace.WithAttributes(
		attribute.Int("html.bytes", len(html)),
	))
	return html, nil
}

func (s *ExportService) print(ctx context.Context, html string, opts *printer.Options) ([]byte, error) {
	pdf, err := s.printer.Print(ctx, html, opts)
	if err != nil {
		return nil, err
	}
	trace.SpanFromContext(ctx).AddEvent("pdf printed", trace.WithAttributes(
		attribute.Int("pdf.bytes", len(pdf)),
	))
	return pdf, nil
}
