// Package app wires the report stack shared by the API server and reportctl.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sangkips/residence-api/internal/application/service"
	"github.com/sangkips/residence-api/internal/config"
	"github.com/sangkips/residence-api/internal/infrastructure/database"
	"github.com/sangkips/residence-api/internal/infrastructure/repository"
	"github.com/sangkips/residence-api/pkg/locale"
	"github.com/sangkips/residence-api/pkg/logger"
	"github.com/sangkips/residence-api/pkg/printer"
	"github.com/sangkips/residence-api/pkg/render"
)

// Reports holds the report services and the resources they own.
type Reports struct {
	DB          *gorm.DB
	Location    *time.Location
	Operational *service.OperationalReportService
	Payments    *service.PaymentsReportService
	Exporter    *service.ExportService
	Printer     *printer.PDFPrinter
}

// NewLogger builds the process logger from configuration.
func NewLogger(cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log.With("service", cfg.App.Name), nil
}

// PDFDefaults converts the PDF config section to printer options.
func PDFDefaults(cfg config.PDFConfig) printer.Options {
	background, landscape := cfg.PrintBackground, cfg.Landscape
	return printer.Merge(printer.DefaultOptions(), &printer.Options{
		Format:          cfg.Format,
		PrintBackground: &background,
		Landscape:       &landscape,
		Margin: printer.Margin{
			Top:    cfg.Margin,
			Right:  cfg.Margin,
			Bottom: cfg.Margin,
			Left:   cfg.Margin,
		},
	})
}

// Open connects to the database, migrates it and builds the report stack.
// The printer is created but not started.
func Open(cfg *config.Config, log *logger.Logger) (*Reports, error) {
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug, log)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db, log); err != nil {
		_ = database.Close(db)
		return nil, err
	}

	reports, err := New(db, cfg, log)
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return reports, nil
}

// New builds the report stack on an open database.
func New(db *gorm.DB, cfg *config.Config, log *logger.Logger) (*Reports, error) {
	loc, err := locale.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		return nil, err
	}

	defaults := PDFDefaults(cfg.PDF)
	if err := defaults.Validate(); err != nil {
		return nil, fmt.Errorf("invalid PDF settings: %w", err)
	}

	operational := service.NewOperationalReportService(repository.NewOperationalReportRepository(db))
	payments := service.NewPaymentsReportService(repository.NewPaymentsReportRepository(db), time.Now)

	pdf := printer.NewPDFPrinter(printer.NewChromeLauncher(cfg.PDF.ChromePath), printer.Config{
		ContentTimeout: cfg.PDF.ContentTimeout,
		Defaults:       defaults,
	}, log)

	exporter := service.NewExportService(service.ExportServiceConfig{
		Operational: operational,
		Payments:    payments,
		Builder:     service.NewReportBuilder(locale.New(loc), time.Now),
		Templates:   render.NewResolver(cfg.Report.TemplatesDir, log),
		Renderer:    render.NewEngine(),
		Printer:     pdf,
		Timeout:     cfg.Report.ExportTimeout,
		Log:         log,
	})

	return &Reports{
		DB:          db,
		Location:    loc,
		Operational: operational,
		Payments:    payments,
		Exporter:    exporter,
		Printer:     pdf,
	}, nil
}

// StartPrinter launches the browser, bounded by timeout.
func (r *Reports) StartPrinter(ctx context.Context, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return r.Printer.Start(ctx)
}

// Close stops the printer and releases the database pool.
func (r *Reports) Close() error {
	return errors.Join(r.Printer.Stop(), database.Close(r.DB))
}
