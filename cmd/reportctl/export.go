package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sangkips/residence-api/internal/app"
	"github.com/sangkips/residence-api/internal/application/service"
	"github.com/sangkips/residence-api/internal/config"
	"github.com/sangkips/residence-api/internal/domain/enum"
	"github.com/sangkips/residence-api/internal/presentation/http/dto/request"
	"github.com/sangkips/residence-api/pkg/apperror"
)

const printerStartTimeout = 60 * time.Second

// ExportCmd renders one report to a PDF or HTML file.
type ExportCmd struct {
	start        string
	end          string
	status       string
	paymentType  string
	unitStatus   string
	templatePath string
	out          string
	html         bool
}

func NewExportCmd() *cobra.Command {
	ec := &ExportCmd{}
	cmd := &cobra.Command{
		Use:       "export operational|payments",
		Short:     "Export a report to PDF",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(enum.ReportKindOperational), string(enum.ReportKindPayments)},
		RunE:      ec.run,
	}

	cmd.Flags().StringVar(&ec.start, "start", "", "Start date (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&ec.end, "end", "", "End date, inclusive (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&ec.status, "status", "", "Payment status filter (payments only)")
	cmd.Flags().StringVar(&ec.paymentType, "payment-type", "", "Bill type filter (payments only)")
	cmd.Flags().StringVar(&ec.unitStatus, "unit-status", "", "Unit status filter (operational only)")
	cmd.Flags().StringVar(&ec.templatePath, "template", "", "Handlebars template file used instead of the configured one")
	cmd.Flags().StringVarP(&ec.out, "out", "o", "", `Output file, "-" for stdout (default laporan-<kind>-<date>.pdf)`)
	cmd.Flags().BoolVar(&ec.html, "html", false, "Write the rendered HTML instead of printing a PDF")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	kind := enum.ReportKind(args[0])

	var opts service.ExportOptions
	if ec.templatePath != "" {
		src, err := os.ReadFile(ec.templatePath)
		if err != nil {
			return fmt.Errorf("read template: %w", err)
		}
		opts.Template = string(src)
	}

	cfg := config.Load()
	log, err := app.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	reports, err := app.Open(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := reports.Close(); err != nil {
			log.Warnw("failed to release report resources", "error", err)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if !ec.html {
		if err := reports.StartPrinter(ctx, printerStartTimeout); err != nil {
			return fmt.Errorf("start PDF printer: %w", err)
		}
	}

	data, err := ec.export(ctx, reports, kind, opts)
	if err != nil {
		return err
	}

	return ec.write(cmd.OutOrStdout(), kind, data, time.Now().In(reports.Location))
}

func (ec *ExportCmd) export(ctx context.Context, reports *app.Reports, kind enum.ReportKind, opts service.ExportOptions) ([]byte, error) {
	switch kind {
	case enum.ReportKindOperational:
		filter, fieldErrs := request.OperationalReportQuery{
			StartDate:  ec.start,
			EndDate:    ec.end,
			UnitStatus: ec.unitStatus,
		}.ToFilter(reports.Location)
		if len(fieldErrs) > 0 {
			return nil, flagError(fieldErrs)
		}
		if ec.html {
			html, err := reports.Exporter.RenderOperationalReportHTML(ctx, filter, opts)
			return []byte(html), err
		}
		return reports.Exporter.ExportOperationalReportToPDF(ctx, filter, opts)

	default:
		filter, fieldErrs := request.PaymentsReportQuery{
			StartDate:   ec.start,
			EndDate:     ec.end,
			Status:      ec.status,
			PaymentType: ec.paymentType,
		}.ToFilter(reports.Location)
		if len(fieldErrs) > 0 {
			return nil, flagError(fieldErrs)
		}
		if ec.html {
			html, err := reports.Exporter.RenderPaymentsReportHTML(ctx, filter, opts)
			return []byte(html), err
		}
		return reports.Exporter.ExportPaymentsReportToPDF(ctx, filter, opts)
	}
}

func (ec *ExportCmd) write(stdout io.Writer, kind enum.ReportKind, data []byte, now time.Time) error {
	out := ec.out
	if out == "" {
		ext := ".pdf"
		if ec.html {
			ext = ".html"
		}
		out = fmt.Sprintf("laporan-%s-%s%s", kind.Slug(), now.Format("20060102"), ext)
	}

	if out == "-" {
		_, err := stdout.Write(data)
		return err
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(stdout, "wrote %s (%d bytes)\n", out, len(data))
	return nil
}

func flagError(errs []apperror.FieldError) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Field+": "+e.Message)
	}
	return fmt.Errorf("invalid flags: %s", strings.Join(msgs, "; "))
}
