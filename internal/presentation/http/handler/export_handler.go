package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/residence-api/internal/application/service"
	"github.com/sangkips/residence-api/internal/domain/enum"
	"github.com/sangkips/residence-api/internal/domain/repository"
	"github.com/sangkips/residence-api/internal/presentation/http/dto/request"
	"github.com/sangkips/residence-api/internal/presentation/http/dto/response"
)

// ReportExporter renders reports to PDF or HTML.
type ReportExporter interface {
	ExportOperationalReportToPDF(ctx context.Context, filter repository.OperationalReportFilter, opts service.ExportOptions) ([]byte, error)
	ExportPaymentsReportToPDF(ctx context.Context, filter repository.PaymentsReportFilter, opts service.ExportOptions) ([]byte, error)
	RenderOperationalReportHTML(ctx context.Context, filter repository.OperationalReportFilter, opts service.ExportOptions) (string, error)
	RenderPaymentsReportHTML(ctx context.Context, filter repository.PaymentsReportFilter, opts service.ExportOptions) (string, error)
}

// ExportHandler serves report downloads and previews
type ExportHandler struct {
	exporter ReportExporter
	loc      *time.Location
	now      func() time.Time
}

// NewExportHandler creates a new export handler
func NewExportHandler(exporter ReportExporter, loc *time.Location) *ExportHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ExportHandler{exporter: exporter, loc: loc, now: time.Now}
}

// ExportOperational handles GET /reports/operational/export
func (h *ExportHandler) ExportOperational(c *gin.Context) {
	var query request.OperationalReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query: "+err.Error())
		return
	}
	h.exportOperational(c, query, service.ExportOptions{})
}

// ExportOperationalCustom handles POST /reports/operational/export
func (h *ExportHandler) ExportOperationalCustom(c *gin.Context) {
	var req request.OperationalExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}
	pdfOpts, fieldErrs := req.PDF.ToOptions()
	if len(fieldErrs) > 0 {
		response.ValidationError(c, fieldErrs)
		return
	}
	h.exportOperational(c, req.OperationalReportQuery, service.ExportOptions{Template: req.Template, PDF: pdfOpts})
}

// PreviewOperational handles GET /reports/operational/preview
func (h *ExportHandler) PreviewOperational(c *gin.Context) {
	var query request.OperationalReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query: "+err.Error())
		return
	}
	filter, fieldErrs := query.ToFilter(h.loc)
	if len(fieldErrs) > 0 {
		response.ValidationError(c, fieldErrs)
		return
	}

	html, err := h.exporter.RenderOperationalReportHTML(c.Request.Context(), filter, service.ExportOptions{})
	if err != nil {
		h.fail(c, err, false)
		return
	}
	response.HTML(c, html)
}

// ExportPayments handles GET /reports/payments/export
func (h *ExportHandler) ExportPayments(c *gin.Context) {
	var query request.PaymentsReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query: "+err.Error())
		return
	}
	h.exportPayments(c, query, service.ExportOptions{})
}

// ExportPaymentsCustom handles POST /reports/payments/export
func (h *ExportHandler) ExportPaymentsCustom(c *gin.Context) {
	var req request.PaymentsExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}
	pdfOpts, fieldErrs := req.PDF.ToOptions()
	if len(fieldErrs) > 0 {
		response.ValidationError(c, fieldErrs)
		return
	}
	h.exportPayments(c, req.PaymentsReportQuery, service.ExportOptions{Template: req.Template, PDF: pdfOpts})
}

// PreviewPayments handles GET /reports/payments/preview
func (h *ExportHandler) PreviewPayments(c *gin.Context) {
	var query request.PaymentsReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query: "+err.Error())
		return
	}
	filter, fieldErrs := query.ToFilter(h.loc)
	if len(fieldErrs) > 0 {
		response.ValidationError(c, fieldErrs)
		return
	}

	html, err := h.exporter.RenderPaymentsReportHTML(c.Request.Context(), filter, service.ExportOptions{})
	if err != nil {
		h.fail(c, err, false)
		return
	}
	response.HTML(c, html)
}

func (h *ExportHandler) exportOperational(c *gin.Context, query request.OperationalReportQuery, opts service.ExportOptions) {
	filter, fieldErrs := query.ToFilter(h.loc)
	if len(fieldErrs) > 0 {
		response.ValidationError(c, fieldErrs)
		return
	}

	pdf, err := h.exporter.ExportOperationalReportToPDF(c.Request.Context(), filter, opts)
	if err != nil {
		h.fail(c, err, opts.Template != "")
		return
	}
	response.Attachment(c, "application/pdf", reportFilename(enum.ReportKindOperational, h.now().In(h.loc)), pdf)
}

func (h *ExportHandler) exportPayments(c *gin.Context, query request.PaymentsReportQuery, opts service.ExportOptions) {
	filter, fieldErrs := query.ToFilter(h.loc)
	if len(fieldErrs) > 0 {
		response.ValidationError(c, fieldErrs)
		return
	}

	pdf, err := h.exporter.ExportPaymentsReportToPDF(c.Request.Context(), filter, opts)
	if err != nil {
		h.fail(c, err, opts.Template != "")
		return
	}
	response.Attachment(c, "application/pdf", reportFilename(enum.ReportKindPayments, h.now().In(h.loc)), pdf)
}

func (h *ExportHandler) fail(c *gin.Context, err error, customTemplate bool) {
	_ = c.Error(err)
	appErr := exportFailure(err, customTemplate)
	if appErr.Code == http.StatusServiceUnavailable {
		c.Header("Retry-After", "30")
	}
	response.Error(c, appErr)
}
