package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sangkips/residence-api/internal/domain/enum"
	"github.com/sangkips/residence-api/pkg/apperror"
	"github.com/sangkips/residence-api/pkg/printer"
	"github.com/sangkips/residence-api/pkg/render"
)

// reportFilename builds the download name, e.g. laporan-operasional-20250131.pdf
func reportFilename(kind enum.ReportKind, now time.Time) string {
	return "laporan-" + kind.Slug() + "-" + now.Format("20060102") + ".pdf"
}

// exportFailure maps a pipeline error to an HTTP error. A render error is the
// caller's fault only when they supplied the template.
func exportFailure(err error, customTemplate bool) *apperror.AppError {
	var renderErr *render.Error
	switch {
	case errors.Is(err, printer.ErrNotReady), errors.Is(err, printer.ErrClosed):
		return apperror.NewServiceUnavailableError("PDF service is not available", err)
	case errors.As(err, &renderErr) && customTemplate:
		return apperror.NewBadRequestError("Template could not be rendered: " + renderErr.Error()).WithCause(err)
	case errors.Is(err, context.DeadlineExceeded):
		return apperror.NewAppError(http.StatusGatewayTimeout, "Report export timed out").WithCause(err)
	default:
		return apperror.NewInternalError("Failed to export report", err)
	}
}
