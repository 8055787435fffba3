package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/residence-api/internal/application/service"
	"github.com/sangkips/residence-api/internal/presentation/http/dto/request"
	"github.com/sangkips/residence-api/internal/presentation/http/dto/response"
	"github.com/sangkips/residence-api/pkg/apperror"
)

// ReportHandler serves report statistics as JSON
type ReportHandler struct {
	operational service.OperationalReader
	payments    service.PaymentsReader
	loc         *time.Location
}

// NewReportHandler creates a new report handler. loc is used to read bare dates.
func NewReportHandler(operational service.OperationalReader, payments service.PaymentsReader, loc *time.Location) *ReportHandler {
	return &ReportHandler{operational: operational, payments: payments, loc: loc}
}

// GetComplaintStats handles GET /reports/operational/complaints/stats
func (h *ReportHandler) GetComplaintStats(c *gin.Context) {
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

	stats, err := h.operational.GetComplaintStatistics(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, "Complaint statistics retrieved successfully", stats)
}

// GetSecurityReportStats handles GET /reports/operational/security-reports/stats
func (h *ReportHandler) GetSecurityReportStats(c *gin.Context) {
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

	stats, err := h.operational.GetSecurityReportStatistics(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, "Security report statistics retrieved successfully", stats)
}

// GetUnitResidentStats handles GET /reports/operational/units-residents/stats
func (h *ReportHandler) GetUnitResidentStats(c *gin.Context) {
	stats, err := h.operational.GetUnitAndResidentStatistics(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, "Unit and resident statistics retrieved successfully", stats)
}

// GetRevenue handles GET /reports/payments/revenue
func (h *ReportHandler) GetRevenue(c *gin.Context) {
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

	revenue, err := h.payments.GetTotalRevenue(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, "Revenue retrieved successfully", revenue)
}

// GetPaymentHistory handles GET /reports/payments/history
func (h *ReportHandler) GetPaymentHistory(c *gin.Context) {
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

	history, err := h.payments.GetPaymentHistoryByMonth(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, "Payment history retrieved successfully", history)
}

func (h *ReportHandler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	response.Error(c, apperror.NewInternalError("Failed to load report statistics", err))
}
