package request

import (
	"strings"
	"time"

	"github.com/sangkips/residence-api/internal/domain/enum"
	"github.com/sangkips/residence-api/internal/domain/repository"
	"github.com/sangkips/residence-api/pkg/apperror"
	"github.com/sangkips/residence-api/pkg/printer"
)

const dateOnly = "2006-01-02"

// OperationalReportQuery represents operational report filter parameters
type OperationalReportQuery struct {
	StartDate  string `form:"startDate" json:"startDate"`
	EndDate    string `form:"endDate" json:"endDate"`
	UnitStatus string `form:"unitStatus" json:"unitStatus"`
}

// PaymentsReportQuery represents payments report filter parameters
type PaymentsReportQuery struct {
	StartDate   string `form:"startDate" json:"startDate"`
	EndDate     string `form:"endDate" json:"endDate"`
	Status      string `form:"status" json:"status"`
	PaymentType string `form:"paymentType" json:"paymentType"`
}

// PDFOptionsRequest overrides page options for a single export
type PDFOptionsRequest struct {
	Format          string `json:"format" binding:"omitempty,max=16"`
	PrintBackground *bool  `json:"printBackground"`
	Landscape       *bool  `json:"landscape"`
	MarginTop       string `json:"marginTop"`
	MarginRight     string `json:"marginRight"`
	MarginBottom    string `json:"marginBottom"`
	MarginLeft      string `json:"marginLeft"`
}

// OperationalExportRequest is the body of POST /reports/operational/export
type OperationalExportRequest struct {
	OperationalReportQuery
	Template string             `json:"template" binding:"omitempty,max=1048576"`
	PDF      *PDFOptionsRequest `json:"pdf"`
}

// PaymentsExportRequest is the body of POST /reports/payments/export
type PaymentsExportRequest struct {
	PaymentsReportQuery
	Template string             `json:"template" binding:"omitempty,max=1048576"`
	PDF      *PDFOptionsRequest `json:"pdf"`
}

// ToFilter validates the query and converts it to a repository filter.
// Dates without a time part are read in loc; an end date covers its whole day.
func (q OperationalReportQuery) ToFilter(loc *time.Location) (repository.OperationalReportFilter, []apperror.FieldError) {
	var (
		filter repository.OperationalReportFilter
		errs   []apperror.FieldError
	)

	filter.StartDate, filter.EndDate, errs = parseRange(q.StartDate, q.EndDate, loc)

	if q.UnitStatus != "" {
		status, ok := enum.ParseUnitStatus(q.UnitStatus)
		if !ok {
			errs = append(errs, apperror.FieldError{Field: "unitStatus", Message: "Status unit tidak valid."})
		} else {
			filter.UnitStatus = &status
		}
	}

	return filter, errs
}

// ToFilter validates the query and converts it to a repository filter.
func (q PaymentsReportQuery) ToFilter(loc *time.Location) (repository.PaymentsReportFilter, []apperror.FieldError) {
	var (
		filter repository.PaymentsReportFilter
		errs   []apperror.FieldError
	)

	filter.StartDate, filter.EndDate, errs = parseRange(q.StartDate, q.EndDate, loc)

	if q.Status != "" {
		status, ok := enum.ParsePaymentStatus(q.Status)
		if !ok {
			errs = append(errs, apperror.FieldError{Field: "status", Message: "Status pembayaran tidak valid."})
		} else {
			filter.Status = &status
		}
	}

	if q.PaymentType != "" {
		billType, ok := enum.ParseBillType(q.PaymentType)
		if !ok {
			errs = append(errs, apperror.FieldError{Field: "paymentType", Message: "Tipe pembayaran tidak valid."})
		} else {
			filter.PaymentType = &billType
		}
	}

	return filter, errs
}

// ToOptions converts the request to printer options. A nil request means defaults.
func (r *PDFOptionsRequest) ToOptions() (*printer.Options, []apperror.FieldError) {
	if r == nil {
		return nil, nil
	}

	opts := &printer.Options{
		Format:          r.Format,
		PrintBackground: r.PrintBackground,
		Landscape:       r.Landscape,
		Margin: printer.Margin{
			Top:    r.MarginTop,
			Right:  r.MarginRight,
			Bottom: r.MarginBottom,
			Left:   r.MarginLeft,
		},
	}

	merged := printer.Merge(printer.DefaultOptions(), opts)
	if err := merged.Validate(); err != nil {
		return nil, []apperror.FieldError{{Field: "pdf", Message: err.Error()}}
	}
	return opts, nil
}

func parseRange(start, end string, loc *time.Location) (*time.Time, *time.Time, []apperror.FieldError) {
	var errs []apperror.FieldError

	startDate, err := parseDate(start, loc, false)
	if err != nil {
		errs = append(errs, apperror.FieldError{Field: "startDate", Message: "Tanggal mulai harus dalam format ISO 8601."})
	}

	endDate, err := parseDate(end, loc, true)
	if err != nil {
		errs = append(errs, apperror.FieldError{Field: "endDate", Message: "Tanggal akhir harus dalam format ISO 8601."})
	}

	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		errs = append(errs, apperror.FieldError{Field: "endDate", Message: "Tanggal akhir tidak boleh sebelum tanggal mulai."})
	}

	return startDate, endDate, errs
}

// parseDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates.
// An empty value means no bound.
func parseDate(v string, loc *time.Location, endOfDay bool) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return &t, nil
	}

	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(dateOnly, v, loc)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}
