package service

import (
	"strings"
	"time"

	"github.com/sangkips/residence-api/internal/domain/entity"
	"github.com/sangkips/residence-api/internal/domain/enum"
	"github.com/sangkips/residence-api/internal/domain/repository"
	"github.com/sangkips/residence-api/pkg/locale"
	"github.com/sangkips/residence-api/pkg/metric"
	"github.com/shopspring/decimal"
)

const (
	periodAll    = "Semua periode"
	notAvailable = "N/A"

	defaultPaymentMethod = "Transfer Bank"
	otherBillType        = "Lainnya"
	defaultStatus        = "paid"
)

// ReportBuilder turns reader output into template-ready report data.
// It performs no I/O.
type ReportBuilder struct {
	format *locale.Formatter
	now    func() time.Time
}

// NewReportBuilder creates a report builder. now stamps generatedDate; nil means time.Now.
func NewReportBuilder(format *locale.Formatter, now func() time.Time) *ReportBuilder {
	if format == nil {
		format = locale.New(nil)
	}
	if now == nil {
		now = time.Now
	}
	return &ReportBuilder{format: format, now: now}
}

// FormatPeriod describes the filter window in Indonesian.
func (b *ReportBuilder) FormatPeriod(start, end *time.Time) string {
	switch {
	case start == nil && end == nil:
		return periodAll
	case start == nil:
		return "Sampai " + b.format.ShortDate(*end)
	case end == nil:
		return "Dari " + b.format.ShortDate(*start)
	default:
		return b.format.ShortDate(*start) + " - " + b.format.ShortDate(*end)
	}
}

// BuildOperational assembles the operational report.
func (b *ReportBuilder) BuildOperational(
	filter repository.OperationalReportFilter,
	complaints *entity.ComplaintStatistics,
	security *entity.SecurityReportStatistics,
	units *entity.UnitResidentStatistics,
) *entity.OperationalReportData {
	totalComplaints := sumBuckets(complaints.ComplaintsByCategory)

	byCategory := make([]entity.CategoryBreakdown, 0, len(complaints.ComplaintsByCategory))
	for _, bucket := range complaints.ComplaintsByCategory {
		byCategory = append(byCategory, entity.CategoryBreakdown{
			Category:   bucket.Key,
			Count:      bucket.Count,
			Percentage: metric.Percentage(float64(bucket.Count), float64(totalComplaints)),
		})
	}

	return &entity.OperationalReportData{
		Title:         enum.ReportKindOperational.Title(),
		GeneratedDate: b.format.LongDate(b.now()),
		Period:        b.FormatPeriod(filter.StartDate, filter.EndDate),

		TotalComplaints:      totalComplaints,
		ComplaintsByCategory: byCategory,
		ComplaintsByStatus:   statusBreakdown(complaints.ComplaintsByStatus),

		TotalSecurityReports: security.TotalSecurityReports,
		ReportsByStatus:      statusBreakdown(security.ReportsByStatus),

		TotalResidents: units.TotalResidents,
		TotalUnits:     units.TotalUnits,
		UnitsByStatus:  statusBreakdown(units.UnitsByStatus),

		OccupancyRate:            metric.Percentage(float64(units.TotalResidents), float64(units.TotalUnits)),
		AverageComplaintsPerUnit: metric.Ratio(totalComplaints, units.TotalUnits),
	}
}

// BuildPayments assembles the payments report.
func (b *ReportBuilder) BuildPayments(
	filter repository.PaymentsReportFilter,
	revenue *repository.RevenueSummary,
	history []repository.PaymentRecord,
) *entity.PaymentsReportData {
	totalAmount := revenue.TotalPaid.Add(revenue.TotalOverdue)
	paidShare := metric.PercentageDecimal(revenue.TotalPaid, totalAmount)

	items := make([]entity.PaymentHistoryItem, 0, len(history))
	for _, rec := range history {
		items = append(items, b.historyItem(rec))
	}

	return &entity.PaymentsReportData{
		Title:         enum.ReportKindPayments.Title(),
		GeneratedDate: b.format.LongDate(b.now()),
		Period:        b.FormatPeriod(filter.StartDate, filter.EndDate),

		TotalPaid:    b.format.Currency(revenue.TotalPaid),
		TotalOverdue: b.format.Currency(revenue.TotalOverdue),

		PaidPercentage:    paidShare,
		OverduePercentage: metric.PercentageDecimal(revenue.TotalOverdue, totalAmount),
		CollectionRate:    paidShare,

		PaymentHistory:  items,
		MonthlyPayments: b.groupByMonth(history),

		TotalTransactions:     len(history),
		GrandTotal:            b.format.Currency(revenue.TotalPaid),
		OverallAverage:        b.format.Currency(metric.Average(revenue.TotalPaid, len(history))),
		OverallCollectionRate: paidShare,

		PaymentsByBillType: b.byBillType(history),
		PaymentsByMethod:   b.byMethod(history),
	}
}

func (b *ReportBuilder) historyItem(rec repository.PaymentRecord) entity.PaymentHistoryItem {
	status := strings.ToLower(strings.TrimSpace(rec.Status))
	if status == "" {
		status = defaultStatus
	}

	return entity.PaymentHistoryItem{
		Date:          b.format.ShortDate(rec.PaymentDate),
		Amount:        b.format.Currency(rec.Amount),
		ResidentName:  valueOr(rec.ResidentName, notAvailable),
		BillType:      valueOr(rec.BillType, notAvailable),
		UnitNumber:    valueOr(rec.UnitNumber, notAvailable),
		PaymentMethod: paymentMethod(rec),
		Status:        status,
		StatusLabel:   StatusLabel(rec.Status),
		IsLatePayment: IsLatePayment(rec),
	}
}

type monthBucket struct {
	label string
	total decimal.Decimal
	paid  decimal.Decimal
	count int
}

// groupByMonth buckets payments per calendar month in the report timezone,
// keeping the order in which months first appear.
func (b *ReportBuilder) groupByMonth(history []repository.PaymentRecord) []entity.MonthlyPayment {
	var order []string
	buckets := make(map[string]*monthBucket)

	for _, rec := range history {
		local := rec.PaymentDate.In(b.format.Location())
		key := local.Format("2006-01")

		mb, ok := buckets[key]
		if !ok {
			mb = &monthBucket{label: b.format.Month(local)}
			buckets[key] = mb
			order = append(order, key)
		}
		mb.total = mb.total.Add(rec.Amount)
		mb.count++
		if isPaid(rec.Status) {
			mb.paid = mb.paid.Add(rec.Amount)
		}
	}

	out := make([]entity.MonthlyPayment, 0, len(order))
	for _, key := range order {
		mb := buckets[key]
		out = append(out, entity.MonthlyPayment{
			Month:          mb.label,
			Total:          b.format.Currency(mb.total),
			Count:          mb.count,
			Average:        b.format.Currency(metric.Average(mb.total, mb.count)),
			CollectionRate: metric.PercentageDecimal(mb.paid, mb.total),
		})
	}
	return out
}

type amountGroup struct {
	key   string
	count int
	total decimal.Decimal
}

// groupAmounts sums amounts per key in first-seen order and returns the grand total.
func groupAmounts(history []repository.PaymentRecord, keyOf func(repository.PaymentRecord) string) ([]*amountGroup, decimal.Decimal) {
	var groups []*amountGroup
	index := make(map[string]*amountGroup)
	grand := decimal.Zero

	for _, rec := range history {
		key := keyOf(rec)
		g, ok := index[key]
		if !ok {
			g = &amountGroup{key: key}
			index[key] = g
			groups = append(groups, g)
		}
		g.count++
		g.total = g.total.Add(rec.Amount)
		grand = grand.Add(rec.Amount)
	}
	return groups, grand
}

func (b *ReportBuilder) byBillType(history []repository.PaymentRecord) []entity.BillTypeBreakdown {
	groups, grand := groupAmounts(history, func(rec repository.PaymentRecord) string {
		return valueOr(rec.BillType, otherBillType)
	})

	out := make([]entity.BillTypeBreakdown, 0, len(groups))
	for _, g := range groups {
		out = append(out, entity.BillTypeBreakdown{
			BillType:   g.key,
			Count:      g.count,
			Total:      b.format.Currency(g.total),
			Percentage: metric.PercentageDecimal(g.total, grand),
		})
	}
	return out
}

func (b *ReportBuilder) byMethod(history []repository.PaymentRecord) []entity.MethodBreakdown {
	groups, grand := groupAmounts(history, paymentMethod)

	out := make([]entity.MethodBreakdown, 0, len(groups))
	for _, g := range groups {
		out = append(out, entity.MethodBreakdown{
			Method:     g.key,
			Count:      g.count,
			Total:      b.format.Currency(g.total),
			Percentage: metric.PercentageDecimal(g.total, grand),
		})
	}
	return out
}

// StatusLabel maps a payment status to its Indonesian label, case-insensitively.
// Unknown and empty statuses read as paid.
func StatusLabel(status string) string {
	return enum.PaymentStatusLabel(status)
}

// IsLatePayment reports whether the payment was made after its bill's due date.
// Without a due date a payment is never late.
func IsLatePayment(rec repository.PaymentRecord) bool {
	if rec.BillDueDate == nil {
		return false
	}
	return rec.PaymentDate.After(*rec.BillDueDate)
}

func statusBreakdown(buckets []entity.StatisticBucket) []entity.StatusBreakdown {
	total := sumBuckets(buckets)
	out := make([]entity.StatusBreakdown, 0, len(buckets))
	for _, bucket := range buckets {
		out = append(out, entity.StatusBreakdown{
			Status:     bucket.Key,
			Count:      bucket.Count,
			Percentage: metric.Percentage(float64(bucket.Count), float64(total)),
		})
	}
	return out
}

func sumBuckets(buckets []entity.StatisticBucket) int64 {
	var total int64
	for _, b := range buckets {
		total += b.Count
	}
	return total
}

func paymentMethod(rec repository.PaymentRecord) string {
	if m := strings.TrimSpace(rec.PaymentMethod); m != "" {
		return m
	}
	return defaultPaymentMethod
}

func isPaid(status string) bool {
	s := strings.TrimSpace(status)
	return s == "" || strings.EqualFold(s, string(enum.PaymentStatusPaid))
}

func valueOr(v *string, fallback string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return fallback
	}
	return *v
}
