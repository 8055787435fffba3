package enum

// ReportKind names an exportable report.
type ReportKind string

const (
	ReportKindOperational ReportKind = "operational"
	ReportKindPayments    ReportKind = "payments"
)

func (k ReportKind) String() string {
	return string(k)
}

// Title is the document heading for the report.
func (k ReportKind) Title() string {
	if k == ReportKindOperational {
		return "Laporan Operasional"
	}
	return "Laporan Pembayaran"
}

// TemplateName is the template file stem used for the report.
func (k ReportKind) TemplateName() string {
	return string(k) + "-report"
}

// Slug is the Indonesian name used in download file names.
func (k ReportKind) Slug() string {
	if k == ReportKindOperational {
		return "operasional"
	}
	return "pembayaran"
}
