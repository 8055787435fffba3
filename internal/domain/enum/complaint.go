package enum

// ComplaintCategory classifies a complaint.
type ComplaintCategory string

const (
	ComplaintCategoryMaintenance ComplaintCategory = "MAINTENANCE"
	ComplaintCategoryNoise       ComplaintCategory = "NOISE"
	ComplaintCategoryCleanliness ComplaintCategory = "CLEANLINESS"
	ComplaintCategorySecurity    ComplaintCategory = "SECURITY"
	ComplaintCategoryOther       ComplaintCategory = "OTHER"
)

// ComplaintStatus tracks complaint handling.
type ComplaintStatus string

const (
	ComplaintStatusOpen       ComplaintStatus = "OPEN"
	ComplaintStatusInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintStatusResolved   ComplaintStatus = "RESOLVED"
	ComplaintStatusClosed     ComplaintStatus = "CLOSED"
)

// SecurityReportStatus tracks an incident report.
type SecurityReportStatus string

const (
	SecurityReportStatusReported      SecurityReportStatus = "REPORTED"
	SecurityReportStatusInvestigating SecurityReportStatus = "INVESTIGATING"
	SecurityReportStatusResolved      SecurityReportStatus = "RESOLVED"
)
