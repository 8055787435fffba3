package entity

// Report value objects. None of these are database entities: they are
// composed from aggregate queries for a single report request.

// StatisticBucket is one row of a grouped count.
type StatisticBucket struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// ComplaintStatistics is the complaint part of the operational report.
type ComplaintStatistics struct {
	TotalComplaints      int64             `json:"totalComplaints"`
	ComplaintsByCategory []StatisticBucket `json:"complaintsByCategory"`
	ComplaintsByStatus   []StatisticBucket `json:"complaintsByStatus"`
}

// SecurityReportStatistics is the security part of the operational report.
type SecurityReportStatistics struct {
	TotalSecurityReports int64             `json:"totalSecurityReports"`
	ReportsByStatus      []StatisticBucket `json:"reportsByStatus"`
}

// UnitResidentStatistics covers occupancy.
type UnitResidentStatistics struct {
	TotalResidents int64             `json:"totalResidents"`
	TotalUnits     int64             `json:"totalUnits"`
	UnitsByStatus  []StatisticBucket `json:"unitsByStatus"`
}

// CategoryBreakdown is a bucket keyed by category with its share of the total.
type CategoryBreakdown struct {
	Category   string `json:"category" handlebars:"category"`
	Count      int64  `json:"count" handlebars:"count"`
	Percentage int    `json:"percentage" handlebars:"percentage"`
}

// StatusBreakdown is a bucket keyed by status with its share of the total.
type StatusBreakdown struct {
	Status     string `json:"status" handlebars:"status"`
	Count      int64  `json:"count" handlebars:"count"`
	Percentage int    `json:"percentage" handlebars:"percentage"`
}

// OperationalReportData is the template context of the operational report.
type OperationalReportData struct {
	Title         string `json:"title" handlebars:"title"`
	GeneratedDate string `json:"generatedDate" handlebars:"generatedDate"`
	Period        string `json:"period" handlebars:"period"`

	TotalComplaints      int64               `json:"totalComplaints" handlebars:"totalComplaints"`
	ComplaintsByCategory []CategoryBreakdown `json:"complaintsByCategory" handlebars:"complaintsByCategory"`
	ComplaintsByStatus   []StatusBreakdown   `json:"complaintsByStatus" handlebars:"complaintsByStatus"`

	TotalSecurityReports int64             `json:"totalSecurityReports" handlebars:"totalSecurityReports"`
	ReportsByStatus      []StatusBreakdown `json:"reportsByStatus" handlebars:"reportsByStatus"`

	TotalResidents int64             `json:"totalResidents" handlebars:"totalResidents"`
	TotalUnits     int64             `json:"totalUnits" handlebars:"totalUnits"`
	UnitsByStatus  []StatusBreakdown `json:"unitsByStatus" handlebars:"unitsByStatus"`

	OccupancyRate            int    `json:"occupancyRate" handlebars:"occupancyRate"`
	AverageComplaintsPerUnit string `json:"averageComplaintsPerUnit" handlebars:"averageComplaintsPerUnit"`
}

// PaymentHistoryItem is one formatted row of the payment history table.
type PaymentHistoryItem struct {
	Date          string `json:"date" handlebars:"date"`
	Amount        string `json:"amount" handlebars:"amount"`
	ResidentName  string `json:"residentName" handlebars:"residentName"`
	BillType      string `json:"billType" handlebars:"billType"`
	UnitNumber    string `json:"unitNumber" handlebars:"unitNumber"`
	PaymentMethod string `json:"paymentMethod" handlebars:"paymentMethod"`
	Status        string `json:"status" handlebars:"status"`
	StatusLabel   string `json:"statusLabel" handlebars:"statusLabel"`
	IsLatePayment bool   `json:"isLatePayment" handlebars:"isLatePayment"`
}

// MonthlyPayment summarises payments of one calendar month.
type MonthlyPayment struct {
	Month          string `json:"month" handlebars:"month"`
	Total          string `json:"total" handlebars:"total"`
	Count          int    `json:"count" handlebars:"count"`
	Average        string `json:"average" handlebars:"average"`
	CollectionRate int    `json:"collectionRate" handlebars:"collectionRate"`
}

// BillTypeBreakdown groups payments by bill type.
type BillTypeBreakdown struct {
	BillType   string `json:"billType" handlebars:"billType"`
	Count      int    `json:"count" handlebars:"count"`
	Total      string `json:"total" handlebars:"total"`
	Percentage int    `json:"percentage" handlebars:"percentage"`
}

// MethodBreakdown groups payments by payment method.
type MethodBreakdown struct {
	Method     string `json:"method" handlebars:"method"`
	Count      int    `json:"count" handlebars:"count"`
	Total      string `json:"total" handlebars:"total"`
	Percentage int    `json:"percentage" handlebars:"percentage"`
}

// PaymentsReportData is the template context of the payments report.
type PaymentsReportData struct {
	Title         string `json:"title" handlebars:"title"`
	GeneratedDate string `json:"generatedDate" handlebars:"generatedDate"`
	Period        string `json:"period" handlebars:"period"`

	TotalPaid    string `json:"totalPaid" handlebars:"totalPaid"`
	TotalOverdue string `json:"totalOverdue" handlebars:"totalOverdue"`

	PaidPercentage    int `json:"paidPercentage" handlebars:"paidPercentage"`
	OverduePercentage int `json:"overduePercentage" handlebars:"overduePercentage"`
	CollectionRate    int `json:"collectionRate" handlebars:"collectionRate"`

	PaymentHistory  []PaymentHistoryItem `json:"paymentHistory" handlebars:"paymentHistory"`
	MonthlyPayments []MonthlyPayment     `json:"monthlyPayments" handlebars:"monthlyPayments"`

	TotalTransactions     int    `json:"totalTransactions" handlebars:"totalTransactions"`
	GrandTotal            string `json:"grandTotal" handlebars:"grandTotal"`
	OverallAverage        string `json:"overallAverage" handlebars:"overallAverage"`
	OverallCollectionRate int    `json:"overallCollectionRate" handlebars:"overallCollectionRate"`

	PaymentsByBillType []BillTypeBreakdown `json:"paymentsByBillType" handlebars:"paymentsByBillType"`
	PaymentsByMethod   []MethodBreakdown   `json:"paymentsByMethod" handlebars:"paymentsByMethod"`
}
