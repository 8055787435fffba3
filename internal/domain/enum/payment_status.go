package enum

import "strings"

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusOverdue   PaymentStatus = "OVERDUE"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

var paymentStatusLabels = map[PaymentStatus]string{
	PaymentStatusPaid:      "Lunas",
	PaymentStatusPending:   "Tertunda",
	PaymentStatusOverdue:   "Terlambat",
	PaymentStatusCancelled: "Dibatalkan",
}

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) Valid() bool {
	_, ok := paymentStatusLabels[s]
	return ok
}

// ParsePaymentStatus accepts any letter case.
func ParsePaymentStatus(v string) (PaymentStatus, bool) {
	s := PaymentStatus(strings.ToUpper(strings.TrimSpace(v)))
	return s, s.Valid()
}

// PaymentStatusLabel returns the Indonesian label for a raw status string.
// Unknown or empty statuses are labelled as paid.
func PaymentStatusLabel(v string) string {
	if s, ok := ParsePaymentStatus(v); ok {
		return paymentStatusLabels[s]
	}
	return paymentStatusLabels[PaymentStatusPaid]
}
