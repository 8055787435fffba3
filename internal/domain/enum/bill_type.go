package enum

import "strings"

// BillType is what a bill charges for.
type BillType string

const (
	BillTypeMaintenance BillType = "MAINTENANCE"
	BillTypeSecurity    BillType = "SECURITY"
	BillTypeWater       BillType = "WATER"
	BillTypeElectricity BillType = "ELECTRICITY"
	BillTypeParking     BillType = "PARKING"
	BillTypeOther       BillType = "OTHER"
)

func (t BillType) String() string {
	return string(t)
}

func (t BillType) Valid() bool {
	switch t {
	case BillTypeMaintenance, BillTypeSecurity, BillTypeWater,
		BillTypeElectricity, BillTypeParking, BillTypeOther:
		return true
	}
	return false
}

func ParseBillType(v string) (BillType, bool) {
	t := BillType(strings.ToUpper(strings.TrimSpace(v)))
	return t, t.Valid()
}
