package enum

import "strings"

// UnitStatus is the occupancy state of a unit.
type UnitStatus string

const (
	UnitStatusOccupied    UnitStatus = "OCCUPIED"
	UnitStatusVacant      UnitStatus = "VACANT"
	UnitStatusMaintenance UnitStatus = "MAINTENANCE"
)

func (s UnitStatus) String() string {
	return string(s)
}

func (s UnitStatus) Valid() bool {
	return s == UnitStatusOccupied || s == UnitStatusVacant || s == UnitStatusMaintenance
}

func ParseUnitStatus(v string) (UnitStatus, bool) {
	s := UnitStatus(strings.ToUpper(strings.TrimSpace(v)))
	return s, s.Valid()
}
