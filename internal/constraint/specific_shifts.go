package constraint

import (
	"github.com/HHoofs/shift/internal/calendar"
	"github.com/HHoofs/shift/internal/cpmodel"
)

// SpecificShiftOverride pins one shift to either blocked (forced to 0) or
// forced (forced to 1) for the constraint's single employee.
type SpecificShiftOverride struct {
	Shift   calendar.Shift
	Blocked bool
}

// SpecificShifts applies a list of per-shift overrides to exactly one
// employee. It panics if more or fewer than one employee id is set.
type SpecificShifts struct {
	baseConstraint
	Overrides []SpecificShiftOverride
}

// NewSpecificShifts returns a SpecificShifts constraint with the given
// overrides.
func NewSpecificShifts(overrides ...SpecificShiftOverride) *SpecificShifts {
	return &SpecificShifts{Overrides: overrides}
}

// AddConstraint implements PlanningConstraint.
func (s *SpecificShifts) AddConstraint(slots []calendar.Slot, program cpmodel.Program, table VarTable) {
	if len(s.employeeIDs) != 1 {
		panic("constraint: SpecificShifts requires exactly one employee id")
	}
	employeeID := s.employeeIDs[0]

	slotShifts := make(map[shiftIdentity]struct{}, len(slots))
	for _, slot := range slots {
		slotShifts[identityOf(slot.Shift)] = struct{}{}
	}

	for _, override := range s.Overrides {
		if _, present := slotShifts[identityOf(override.Shift)]; !present {
			continue
		}
		v := table.Get(employeeID, override.Shift)
		if override.Blocked {
			program.AddLessOrEqual([]cpmodel.Term{{Coefficient: 1, Var: v}}, 0)
		} else {
			program.AddExactlyOne([]cpmodel.BoolVar{v})
		}
	}
}

// shiftIdentity is the (period, day) pair Shift equality actually compares
// on — duration is deliberately excluded, matching calendar.Shift.Equal.
type shiftIdentity struct {
	period int
	day    int64
}

func identityOf(shift calendar.Shift) shiftIdentity {
	return shiftIdentity{period: shift.Period.Value(), day: shift.Day.Date().Unix()}
}
